package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentsURL(t *testing.T) {
	tests := []struct {
		name    string
		example string
		branch  string
		want    string
	}{
		{
			name:    "example directory",
			example: "antd",
			branch:  "master",
			want:    "https://api.github.com/repos/refinedev/refine/contents/examples/antd?ref=master",
		},
		{
			name:    "examples root",
			example: "",
			branch:  "master",
			want:    "https://api.github.com/repos/refinedev/refine/contents/examples?ref=master",
		},
		{
			name:    "branch with slash is query escaped",
			example: "antd",
			branch:  "feat/x",
			want:    "https://api.github.com/repos/refinedev/refine/contents/examples/antd?ref=feat%2Fx",
		},
		{
			name:    "name is trimmed and escaped",
			example: " my example ",
			branch:  "master",
			want:    "https://api.github.com/repos/refinedev/refine/contents/examples/my%20example?ref=master",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentsURL("https://api.github.com/", "refinedev", "refine", tt.example, tt.branch)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArchiveURL(t *testing.T) {
	assert.Equal(t,
		"https://codeload.github.com/refinedev/refine/tar.gz/master",
		ArchiveURL("https://codeload.github.com", "refinedev", "refine", "master"))
	assert.Equal(t,
		"https://codeload.github.com/refinedev/refine/tar.gz/release/v4",
		ArchiveURL("https://codeload.github.com", "refinedev", "refine", "release/v4"))
}
