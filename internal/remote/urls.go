package remote

import (
	"net/url"
	"strings"

	"github.com/quantmind-br/create-example/internal/utils"
)

// ExamplesDir is the monorepo directory that holds the examples
const ExamplesDir = "examples"

// ContentsURL returns the metadata URL of examples/<example> at branch.
// An empty example addresses the examples directory itself.
func ContentsURL(apiBase, org, repo, example, branch string) string {
	segments := []string{"repos", org, repo, "contents", ExamplesDir}
	if example != "" {
		segments = append(segments, utils.NormalizeName(example))
	}
	return utils.JoinURL(apiBase, url.Values{"ref": []string{branch}}, segments...)
}

// ArchiveURL returns the tar.gz URL of the whole repository at branch.
// Slashes in the branch are kept as path separators.
func ArchiveURL(codeloadBase, org, repo, branch string) string {
	segments := append([]string{org, repo, "tar.gz"}, strings.Split(branch, "/")...)
	return utils.JoinURL(codeloadBase, nil, segments...)
}
