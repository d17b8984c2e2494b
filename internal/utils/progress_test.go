package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpinner(t *testing.T) {
	var buf bytes.Buffer

	bar := NewSpinner(&buf, "Checking if example exists")
	require.NotNil(t, bar)

	// blank state is rendered on creation
	assert.Contains(t, buf.String(), "Checking if example exists")
	assert.NoError(t, bar.Add(1))
	assert.NoError(t, bar.Finish())
}

func TestNewBytesBar(t *testing.T) {
	t.Run("known size", func(t *testing.T) {
		var buf bytes.Buffer
		bar := NewBytesBar(&buf, 2048, DescDownloading)
		require.NotNil(t, bar)

		n, err := bar.Write(make([]byte, 1024))
		require.NoError(t, err)
		assert.Equal(t, 1024, n)
		assert.Equal(t, int64(1024), bar.State().CurrentNum)
	})

	t.Run("unknown size", func(t *testing.T) {
		var buf bytes.Buffer
		bar := NewBytesBar(&buf, -1, DescDownloading)
		require.NotNil(t, bar)

		_, err := bar.Write([]byte("abc"))
		assert.NoError(t, err)
	})
}
