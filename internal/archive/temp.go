package archive

import (
	"sync"

	"github.com/quantmind-br/create-example/internal/utils"
)

// TempArchive is the handle of a downloaded archive file.
// Release deletes the file at most once and never fails.
type TempArchive struct {
	path string
	once sync.Once
}

func newTempArchive(path string) *TempArchive {
	return &TempArchive{path: path}
}

// Path returns the location of the archive on disk
func (a *TempArchive) Path() string {
	return a.path
}

// Release removes the file. Calling it again, or on an already absent
// file, is a no-op.
func (a *TempArchive) Release() {
	if a == nil {
		return
	}
	a.once.Do(func() {
		_ = utils.RemoveFile(a.path)
	})
}
