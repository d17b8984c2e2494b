// Package workspace prepares the destination directory of a run.
package workspace

import (
	"os"

	"github.com/quantmind-br/create-example/internal/domain"
	"github.com/quantmind-br/create-example/internal/utils"
)

// Provisioner ensures the project directory exists
type Provisioner struct {
	logger *utils.Logger
}

// NewProvisioner creates a new Provisioner
func NewProvisioner(logger *utils.Logger) *Provisioner {
	return &Provisioner{logger: logger.OrNop().WithComponent("workspace")}
}

// MakeDir creates path and its parents. An existing path of any kind is
// reported as DirAlready and left untouched.
func (p *Provisioner) MakeDir(path string) domain.DirStatus {
	if utils.PathExists(path) {
		p.logger.Debug().Str("path", path).Msg("Destination already exists")
		return domain.DirAlready
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		p.logger.Debug().Err(err).Str("path", path).Msg("Failed to create destination")
		return domain.DirFailed
	}
	return domain.DirCreated
}
