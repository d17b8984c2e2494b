package pkgmgr

import (
	"context"

	"github.com/quantmind-br/create-example/internal/domain"
	"github.com/quantmind-br/create-example/internal/runner"
	"github.com/quantmind-br/create-example/internal/utils"
)

// Installer runs "<pm> install" in a project directory
type Installer struct {
	runner runner.Runner
	logger *utils.Logger
}

// NewInstaller creates a new Installer
func NewInstaller(r runner.Runner, logger *utils.Logger) *Installer {
	return &Installer{runner: r, logger: logger.OrNop().WithComponent("install")}
}

// Install reports InstallFailed when the binary is missing or exits
// non-zero. Its output never reaches the terminal.
func (i *Installer) Install(ctx context.Context, dir string, pm domain.PackageManager) domain.InstallStatus {
	if _, err := i.runner.LookPath(pm.Name); err != nil {
		i.logger.Debug().Err(err).Str("pm", pm.Name).Msg("Package manager not on PATH")
		return domain.InstallFailed
	}

	if err := i.runner.Run(ctx, dir, pm.Name, "install"); err != nil {
		i.logger.Debug().Err(err).Str("pm", pm.String()).Msg("Install failed")
		return domain.InstallFailed
	}
	return domain.InstallSuccess
}
