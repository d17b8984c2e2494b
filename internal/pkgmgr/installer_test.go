package pkgmgr_test

import (
	"context"
	"errors"
	"testing"

	"github.com/quantmind-br/create-example/internal/domain"
	"github.com/quantmind-br/create-example/internal/mocks"
	"github.com/quantmind-br/create-example/internal/pkgmgr"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInstaller_Install(t *testing.T) {
	pnpm := domain.PackageManager{Name: "pnpm", Version: "8.6.0"}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := mocks.NewMockRunner(ctrl)
		r.EXPECT().LookPath("pnpm").Return("/usr/local/bin/pnpm", nil)
		r.EXPECT().Run(gomock.Any(), "/work/app", "pnpm", "install").Return(nil)

		status := pkgmgr.NewInstaller(r, nil).Install(context.Background(), "/work/app", pnpm)
		assert.Equal(t, domain.InstallSuccess, status)
	})

	t.Run("binary missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := mocks.NewMockRunner(ctrl)
		r.EXPECT().LookPath("pnpm").Return("", errors.New("executable file not found in $PATH"))

		status := pkgmgr.NewInstaller(r, nil).Install(context.Background(), "/work/app", pnpm)
		assert.Equal(t, domain.InstallFailed, status)
	})

	t.Run("non-zero exit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := mocks.NewMockRunner(ctrl)
		r.EXPECT().LookPath("pnpm").Return("/usr/local/bin/pnpm", nil)
		r.EXPECT().Run(gomock.Any(), "/work/app", "pnpm", "install").Return(errors.New("exit status 1"))

		status := pkgmgr.NewInstaller(r, nil).Install(context.Background(), "/work/app", pnpm)
		assert.Equal(t, domain.InstallFailed, status)
	})
}
