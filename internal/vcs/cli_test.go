package vcs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/quantmind-br/create-example/internal/mocks"
	"github.com/quantmind-br/create-example/internal/vcs"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCLIClient_Probes(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRunner(ctrl)
	ctx := context.Background()
	dir := "/work/app"

	r.EXPECT().Run(ctx, dir, "git", "--version").Return(nil)
	r.EXPECT().Run(ctx, dir, "git", "rev-parse", "--is-inside-work-tree").Return(errors.New("exit status 128"))
	r.EXPECT().Run(ctx, dir, "hg", "--cwd", ".", "root").Return(errors.New("executable file not found"))

	c := vcs.NewCLIClient(r)
	assert.True(t, c.Available(ctx, dir))
	assert.False(t, c.InsideWorkTree(ctx, dir))
	assert.False(t, c.InsideMercurial(ctx, dir))
}

func TestCLIClient_InitAndCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRunner(ctrl)
	ctx := context.Background()
	dir := "/work/app"

	gomock.InOrder(
		r.EXPECT().Run(ctx, dir, "git", "init").Return(nil),
		r.EXPECT().Run(ctx, dir, "git", "checkout", "-b", "main").Return(nil),
		r.EXPECT().Run(ctx, dir, "git", "add", "-A").Return(nil),
		r.EXPECT().Run(ctx, dir, "git", "commit", "-m", "Initial commit").Return(nil),
	)

	c := vcs.NewCLIClient(r)
	assert.NoError(t, c.Init(ctx, dir))
	assert.NoError(t, c.CheckoutBranch(ctx, dir, "main"))
	assert.NoError(t, c.CommitAll(ctx, dir, "Initial commit"))
}

func TestCLIClient_CommitAll_StopsWhenStagingFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRunner(ctrl)

	r.EXPECT().Run(gomock.Any(), "/work/app", "git", "add", "-A").Return(errors.New("index.lock exists"))

	err := vcs.NewCLIClient(r).CommitAll(context.Background(), "/work/app", "Initial commit")
	assert.EqualError(t, err, "index.lock exists")
}
