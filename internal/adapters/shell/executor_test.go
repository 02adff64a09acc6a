package shell_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pin/internal/adapters/shell"
	"go.trai.ch/pin/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	out, err := executor.Output(context.Background(), t.TempDir(), []string{"sh", "-c", "echo hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi\n", string(out))
}

func TestOutput_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	_, err := executor.Output(context.Background(), t.TempDir(), []string{"sh", "-c", "echo oops >&2; exit 3"})
	require.Error(t, err)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
	assert.Contains(t, zErr.Metadata()["stderr"], "oops")
}

func TestOutput_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	_, err := executor.Output(context.Background(), t.TempDir(), nil)
	assert.ErrorContains(t, err, "empty command")
}

func TestRun_StreamsThroughLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info("line one")
	logger.EXPECT().Info("line two")

	executor := shell.NewExecutor(logger)
	err := executor.Run(context.Background(), t.TempDir(), []string{"sh", "-c", "echo line one; echo line two"})
	assert.NoError(t, err)
}

func TestRun_WorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(dir)

	executor := shell.NewExecutor(logger)
	err := executor.Run(context.Background(), dir, []string{"pwd"})
	assert.NoError(t, err)
}
