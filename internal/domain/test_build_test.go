package domain

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"razor.dev/pkg/razorbuild/internal/adapter"
	adaptermocks "razor.dev/pkg/razorbuild/internal/adapter/mocks"
	m "razor.dev/pkg/razorbuild/internal/model"
)

func TestTestBuildStage_BuildTests(t *testing.T) {
	runner := adaptermocks.NewMockScriptRunner(t)
	runner.EXPECT().Run(mock.Anything, adapter.ScriptCommand{
		Path: m.Path(filepath.Join("/src/razor", "scripts", "src_codegen", "run_all.sh")),
		Args: []string{"-B"},
		Dir:  "/src/razor",
	}).Return(nil).Once()

	err := NewTestBuildStage(runner).BuildTests(context.Background(), "/src/razor", "scripts/src_codegen/run_all.sh")
	require.NoError(t, err)
}

func TestTestBuildStage_BuildTestsFailure(t *testing.T) {
	runner := adaptermocks.NewMockScriptRunner(t)
	runner.EXPECT().Run(mock.Anything, mock.Anything).Return(errors.New("exit status 2"))

	err := NewTestBuildStage(runner).BuildTests(context.Background(), "/src/razor", "/opt/tests.sh")
	require.Error(t, err)

	stage, ok := FailedStage(err)
	require.True(t, ok)
	assert.Equal(t, StageTestBuild, stage)
	assert.Equal(t, "test-build failed: /opt/tests.sh -B: exit status 2", err.Error())
}
