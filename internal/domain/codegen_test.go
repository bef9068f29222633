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

func TestCodeGenInvoker_Generate(t *testing.T) {
	upstream := t.TempDir()

	runner := adaptermocks.NewMockScriptRunner(t)
	runner.EXPECT().Run(mock.Anything, mock.MatchedBy(func(command adapter.ScriptCommand) bool {
		return command.Path == m.Path(filepath.Join("/src/razor", "scripts", "lint", "gen.sh")) &&
			command.Dir == "/src/razor" &&
			command.Env[upstreamPathEnv] == upstream &&
			len(command.Args) == 0
	})).Return(nil).Once()

	err := NewCodeGenInvoker(runner).Generate(context.Background(), "/src/razor", "scripts/lint/gen.sh", m.Path(upstream))
	require.NoError(t, err)
}

func TestCodeGenInvoker_GenerateMakesUpstreamAbsolute(t *testing.T) {
	want, err := filepath.Abs("pytorch")
	require.NoError(t, err)

	var got adapter.ScriptCommand

	runner := adaptermocks.NewMockScriptRunner(t)
	runner.EXPECT().Run(mock.Anything, mock.Anything).
		Run(func(_ context.Context, command adapter.ScriptCommand) { got = command }).
		Return(nil).Once()

	require.NoError(t, NewCodeGenInvoker(runner).Generate(context.Background(), "/src/razor", "/opt/gen.sh", "pytorch"))
	assert.Equal(t, want, got.Env[upstreamPathEnv])
	assert.Equal(t, m.Path("/opt/gen.sh"), got.Path)
}

func TestCodeGenInvoker_GenerateFailure(t *testing.T) {
	runner := adaptermocks.NewMockScriptRunner(t)
	runner.EXPECT().Run(mock.Anything, mock.Anything).Return(errors.New("exit status 1"))

	err := NewCodeGenInvoker(runner).Generate(context.Background(), "/src/razor", "scripts/lint/gen.sh", "/src/pytorch")
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageCodegen, stageErr.Stage)
	assert.Equal(t, filepath.Join("/src/razor", "scripts", "lint", "gen.sh"), stageErr.Command)
	assert.Contains(t, err.Error(), "exit status 1")
}
