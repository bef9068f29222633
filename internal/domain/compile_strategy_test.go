package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"razor.dev/pkg/razorbuild/internal/adapter"
	adaptermocks "razor.dev/pkg/razorbuild/internal/adapter/mocks"
	m "razor.dev/pkg/razorbuild/internal/model"
)

// fakeUnitCompiler records compiled objects and the peak number of concurrent units.
type fakeUnitCompiler struct {
	fail map[m.Path]bool

	mu       sync.Mutex
	compiled []m.Path
	running  atomic.Int32
	peak     atomic.Int32
}

func (f *fakeUnitCompiler) CompileUnit(_ context.Context, job m.CompileJob) error {
	current := f.running.Add(1)
	defer f.running.Add(-1)

	for {
		peak := f.peak.Load()
		if current <= peak || f.peak.CompareAndSwap(peak, current) {
			break
		}
	}

	time.Sleep(5 * time.Millisecond)

	if f.fail[job.ObjectPath] {
		return fmt.Errorf("compile %s: exit status 1", job.SourcePath)
	}

	f.mu.Lock()
	f.compiled = append(f.compiled, job.ObjectPath)
	f.mu.Unlock()

	return nil
}

type recordingObserver struct {
	mu       sync.Mutex
	started  []m.Path
	finished []m.CompileResult
}

func (o *recordingObserver) UnitStarted(object m.Path) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.started = append(o.started, object)
}

func (o *recordingObserver) UnitFinished(result m.CompileResult) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.finished = append(o.finished, result)
}

func preparedUnits(n int) m.PreparedCompile {
	prepared := m.PreparedCompile{Jobs: map[m.Path]m.CompileJob{}}

	for i := range n {
		object := m.Path(fmt.Sprintf("build/temp/unit%02d.o", i))
		prepared.Objects = append(prepared.Objects, object)
		prepared.Jobs[object] = m.CompileJob{
			ObjectPath: object,
			SourcePath: m.Path(fmt.Sprintf("unit%02d.cpp", i)),
			Extension:  ".cpp",
		}
	}

	return prepared
}

func TestPooledStrategy_CompilesEveryUnit(t *testing.T) {
	prepared := preparedUnits(12)
	compiler := &fakeUnitCompiler{}
	observer := &recordingObserver{}

	strategy := NewPooledStrategy(compiler, 4)
	assert.Equal(t, StrategyPooled, strategy.Name())
	assert.Equal(t, 4, strategy.Workers())

	results, err := strategy.CompileAll(context.Background(), prepared, observer)
	require.NoError(t, err)
	require.Len(t, results, 12)

	for i, result := range results {
		assert.Equal(t, prepared.Objects[i], result.Object, "results stay in object order")
		assert.False(t, result.Failed())
	}

	assert.ElementsMatch(t, prepared.Objects, compiler.compiled)
	assert.LessOrEqual(t, compiler.peak.Load(), int32(4))
	assert.Len(t, observer.started, 12)
	assert.Len(t, observer.finished, 12)
}

func TestPooledStrategy_FailuresDoNotCancelSiblings(t *testing.T) {
	prepared := preparedUnits(8)
	compiler := &fakeUnitCompiler{fail: map[m.Path]bool{
		prepared.Objects[1]: true,
		prepared.Objects[2]: true,
		prepared.Objects[3]: true,
	}}

	results, err := NewPooledStrategy(compiler, 3).CompileAll(context.Background(), prepared, nil)
	require.Error(t, err)
	require.Len(t, results, 8)

	stage, ok := FailedStage(err)
	require.True(t, ok)
	assert.Equal(t, StageCompile, stage)
	assert.Contains(t, err.Error(), "3 of 8 unit(s)")
	assert.Contains(t, err.Error(), "unit02.cpp")

	failed := 0

	for _, result := range results {
		if result.Failed() {
			failed++
		}
	}

	assert.Equal(t, 3, failed)
	assert.Len(t, compiler.compiled, 5, "healthy units still compile")
}

func TestPooledStrategy_SkipsObjectsWithoutJobs(t *testing.T) {
	prepared := preparedUnits(3)
	delete(prepared.Jobs, prepared.Objects[1])

	compiler := &fakeUnitCompiler{}
	observer := &recordingObserver{}

	results, err := NewPooledStrategy(compiler, 2).CompileAll(context.Background(), prepared, observer)
	require.NoError(t, err)

	assert.True(t, results[1].Skipped)
	assert.False(t, results[0].Skipped)
	assert.Len(t, compiler.compiled, 2)
	assert.Len(t, observer.started, 2)
	assert.Len(t, observer.finished, 3)
}

func TestPooledStrategy_SingleWorker(t *testing.T) {
	compiler := &fakeUnitCompiler{}

	strategy := NewPooledStrategy(compiler, 0)
	assert.Equal(t, 1, strategy.Workers())

	_, err := strategy.CompileAll(context.Background(), preparedUnits(4), nil)
	require.NoError(t, err)
	assert.Equal(t, int32(1), compiler.peak.Load())
}

func TestSequentialStrategy_CompileAll(t *testing.T) {
	prepared := preparedUnits(2)
	observer := &recordingObserver{}

	toolchain := adaptermocks.NewMockToolchain(t)
	toolchain.EXPECT().Compile(mock.Anything, prepared, observer).
		RunAndReturn(func(_ context.Context, prepared m.PreparedCompile, progress adapter.CompileProgress) ([]m.CompileResult, error) {
			results := make([]m.CompileResult, 0, len(prepared.Objects))

			for _, object := range prepared.Objects {
				progress.UnitStarted(object)

				result := m.CompileResult{Object: object}
				results = append(results, result)
				progress.UnitFinished(result)
			}

			return results, nil
		}).Once()

	strategy := NewSequentialStrategy(toolchain)

	results, err := strategy.CompileAll(context.Background(), prepared, observer)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, prepared.Objects, observer.started, "progress streams through the toolchain loop")
	assert.Len(t, observer.finished, 2)
	assert.Equal(t, StrategySequential, strategy.Name())
	assert.Equal(t, 1, strategy.Workers())
}

func TestSequentialStrategy_CompileAllFailure(t *testing.T) {
	prepared := preparedUnits(3)
	compileErr := errors.New("compile unit01.cpp: exit status 1")

	toolchain := adaptermocks.NewMockToolchain(t)
	toolchain.EXPECT().Name().Return("c++")
	toolchain.EXPECT().Compile(mock.Anything, prepared, mock.Anything).Return([]m.CompileResult{
		{Object: prepared.Objects[0]},
		{Object: prepared.Objects[1], Err: compileErr},
	}, compileErr)

	results, err := NewSequentialStrategy(toolchain).CompileAll(context.Background(), prepared, nil)
	require.ErrorIs(t, err, compileErr)
	assert.Len(t, results, 2)
	assert.Equal(t, "compile failed: c++: compile unit01.cpp: exit status 1", err.Error())
}

func TestProbeStrategy(t *testing.T) {
	t.Run("parallel with unit compiler", func(t *testing.T) {
		strategy := ProbeStrategy(newUnitToolchain(t), true, 8)
		assert.Equal(t, StrategyPooled, strategy.Name())
		assert.Equal(t, 8, strategy.Workers())
	})

	t.Run("parallel disabled", func(t *testing.T) {
		strategy := ProbeStrategy(newUnitToolchain(t), false, 8)
		assert.Equal(t, StrategySequential, strategy.Name())
	})

	t.Run("toolchain without unit compiler", func(t *testing.T) {
		toolchain := adaptermocks.NewMockToolchain(t)
		toolchain.EXPECT().Name().Return("c++").Maybe()

		strategy := ProbeStrategy(toolchain, true, 8)
		assert.Equal(t, StrategySequential, strategy.Name())
	})
}
