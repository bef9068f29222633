package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "razor.dev/pkg/razorbuild/internal/model"
)

const maxActiveUnits = 6

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFEB3B"))
	stageStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#1976D2"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E53935"))
)

// TUI implements UI using Bubble Tea for the compile stage. Inspection and
// clean output is rendered by an embedded SimpleUI.
type TUI struct {
	text *SimpleUI
	cmd  *cobra.Command

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{text: NewSimpleUI(cmd), cmd: cmd}
}

// Start launches the interactive program in build mode.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if newStartConfig(options).mode != ModeBuild {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.program = tea.NewProgram(newBuildModel(),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	)
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Debug("TUI program stopped", "error", err)
		}
	}(t.program, t.done)

	return nil
}

// Close asks the program to render its final frame and exit.
func (t *TUI) Close(_ context.Context) {
	if program := t.current(); program != nil {
		program.Send(finishMsg{})
	}
}

// Wait blocks until the program exits.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// DisplayBuildIdentity shows the version and provenance lines.
func (t *TUI) DisplayBuildIdentity(ctx context.Context, record m.ProvenanceRecord) {
	if !t.send(identityMsg{lines: identityLines(record)}) {
		t.text.DisplayBuildIdentity(ctx, record)
	}
}

// DisplayStage shows the current stage.
func (t *TUI) DisplayStage(ctx context.Context, stage string, detail string) {
	if !t.send(stageMsg{stage: stage, detail: detail}) {
		t.text.DisplayStage(ctx, stage, detail)
	}
}

// DisplaySources prints the source table.
func (t *TUI) DisplaySources(ctx context.Context, sources []m.Path) {
	if program := t.current(); program != nil {
		program.Println(renderSourcesTable(sources))
		return
	}

	t.text.DisplaySources(ctx, sources)
}

// DisplayPlan prints the flag plan.
func (t *TUI) DisplayPlan(ctx context.Context, flags m.ToolchainFlags) {
	if program := t.current(); program != nil {
		program.Println(renderPlanTable(flags))
		return
	}

	t.text.DisplayPlan(ctx, flags)
}

// DisplayReport prints a saved build report.
func (t *TUI) DisplayReport(ctx context.Context, report m.BuildReport) {
	if program := t.current(); program != nil {
		program.Println(renderReportTable(report))
		return
	}

	t.text.DisplayReport(ctx, report)
}

// DisplayCompileStart resets the progress bar.
func (t *TUI) DisplayCompileStart(ctx context.Context, strategy string, workers int, units int) {
	if !t.send(compileStartMsg{strategy: strategy, workers: workers, units: units}) {
		t.text.DisplayCompileStart(ctx, strategy, workers, units)
	}
}

// DisplayUnitStarted marks a unit as in flight.
func (t *TUI) DisplayUnitStarted(ctx context.Context, object m.Path) {
	if !t.send(unitStartedMsg{object: object}) {
		t.text.DisplayUnitStarted(ctx, object)
	}
}

// DisplayUnitFinished advances the progress bar.
func (t *TUI) DisplayUnitFinished(ctx context.Context, result m.CompileResult) {
	if !t.send(unitFinishedMsg{result: result}) {
		t.text.DisplayUnitFinished(ctx, result)
	}
}

// DisplayArtifact shows the artifact path.
func (t *TUI) DisplayArtifact(ctx context.Context, artifact m.Path) {
	if !t.send(artifactMsg{artifact: artifact}) {
		t.text.DisplayArtifact(ctx, artifact)
	}
}

// DisplayRemoved prints a path removed by clean.
func (t *TUI) DisplayRemoved(ctx context.Context, path m.Path) {
	t.text.DisplayRemoved(ctx, path)
}

// DisplayError shows the failure inside the program and on stderr.
func (t *TUI) DisplayError(ctx context.Context, err error) {
	t.send(errorMsg{err: err})
	t.text.DisplayError(ctx, err)
}

func (t *TUI) current() *tea.Program {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program
}

func (t *TUI) send(msg tea.Msg) bool {
	program := t.current()
	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

type (
	identityMsg     struct{ lines []string }
	stageMsg        struct{ stage, detail string }
	compileStartMsg struct {
		strategy string
		workers  int
		units    int
	}
	unitStartedMsg  struct{ object m.Path }
	unitFinishedMsg struct{ result m.CompileResult }
	artifactMsg     struct{ artifact m.Path }
	errorMsg        struct{ err error }
	finishMsg       struct{}
)

// buildModel is the Bubble Tea model for the build stage.
type buildModel struct {
	identity []string
	stage    string
	strategy string
	workers  int

	units    int
	finished int
	skipped  int
	failures []string
	active   []m.Path

	bar      progress.Model
	artifact m.Path
	err      error
	quitting bool
}

func newBuildModel() buildModel {
	return buildModel{
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (bm buildModel) Init() tea.Cmd {
	return nil
}

//nolint:cyclop // one case per message type
func (bm buildModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.bar.Width = min(max(msg.Width-20, 10), 80)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			bm.quitting = true
			return bm, tea.Quit
		}
	case identityMsg:
		bm.identity = msg.lines
	case stageMsg:
		bm.stage = msg.stage
		if msg.detail != "" {
			bm.stage += ": " + msg.detail
		}
	case compileStartMsg:
		bm.strategy, bm.workers, bm.units = msg.strategy, msg.workers, msg.units
		bm.finished, bm.skipped, bm.failures, bm.active = 0, 0, nil, nil
	case unitStartedMsg:
		bm.active = append(bm.active, msg.object)
	case unitFinishedMsg:
		bm = bm.finishUnit(msg.result)
	case artifactMsg:
		bm.artifact = msg.artifact
	case errorMsg:
		bm.err = msg.err
	case finishMsg:
		bm.quitting = true
		return bm, tea.Quit
	}

	return bm, nil
}

func (bm buildModel) finishUnit(result m.CompileResult) buildModel {
	bm.finished++

	if result.Skipped {
		bm.skipped++
	}

	if result.Failed() {
		bm.failures = append(bm.failures, fmt.Sprintf("%s: %s", result.Object, result.Failure()))
	}

	active := make([]m.Path, 0, len(bm.active))
	for _, object := range bm.active {
		if object != result.Object {
			active = append(active, object)
		}
	}

	bm.active = active

	return bm
}

func (bm buildModel) percent() float64 {
	if bm.units == 0 {
		return 0
	}

	return float64(bm.finished) / float64(bm.units)
}

func (bm buildModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("razorbuild") + "\n\n")

	for _, line := range bm.identity {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	if bm.stage != "" {
		fmt.Fprintf(&b, "\n  %s\n", stageStyle.Render(bm.stage))
	}

	if bm.units > 0 {
		fmt.Fprintf(&b, "\n  %s %d/%d", bm.bar.ViewAs(bm.percent()), bm.finished, bm.units)
		fmt.Fprintf(&b, "  %s\n", faintStyle.Render(fmt.Sprintf("%s, %d worker(s), %d up-to-date", bm.strategy, bm.workers, bm.skipped)))

		for i, object := range bm.active {
			if i == maxActiveUnits {
				fmt.Fprintf(&b, "    %s\n", faintStyle.Render(fmt.Sprintf("... %d more", len(bm.active)-maxActiveUnits)))
				break
			}

			fmt.Fprintf(&b, "    %s\n", faintStyle.Render(string(object)))
		}
	}

	for _, failure := range bm.failures {
		fmt.Fprintf(&b, "  %s %s\n", failureStyle.Render("✗"), failure)
	}

	if bm.artifact != "" {
		fmt.Fprintf(&b, "\n  ✓ Built %s\n", bm.artifact)
	}

	if bm.err != nil {
		fmt.Fprintf(&b, "\n  %s\n", failureStyle.Render(bm.err.Error()))
	}

	return b.String()
}
