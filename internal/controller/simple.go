package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "razor.dev/pkg/razorbuild/internal/model"
)

var (
	colArrow   = color.HEX("#FFEB3B")
	colSuccess = color.HEX("#1976D2")
	colError   = color.Error
	colNote    = color.Info
)

// SimpleUI implements UI using the cobra command's writers.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex

	units    int
	finished int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayBuildIdentity prints the version and provenance lines.
func (s *SimpleUI) DisplayBuildIdentity(ctx context.Context, record m.ProvenanceRecord) {
	if ctx.Err() != nil {
		return
	}

	for _, line := range identityLines(record) {
		s.status(line)
	}
}

// DisplayStage announces a pipeline stage.
func (s *SimpleUI) DisplayStage(ctx context.Context, stage string, detail string) {
	if ctx.Err() != nil {
		return
	}

	if detail == "" {
		s.status(stage)
		return
	}

	s.status(fmt.Sprintf("%s: %s", stage, detail))
}

// DisplaySources prints the source set as a table.
func (s *SimpleUI) DisplaySources(ctx context.Context, sources []m.Path) {
	if ctx.Err() != nil {
		return
	}

	s.printf("\n%s", renderSourcesTable(sources))
}

// DisplayPlan prints the compile and link flag plan.
func (s *SimpleUI) DisplayPlan(ctx context.Context, flags m.ToolchainFlags) {
	if ctx.Err() != nil {
		return
	}

	s.printf("\n%s", renderPlanTable(flags))
}

// DisplayCompileStart announces the compile strategy.
func (s *SimpleUI) DisplayCompileStart(ctx context.Context, strategy string, workers int, units int) {
	if ctx.Err() != nil {
		return
	}

	s.mu.Lock()
	s.units = units
	s.finished = 0
	s.mu.Unlock()

	s.status(fmt.Sprintf("Compiling %d unit(s) with the %s strategy (%d worker(s))", units, strategy, workers))
}

// DisplayUnitStarted is silent for SimpleUI; completion lines carry the progress.
func (s *SimpleUI) DisplayUnitStarted(_ context.Context, _ m.Path) {}

// DisplayUnitFinished prints one line per compiled unit. Calls may arrive
// concurrently; lines are numbered in the order they are written.
func (s *SimpleUI) DisplayUnitFinished(ctx context.Context, result m.CompileResult) {
	if ctx.Err() != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.finished++
	progress := fmt.Sprintf("[%d/%d]", s.finished, s.units)

	switch {
	case result.Failed():
		s.writef("%s %s %s\n", progress, colError.Sprint("FAILED"), result.Object)
	case result.Skipped:
		s.writef("%s %s %s\n", progress, colNote.Sprint("up-to-date"), result.Object)
	default:
		s.writef("%s %s (%s)\n", progress, result.Object, result.Duration.Round(time.Millisecond))
	}
}

// DisplayArtifact prints the produced artifact path.
func (s *SimpleUI) DisplayArtifact(ctx context.Context, artifact m.Path) {
	if ctx.Err() != nil {
		return
	}

	s.status(fmt.Sprintf("Built %s", artifact))
}

// DisplayRemoved prints a path removed by clean.
func (s *SimpleUI) DisplayRemoved(ctx context.Context, path m.Path) {
	if ctx.Err() != nil {
		return
	}

	s.printf("removing %s\n", path)
}

// DisplayReport prints the summary of a saved build report and its failed units.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.BuildReport) {
	if ctx.Err() != nil {
		return
	}

	s.printf("\n%s", renderReportTable(report))

	for _, result := range report.Results {
		if result.Failed() {
			s.printf("%s %s: %s\n", colError.Sprint("FAILED"), result.Object, result.Failure())
		}
	}
}

// DisplayError prints a failure diagnostic to stderr.
func (s *SimpleUI) DisplayError(_ context.Context, err error) {
	if err == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s %v\n", colError.Sprint("error:"), err)
}

func (s *SimpleUI) status(line string) {
	s.printf("%s%s\n", colArrow.Sprint("-> "), colSuccess.Sprint(line))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writef(format, args...)
}

// writef requires s.mu.
func (s *SimpleUI) writef(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func identityLines(record m.ProvenanceRecord) []string {
	lines := []string{fmt.Sprintf("Building version: %s", record.Version)}

	for _, name := range record.DependencyNames() {
		lines = append(lines, fmt.Sprintf("%s version: %s", name, record.DependencyVersions[name]))
	}

	upstream := record.UpstreamName
	if upstream == "" {
		upstream = "upstream"
	}

	return append(lines, fmt.Sprintf("%s commit ID: %s", upstream, record.UpstreamRevision))
}

func renderSourcesTable(sources []m.Path) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Source", "Kind"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, source := range sources {
		table.Append([]string{string(source), sourceKind(source)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(sources)), ""})
	table.Render()

	return tableBuffer.String()
}

func sourceKind(source m.Path) string {
	path := string(source)

	switch {
	case strings.Contains(path, "third_party/abseil-cpp"):
		return "vendored"
	case strings.Contains(path, "lazy_tensor"):
		return "lazy tensor"
	default:
		return "first-party"
	}
}

func renderPlanTable(flags m.ToolchainFlags) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Setting", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	appendRows := func(name string, values []string) {
		for i, value := range values {
			label := ""
			if i == 0 {
				label = name
			}

			table.Append([]string{label, value})
		}
	}

	includes := make([]string, 0, len(flags.IncludeDirs))
	for _, dir := range flags.IncludeDirs {
		includes = append(includes, string(dir))
	}

	appendRows("compile args", flags.CompileArgs)
	appendRows("include dirs", includes)
	appendRows("macros", flags.Macros)
	appendRows("library dirs", flags.Link.LibrarySearchPaths)
	appendRows("libraries", flags.Link.Libraries)
	appendRows("runtime paths", flags.Link.RuntimePaths)
	appendRows("link flags", flags.Link.ExtraFlags)

	table.Render()

	return tableBuffer.String()
}

func renderReportTable(report m.BuildReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Field", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	compiled, skipped, failed := report.UnitCounts()

	artifact := string(report.Artifact)
	if artifact == "" {
		artifact = "none"
	}

	table.AppendBulk([][]string{
		{"version", report.Version},
		{"platform", string(report.Platform)},
		{"strategy", fmt.Sprintf("%s (%d worker(s))", report.Strategy, report.Workers)},
		{"sources", fmt.Sprintf("%d (%s)", report.SourceCount, shortFingerprint(report.SourceFingerprint))},
		{"units", fmt.Sprintf("%d compiled, %d up-to-date, %d failed", compiled, skipped, failed)},
		{"artifact", artifact},
	})

	if !report.StartedAt.IsZero() && !report.FinishedAt.IsZero() {
		table.Append([]string{"duration", report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond).String()})
	}

	table.Render()

	return tableBuffer.String()
}

func shortFingerprint(fingerprint string) string {
	if len(fingerprint) > 12 {
		return fingerprint[:12]
	}

	return fingerprint
}
