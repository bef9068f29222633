package model

import "time"

// CompileResult is the outcome of one compilation unit.
type CompileResult struct {
	Object   Path          `yaml:"object"`
	Source   Path          `yaml:"source,omitempty"`
	Duration time.Duration `yaml:"duration"`
	Skipped  bool          `yaml:"skipped,omitempty"`
	Err      error         `yaml:"-"`
	Error    string        `yaml:"error,omitempty"`
}

// Failed reports whether the unit failed to compile. Results loaded from a
// report carry the failure in Error only.
func (r CompileResult) Failed() bool {
	return r.Err != nil || r.Error != ""
}

// Failure returns the failure text, or "" when the unit did not fail.
func (r CompileResult) Failure() string {
	if r.Err != nil {
		return r.Err.Error()
	}

	return r.Error
}

// BuildReport summarizes one build invocation.
type BuildReport struct {
	Version           string           `yaml:"version"`
	Provenance        ProvenanceRecord `yaml:"provenance"`
	Platform          Platform         `yaml:"platform"`
	Strategy          string           `yaml:"strategy"`
	Workers           int              `yaml:"workers"`
	SourceCount       int              `yaml:"source_count"`
	SourceFingerprint string           `yaml:"source_fingerprint"`
	Flags             ToolchainFlags   `yaml:"flags"`
	Results           []CompileResult  `yaml:"results"`
	Artifact          Path             `yaml:"artifact"`
	StartedAt         time.Time        `yaml:"started_at"`
	FinishedAt        time.Time        `yaml:"finished_at"`
}

// UnitCounts returns the number of compiled, up-to-date and failed units.
func (r BuildReport) UnitCounts() (compiled, skipped, failed int) {
	for _, result := range r.Results {
		switch {
		case result.Failed():
			failed++
		case result.Skipped:
			skipped++
		default:
			compiled++
		}
	}

	return compiled, skipped, failed
}
