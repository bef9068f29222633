package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "razor.dev/pkg/razorbuild/internal/model"
)

// ReportStore persists build reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.BuildReport) error
	LoadReport(path m.Path) (m.BuildReport, error)
}

// YAMLReportStore stores reports as YAML documents.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes report to path, replacing any previous report.
func (s *YAMLReportStore) SaveReport(path m.Path, report m.BuildReport) error {
	report.Results = append([]m.CompileResult(nil), report.Results...)
	for i := range report.Results {
		if report.Results[i].Err != nil {
			report.Results[i].Error = report.Results[i].Err.Error()
		}
	}

	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	tmp := string(path) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if err := os.Rename(tmp, string(path)); err != nil {
		return fmt.Errorf("replace report: %w", err)
	}

	return nil
}

// LoadReport reads a report written by SaveReport.
func (s *YAMLReportStore) LoadReport(path m.Path) (m.BuildReport, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.BuildReport{}, fmt.Errorf("read report: %w", err)
	}

	var report m.BuildReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.BuildReport{}, fmt.Errorf("parse report %s: %w", path, err)
	}

	return report, nil
}
