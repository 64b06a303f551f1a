// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package references

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/content-engine/pkg/types"
)

// ReferenceFile is the on-disk representation of one waterfall run. The
// operator can save a run to a file and splice the references into an
// article later without re-spending search quota.
type ReferenceFile struct {
	Keyword string            `yaml:"keyword"`
	Results []types.Reference `yaml:"results"`
	Summary RunSummary        `yaml:"summary"`
}

// RunSummary stores result statistics and a timestamp.
type RunSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteReferenceFile saves a waterfall run to a YAML file.
func WriteReferenceFile(path, keyword string, refs []types.Reference) error {
	rf := ReferenceFile{
		Keyword: keyword,
		Results: refs,
		Summary: RunSummary{
			Total:     len(refs),
			Timestamp: time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(rf)
	if err != nil {
		return fmt.Errorf("marshaling reference file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReferenceFile loads a previously saved waterfall run.
func ReadReferenceFile(path string) (*ReferenceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference file %s: %w", path, err)
	}
	var rf ReferenceFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing reference file %s: %w", path, err)
	}
	return &rf, nil
}
