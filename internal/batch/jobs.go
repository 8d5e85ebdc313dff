// Package batch solves many triangles from a YAML job file, concurrently,
// and can keep re-solving the file as it changes on disk.
package batch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"trisolve/internal/triangle"
)

// ErrNoJobs is returned for a job file without any jobs.
var ErrNoJobs = errors.New("job file contains no jobs")

// Job is one named triangle in a job file.
type Job struct {
	Name          string `yaml:"name"`
	triangle.Spec `yaml:",inline"`
}

// File is the on-disk job file layout:
//
//	jobs:
//	  - name: roof truss
//	    schema: SWS
//	    a: 3
//	    b: 4
//	    gamma: 90
type File struct {
	Jobs []Job `yaml:"jobs"`
}

// Parse decodes a job file. Unknown keys are rejected so that a misspelt
// measurement is not silently treated as missing. Unnamed jobs are named
// job-1, job-2, ... by position.
func Parse(data []byte) ([]Job, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoJobs
		}
		return nil, fmt.Errorf("failed to parse job file: %w", err)
	}
	if len(f.Jobs) == 0 {
		return nil, ErrNoJobs
	}

	for i := range f.Jobs {
		if f.Jobs[i].Name == "" {
			f.Jobs[i].Name = fmt.Sprintf("job-%d", i+1)
		}
	}
	return f.Jobs, nil
}

// Load reads and parses the job file at path.
func Load(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	return Parse(data)
}
