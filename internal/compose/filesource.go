package compose

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// FileSource reads a compose request from a YAML file on disk.
type FileSource struct {
	path      string
	requestID string
}

// NewFileSource returns a source for the given order file. Each source gets
// its own request id so log lines from one compose run can be correlated.
func NewFileSource(path string) *FileSource {
	return &FileSource{
		path:      path,
		requestID: uuid.NewString(),
	}
}

// RequestID returns the id assigned to this source.
func (s *FileSource) RequestID() string {
	return s.requestID
}

// Request reads and parses the order file.
func (s *FileSource) Request() (*Request, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read order file: %w", err)
	}

	var req Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse order file: %w", err)
	}
	return &req, nil
}
