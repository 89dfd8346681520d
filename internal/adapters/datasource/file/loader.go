// Package file loads the preloaded dataset from disk and watches it for changes.
package file

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/okian/regista/internal/adapters/fbref"
	"github.com/okian/regista/internal/adapters/repository"
)

// PreloadedSource is the registry label of the dataset loaded from disk.
const PreloadedSource = "preloaded"

// Loader reads the preloaded CSV export.
type Loader struct {
	path   string
	parser *fbref.Parser
}

// NewLoader creates a loader for the CSV at path.
func NewLoader(path string, parser *fbref.Parser) *Loader {
	if parser == nil {
		parser = fbref.NewParser()
	}
	return &Loader{path: path, parser: parser}
}

// Load parses the file and returns it as the preloaded dataset.
func (l *Loader) Load(ctx context.Context) (repository.Dataset, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return repository.Dataset{}, fmt.Errorf("open preloaded data: %w", err)
	}
	defer f.Close()

	rows, err := l.parser.Parse(ctx, f, "")
	if err != nil {
		return repository.Dataset{}, fmt.Errorf("parse preloaded data: %w", err)
	}

	return repository.Dataset{
		Source:   PreloadedSource,
		Rows:     rows,
		LoadedAt: time.Now(),
	}, nil
}

// Path returns the watched file path.
func (l *Loader) Path() string { return l.path }
