package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/reglet-dev/togglegen/internal/domain/entities"
)

// documentParser is implemented by the CSV and YAML loaders.
type documentParser interface {
	Parse(source string, r io.Reader, doc *entities.Document, diags *entities.Diagnostics) error
}

// DocumentLoader loads every input file of a run and concatenates options
// and characterizations in file order.
type DocumentLoader struct {
	csv  *CSVLoader
	yaml *YAMLLoader
}

// NewDocumentLoader creates a new document loader.
func NewDocumentLoader(csv *CSVLoader, yaml *YAMLLoader) *DocumentLoader {
	return &DocumentLoader{csv: csv, yaml: yaml}
}

// Load implements ports.DocumentLoader.
func (l *DocumentLoader) Load(ctx context.Context, paths []string, diags *entities.Diagnostics) (*entities.Document, error) {
	doc := &entities.Document{}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p, err := l.parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := l.loadFile(path, p, doc, diags); err != nil {
			return nil, err
		}
		doc.Sources = append(doc.Sources, path)
	}

	return doc, nil
}

func (l *DocumentLoader) parserFor(path string) (documentParser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		return l.csv, nil
	case ".yaml", ".yml":
		return l.yaml, nil
	default:
		return nil, fmt.Errorf("unsupported input %q (expected .csv, .tsv, .yaml or .yml)", path)
	}
}

func (l *DocumentLoader) loadFile(path string, p documentParser, doc *entities.Document, diags *entities.Diagnostics) error {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	root, err := os.OpenRoot(filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("failed to open input directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return p.Parse(path, file, doc, diags)
}
