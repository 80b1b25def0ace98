// Package filesystem persists generated artifacts below an output root.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/reglet-dev/togglegen/internal/application/dto"
	"github.com/reglet-dev/togglegen/internal/application/ports"
	"github.com/reglet-dev/togglegen/internal/domain/entities"
)

// Ensure interface compliance
var _ ports.ArtifactWriter = (*ArtifactWriter)(nil)

// ArtifactWriter writes artifacts relative to a root directory. Paths never
// escape the root: every access goes through os.Root.
type ArtifactWriter struct {
	root string
}

// NewArtifactWriter creates a writer for the given output root.
func NewArtifactWriter(root string) *ArtifactWriter {
	return &ArtifactWriter{root: root}
}

// Root returns the output root directory.
func (w *ArtifactWriter) Root() string {
	return w.root
}

// Write persists changed artifacts (WriteModeWrite), reports what would be
// written (WriteModeDryRun) or compares with disk (WriteModeCheck). Files
// whose content already matches are never rewritten.
func (w *ArtifactWriter) Write(ctx context.Context, artifacts []entities.Artifact, mode dto.WriteMode) ([]dto.FileResult, error) {
	if mode == dto.WriteModeWrite {
		//nolint:gosec // G301: generated sources are meant to be world readable
		if err := os.MkdirAll(w.root, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output root: %w", err)
		}
	}

	root, err := w.open()
	if err != nil {
		return nil, err
	}
	if root != nil {
		defer func() { _ = root.Close() }()
	}

	results := make([]dto.FileResult, 0, len(artifacts))
	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		status, err := w.writeOne(root, a, mode)
		if err != nil {
			return results, fmt.Errorf("%s: %w", a.Path, err)
		}
		results = append(results, dto.FileResult{Path: a.Path, Kind: a.Kind, Status: status})
	}

	return results, nil
}

// open returns nil without error when the root does not exist yet, which
// only happens in dry-run and check modes.
func (w *ArtifactWriter) open() (*os.Root, error) {
	root, err := os.OpenRoot(w.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open output root: %w", err)
	}
	return root, nil
}

func (w *ArtifactWriter) writeOne(root *os.Root, a entities.Artifact, mode dto.WriteMode) (dto.FileStatus, error) {
	same, err := sameContent(root, a)
	if err != nil {
		return "", err
	}

	switch {
	case same:
		return dto.FileUnchanged, nil
	case mode == dto.WriteModeCheck:
		return dto.FileDrifted, nil
	case mode == dto.WriteModeDryRun:
		return dto.FileWouldWrite, nil
	}

	//nolint:gosec // G301: see Write
	if err := root.MkdirAll(path.Dir(a.Path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	//nolint:gosec // G306: generated sources are checked in and shared
	if err := root.WriteFile(a.Path, []byte(a.Content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return dto.FileWritten, nil
}

func sameContent(root *os.Root, a entities.Artifact) (bool, error) {
	if root == nil {
		return false, nil
	}
	existing, err := root.ReadFile(a.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read existing file: %w", err)
	}
	return string(existing) == a.Content, nil
}
