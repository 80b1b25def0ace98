package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/reglet-dev/togglegen/internal/application/dto"
	apperrors "github.com/reglet-dev/togglegen/internal/application/errors"
	"github.com/reglet-dev/togglegen/internal/application/ports"
	"github.com/reglet-dev/togglegen/internal/domain/entities"
	"github.com/reglet-dev/togglegen/internal/domain/services"
)

// GenerateUseCase orchestrates the complete generate workflow.
// This is a pure application layer component that depends only on ports.
type GenerateUseCase struct {
	tables    *TableService
	emitter   *services.Emitter
	assembler ports.ArtifactAssembler
	writer    ports.ArtifactWriter
	logger    *slog.Logger
}

// NewGenerateUseCase creates a new generate use case.
func NewGenerateUseCase(
	tables *TableService,
	emitter *services.Emitter,
	assembler ports.ArtifactAssembler,
	writer ports.ArtifactWriter,
	logger *slog.Logger,
) *GenerateUseCase {
	if logger == nil {
		logger = slog.Default()
	}

	return &GenerateUseCase{
		tables:    tables,
		emitter:   emitter,
		assembler: assembler,
		writer:    writer,
		logger:    logger,
	}
}

// Execute validates everything, renders every artifact in memory and only
// then hands them to the writer.
func (uc *GenerateUseCase) Execute(ctx context.Context, req dto.GenerateRequest) (*dto.GenerateResponse, error) {
	startTime := time.Now()
	logger := uc.logger.With("request_id", req.Metadata.RequestID)

	logger.Info("loading input documents", "inputs", strings.Join(req.Inputs, ","))

	// 1. Load, validate and resolve
	tables, diags, err := uc.tables.Build(ctx, req.Inputs)
	if err != nil {
		return nil, err
	}
	if diags.HasErrors() {
		return nil, validationFailure(diags)
	}

	// 2. Selection
	selected, err := selectProfiles(tables.Profiles, req.Selection)
	if err != nil {
		return nil, err
	}
	logger.Info("profiles selected", "selected", len(selected), "total", tables.Profiles.Len())

	// 3. Render every profile, then lay out the files
	assembly, err := uc.render(tables, selected)
	if err != nil {
		return nil, err
	}

	artifacts, err := uc.assembler.Assemble(assembly)
	if err != nil {
		return nil, apperrors.NewGenerationError("artifacts", "assembly failed", err)
	}
	logger.Info("artifacts rendered", "count", len(artifacts))

	// 4. Write (or compare)
	files, err := uc.writer.Write(ctx, artifacts, req.Mode)
	if err != nil {
		return nil, apperrors.NewGenerationError("artifacts", "write failed", err)
	}

	for _, f := range files {
		logger.Debug("artifact", "path", f.Path, "status", f.Status)
	}

	return &dto.GenerateResponse{
		Artifacts:   artifacts,
		Files:       files,
		Diagnostics: diags,
		Metadata: dto.ResponseMetadata{
			RequestID:   req.Metadata.RequestID,
			ProcessedAt: time.Now(),
			Duration:    time.Since(startTime),
		},
	}, nil
}

func (uc *GenerateUseCase) render(tables *Tables, selected []*entities.CharacterizationProfile) (ports.Assembly, error) {
	assembly := ports.Assembly{
		Options:    tables.Options,
		Profiles:   tables.Profiles,
		Selected:   selected,
		Renderings: make(map[string]*services.ProfileRendering, tables.Profiles.Len()),
	}

	defaults, err := uc.emitter.Render(tables.Options, nil)
	if err != nil {
		return ports.Assembly{}, apperrors.NewGenerationError("defaults", "render failed", err)
	}
	assembly.Defaults = defaults

	for _, p := range selected {
		r, err := uc.emitter.Render(tables.Options, p)
		if err != nil {
			return ports.Assembly{}, apperrors.NewGenerationError(p.ID(), "render failed", err)
		}
		assembly.Renderings[p.ID()] = r
	}

	return assembly, nil
}

// selectProfiles applies --char-id / --select / --testing-only. Unknown ids are an error.
func selectProfiles(
	table *entities.CharacterizationTable,
	opts dto.SelectionOptions,
) ([]*entities.CharacterizationProfile, error) {
	if opts.IsZero() {
		return table.All(), nil
	}

	selector := services.NewProfileSelector().WithExclusiveProfiles(opts.CharIDs)
	if opts.TestingOnly {
		selector.WithTesting(true)
	}

	if opts.SelectExpression != "" {
		program, err := services.CompileSelectExpression(opts.SelectExpression)
		if err != nil {
			return nil, apperrors.NewValidationError(
				"select",
				fmt.Sprintf("%v\nExample: testing && number > 1", err),
			)
		}
		selector.WithSelectExpression(program)
	}

	selected, missing := selector.Select(table)
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(
			"char-id",
			fmt.Sprintf("--char-id references non-existent characterization: %s", strings.Join(missing, ", ")),
		)
	}
	return selected, nil
}
