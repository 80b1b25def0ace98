package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/reglet-dev/togglegen/internal/application/dto"
	"github.com/reglet-dev/togglegen/internal/domain/entities"
)

// ValidateUseCase checks input documents without producing any file.
type ValidateUseCase struct {
	tables *TableService
	logger *slog.Logger
}

// NewValidateUseCase creates a new validate use case.
func NewValidateUseCase(tables *TableService, logger *slog.Logger) *ValidateUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ValidateUseCase{tables: tables, logger: logger}
}

// Execute runs the full validation. Authoring mistakes are reported in the
// response diagnostics, not as an error.
func (uc *ValidateUseCase) Execute(ctx context.Context, req dto.ValidateRequest) (*dto.ValidateResponse, error) {
	startTime := time.Now()

	tables, diags, err := uc.tables.Build(ctx, req.Inputs)
	if err != nil {
		return nil, err
	}

	resp := &dto.ValidateResponse{
		Sources:     tables.Document.Sources,
		Options:     tables.Options.Len(),
		Diagnostics: diags,
		Metadata: dto.ResponseMetadata{
			RequestID:   req.Metadata.RequestID,
			ProcessedAt: time.Now(),
			Duration:    time.Since(startTime),
		},
	}
	if tables.Profiles != nil {
		resp.Profiles = summarize(tables.Profiles.All())
	}

	uc.logger.Info("validation complete",
		"request_id", req.Metadata.RequestID,
		"errors", len(diags.Errors()),
		"warnings", len(diags.Warnings()))

	return resp, nil
}

func summarize(profiles []*entities.CharacterizationProfile) []dto.ProfileSummary {
	out := make([]dto.ProfileSummary, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, summary(p))
	}
	return out
}

func summary(p *entities.CharacterizationProfile) dto.ProfileSummary {
	return dto.ProfileSummary{
		ID:      p.ID(),
		Number:  p.Number(),
		Testing: p.Testing(),
		BasedOn: p.BasedOn(),
		Brief:   p.Brief(),
	}
}
