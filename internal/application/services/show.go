package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/reglet-dev/togglegen/internal/application/dto"
	apperrors "github.com/reglet-dev/togglegen/internal/application/errors"
	"github.com/reglet-dev/togglegen/internal/domain/services"
)

// ShowProfileUseCase resolves one profile and reports every option's
// effective value and classification.
type ShowProfileUseCase struct {
	tables  *TableService
	emitter *services.Emitter
	logger  *slog.Logger
}

// NewShowProfileUseCase creates a new show use case.
func NewShowProfileUseCase(tables *TableService, emitter *services.Emitter, logger *slog.Logger) *ShowProfileUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ShowProfileUseCase{tables: tables, emitter: emitter, logger: logger}
}

// Execute builds the tables and renders the requested profile.
func (uc *ShowProfileUseCase) Execute(ctx context.Context, req dto.ShowRequest) (*dto.ShowResponse, error) {
	startTime := time.Now()

	tables, diags, err := uc.tables.Build(ctx, req.Inputs)
	if err != nil {
		return nil, err
	}
	if diags.HasErrors() {
		return nil, validationFailure(diags)
	}

	profile, ok := tables.Profiles.Get(req.CharID)
	if !ok {
		return nil, apperrors.NewValidationError("char-id",
			fmt.Sprintf("characterization %q is not defined", req.CharID))
	}

	rendering, err := uc.emitter.Render(tables.Options, profile)
	if err != nil {
		return nil, apperrors.NewGenerationError(profile.ID(), "render failed", err)
	}

	view := dto.ProfileView{
		ProfileSummary: summary(profile),
		Description:    profile.Description(),
		Options:        make([]dto.OptionView, 0, len(rendering.Options)),
		Reset:          rendering.Reset,
	}
	for _, r := range rendering.Options {
		override, ok := profile.Override(r.Option.Name)
		view.Options = append(view.Options, dto.OptionView{
			Name:        r.Option.Name,
			Value:       r.Value,
			Default:     r.Option.Default,
			Overridden:  ok && override != "",
			Decl:        r.Option.Decl.String(),
			Storage:     r.Classification.Kind.String(),
			Mutable:     r.Classification.Mutable,
			Declaration: r.Decl,
			Definition:  r.Def,
		})
	}

	uc.logger.Debug("characterization shown", "request_id", req.Metadata.RequestID, "char_id", profile.ID())

	return &dto.ShowResponse{
		Profile:     view,
		Diagnostics: diags,
		Metadata: dto.ResponseMetadata{
			RequestID:   req.Metadata.RequestID,
			ProcessedAt: time.Now(),
			Duration:    time.Since(startTime),
		},
	}, nil
}
