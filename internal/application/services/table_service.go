// Package services contains application use cases.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	apperrors "github.com/reglet-dev/togglegen/internal/application/errors"
	"github.com/reglet-dev/togglegen/internal/application/ports"
	"github.com/reglet-dev/togglegen/internal/domain/entities"
	"github.com/reglet-dev/togglegen/internal/domain/services"
	"github.com/reglet-dev/togglegen/internal/version"
)

// Tables are the validated, read-only inputs of every use case.
type Tables struct {
	Document *entities.Document
	Options  *entities.OptionTable
	Profiles *entities.CharacterizationTable
}

// TableService loads input documents and builds the option and
// characterization tables, collecting every finding of the run.
type TableService struct {
	loader           ports.DocumentLoader
	resolver         *services.ProfileResolver
	emitter          *services.Emitter
	generatorVersion string
	logger           *slog.Logger
}

// NewTableService creates a new table service. generatorVersion is checked
// against the "generator" constraint of the input documents.
func NewTableService(
	loader ports.DocumentLoader,
	resolver *services.ProfileResolver,
	emitter *services.Emitter,
	generatorVersion string,
	logger *slog.Logger,
) *TableService {
	if logger == nil {
		logger = slog.Default()
	}

	return &TableService{
		loader:           loader,
		resolver:         resolver,
		emitter:          emitter,
		generatorVersion: generatorVersion,
		logger:           logger,
	}
}

// Build runs load -> version check -> option table -> profile records ->
// BASED_ON resolution -> classification of every (option, profile) pair.
//
// The returned error is reserved for I/O failures. Authoring mistakes are
// returned as diagnostics; when diags.HasErrors() the tables may be partial
// and must not be used to write anything.
func (s *TableService) Build(ctx context.Context, inputs []string) (*Tables, entities.Diagnostics, error) {
	start := time.Now()
	var diags entities.Diagnostics

	if len(inputs) == 0 {
		return nil, nil, apperrors.NewValidationError("inputs", "at least one input file is required")
	}

	doc, err := s.loader.Load(ctx, inputs, &diags)
	if err != nil {
		return nil, diags, apperrors.NewConfigurationError("input", "failed to load input documents", err)
	}

	s.checkGenerator(doc, &diags)

	builder := services.NewTableBuilder()
	options := builder.BuildOptions(doc.Options, &diags)
	raws := builder.BuildProfiles(doc.Profiles, options, &diags)

	s.logger.Debug("tables loaded",
		"sources", len(doc.Sources),
		"options", options.Len(),
		"characterizations", len(raws))

	tables := &Tables{Document: doc, Options: options}

	profiles, err := s.resolver.Resolve(raws)
	if err != nil {
		var rerr *services.ResolveError
		if errors.As(err, &rerr) {
			diags.Fail(rerr.Location, rerr.Code, rerr.Profile, rerr.Err)
		} else {
			diags.Fail(entities.Location{}, entities.CodeDuplicateProfile, "", err)
		}
		s.logWarnings(diags)
		return tables, diags, nil
	}
	tables.Profiles = profiles

	// Classify everything up front so that no file is written for a
	// configuration that fails on its last profile.
	if !diags.HasErrors() {
		for _, p := range profiles.All() {
			if _, err := s.emitter.Render(options, p); err != nil {
				diags.Fail(p.Location(), entities.CodeNotImplemented, p.ID(), err)
			}
		}
	}

	s.logWarnings(diags)
	s.logger.Info("characterizations resolved",
		"count", profiles.Len(),
		"errors", len(diags.Errors()),
		"warnings", len(diags.Warnings()),
		"duration", time.Since(start))

	return tables, diags, nil
}

func (s *TableService) checkGenerator(doc *entities.Document, diags *entities.Diagnostics) {
	if doc.Generator == "" {
		return
	}

	loc := entities.Location{}
	if len(doc.Sources) > 0 {
		loc.Source = doc.Sources[0]
	}

	ok, err := version.Satisfies(s.generatorVersion, doc.Generator)
	if err != nil {
		diags.Fail(loc, entities.CodeGeneratorVersion, "generator", fmt.Errorf("%w: %w", entities.ErrInvalidField, err))
		return
	}
	if !ok {
		diags.Fail(loc, entities.CodeGeneratorVersion, "generator",
			fmt.Errorf("%w: document requires togglegen %s, running %s",
				entities.ErrGeneratorVersion, doc.Generator, s.generatorVersion))
	}
}

func (s *TableService) logWarnings(diags entities.Diagnostics) {
	for _, d := range diags.Warnings() {
		s.logger.Warn(d.Message, "code", d.Code, "location", d.Location.String())
	}
}

// validationFailure wraps the fatal findings of a run into one error.
func validationFailure(diags entities.Diagnostics) error {
	errs := diags.Errors()
	details := make([]string, 0, len(errs))
	for _, d := range errs {
		details = append(details, d.String())
	}

	err := apperrors.NewValidationError("configuration", fmt.Sprintf("%d error(s) in input documents", len(errs)), details...)
	err.Cause = diags.Err()
	return err
}
