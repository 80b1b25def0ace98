// Package container provides dependency injection for the application.
package container

import (
	"fmt"
	"log/slog"

	"github.com/reglet-dev/togglegen/internal/application/ports"
	"github.com/reglet-dev/togglegen/internal/application/services"
	domainservices "github.com/reglet-dev/togglegen/internal/domain/services"
	"github.com/reglet-dev/togglegen/internal/infrastructure/codegen"
	"github.com/reglet-dev/togglegen/internal/infrastructure/config"
	"github.com/reglet-dev/togglegen/internal/infrastructure/output"
	"github.com/reglet-dev/togglegen/internal/infrastructure/persistence/filesystem"
	"github.com/reglet-dev/togglegen/internal/infrastructure/system"
	"github.com/reglet-dev/togglegen/internal/infrastructure/validation"
	"github.com/reglet-dev/togglegen/internal/version"
)

// Container holds all application dependencies.
type Container struct {
	loader     ports.DocumentLoader
	assembler  ports.ArtifactAssembler
	writer     ports.ArtifactWriter
	formatters ports.ReportFormatterFactory

	generateUseCase *services.GenerateUseCase
	validateUseCase *services.ValidateUseCase
	showUseCase     *services.ShowProfileUseCase

	systemCfg system.Config
	logger    *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger *slog.Logger
	// Config is the output layout; the zero value means system.DefaultConfig()
	Config *system.Config
	// GeneratorVersion is checked against document constraints; empty means
	// the version of this build
	GeneratorVersion string
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	systemCfg := system.DefaultConfig()
	if opts.Config != nil {
		systemCfg = *opts.Config
	}
	if err := systemCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	generatorVersion := opts.GeneratorVersion
	if generatorVersion == "" {
		generatorVersion = version.Get().Version
	}

	// Infrastructure adapters
	validator, err := validation.NewSchemaValidator()
	if err != nil {
		return nil, err
	}
	loader := config.NewDocumentLoader(config.NewCSVLoader(), config.NewYAMLLoader(validator))

	assembler, err := codegen.NewAssembler(systemCfg)
	if err != nil {
		return nil, err
	}
	writer := filesystem.NewArtifactWriter(systemCfg.OutputRoot)

	// Domain services
	emitter := domainservices.NewEmitter()
	resolver := domainservices.NewProfileResolver()

	// Application services
	tables := services.NewTableService(loader, resolver, emitter, generatorVersion, opts.Logger)

	return &Container{
		loader:          loader,
		assembler:       assembler,
		writer:          writer,
		formatters:      output.NewFormatterFactory(),
		generateUseCase: services.NewGenerateUseCase(tables, emitter, assembler, writer, opts.Logger),
		validateUseCase: services.NewValidateUseCase(tables, opts.Logger),
		showUseCase:     services.NewShowProfileUseCase(tables, emitter, opts.Logger),
		systemCfg:       systemCfg,
		logger:          opts.Logger,
	}, nil
}

// GenerateUseCase returns the generate use case.
func (c *Container) GenerateUseCase() *services.GenerateUseCase {
	return c.generateUseCase
}

// ValidateUseCase returns the validate use case.
func (c *Container) ValidateUseCase() *services.ValidateUseCase {
	return c.validateUseCase
}

// ShowProfileUseCase returns the show use case.
func (c *Container) ShowProfileUseCase() *services.ShowProfileUseCase {
	return c.showUseCase
}

// DocumentLoader returns the document loader port.
func (c *Container) DocumentLoader() ports.DocumentLoader {
	return c.loader
}

// Formatters returns the report formatter factory.
func (c *Container) Formatters() ports.ReportFormatterFactory {
	return c.formatters
}

// SystemConfig returns the output layout.
func (c *Container) SystemConfig() system.Config {
	return c.systemCfg
}

// Logger returns the configured logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
