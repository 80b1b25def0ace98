// Package codegen lays out rendered options as C header and source files.
package codegen

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"text/template"

	"github.com/reglet-dev/togglegen/internal/application/ports"
	"github.com/reglet-dev/togglegen/internal/domain/entities"
	"github.com/reglet-dev/togglegen/internal/domain/services"
	"github.com/reglet-dev/togglegen/internal/infrastructure/system"
	"github.com/reglet-dev/togglegen/internal/templates"
)

var (
	trailingBlanks = regexp.MustCompile(`(?m)[ \t]+$`)
	blankRuns      = regexp.MustCompile(`\n\n\n+`)
	nonIdentChars  = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

// Assembler implements ports.ArtifactAssembler with the embedded C templates.
type Assembler struct {
	layout system.Config
	tmpl   *template.Template
}

var _ ports.ArtifactAssembler = (*Assembler)(nil)

// NewAssembler creates an assembler for the given output layout.
func NewAssembler(layout system.Config) (*Assembler, error) {
	tmpl, err := templates.CTemplates()
	if err != nil {
		return nil, err
	}
	return &Assembler{layout: layout, tmpl: tmpl}, nil
}

// Assemble renders the master header and source plus one header and source
// per selected profile. Output order is stable: master files first, then
// profiles in CHAR_ID order.
func (a *Assembler) Assemble(in ports.Assembly) ([]entities.Artifact, error) {
	if in.Profiles == nil || in.Profiles.Len() == 0 {
		return nil, entities.ErrNoProfiles
	}

	master, err := a.masterData(in)
	if err != nil {
		return nil, err
	}

	artifacts := make([]entities.Artifact, 0, 2+2*len(in.Selected))

	header, err := a.execute(templates.MasterHeader, master)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, entities.Artifact{
		Kind:    entities.ArtifactMasterHeader,
		Path:    a.layout.MasterHeaderPath(),
		Content: header,
	})

	source, err := a.execute(templates.MasterSource, master)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, entities.Artifact{
		Kind:    entities.ArtifactMasterSource,
		Path:    a.layout.MasterSourcePath(),
		Content: source,
	})

	for _, p := range in.Selected {
		r, ok := in.Renderings[p.ID()]
		if !ok {
			return nil, fmt.Errorf("no rendering for characterization %s", p.ID())
		}

		files, err := a.profileArtifacts(p, r)
		if err != nil {
			return nil, fmt.Errorf("characterization %s: %w", p.ID(), err)
		}
		artifacts = append(artifacts, files...)
	}

	return artifacts, nil
}

func (a *Assembler) masterData(in ports.Assembly) (templates.MasterData, error) {
	profiles := in.Profiles.All()

	defaultID := a.layout.DefaultCharID
	if defaultID == "" {
		defaultID = profiles[0].ID()
	} else if _, ok := in.Profiles.Get(defaultID); !ok {
		return templates.MasterData{}, fmt.Errorf("default CHAR_ID %s is not a declared characterization", defaultID)
	}

	if err := a.checkResetFunction(in); err != nil {
		return templates.MasterData{}, err
	}

	data := templates.MasterData{
		Guard:         guard(a.layout.HeaderName),
		FileName:      a.layout.HeaderName,
		HeaderName:    a.layout.HeaderName,
		DefaultCharID: defaultID,
		Profiles:      make([]templates.ProfileEntry, 0, len(profiles)),
	}

	if in.Defaults != nil {
		for _, r := range in.Defaults.Options {
			data.Options = append(data.Options, templates.OptionBlock{
				Comment: BriefComment(r.Option.Brief, r.Option.Description),
				Decl:    r.Decl,
			})
		}
	}

	for _, p := range profiles {
		data.Profiles = append(data.Profiles, templates.ProfileEntry{
			ID:     p.ID(),
			Number: p.Number(),
			Brief:  p.Brief(),
			Header: a.layout.ProfileInclude(p.ID(), ".h"),
			Source: a.layout.ProfileInclude(p.ID(), ".c"),
		})
	}

	return data, nil
}

// checkResetFunction rejects a reset function named like an option or a
// CHAR_ID, which would declare the same symbol twice.
func (a *Assembler) checkResetFunction(in ports.Assembly) error {
	name := a.layout.ResetFunction
	if in.Options != nil {
		if _, ok := in.Options.Get(name); ok {
			return fmt.Errorf("%w: reset function %s is also an option name", entities.ErrInvalidIdentifier, name)
		}
	}
	if _, ok := in.Profiles.Get(name); ok {
		return fmt.Errorf("%w: reset function %s is also a CHAR_ID", entities.ErrInvalidIdentifier, name)
	}
	return nil
}

func (a *Assembler) profileArtifacts(
	p *entities.CharacterizationProfile,
	r *services.ProfileRendering,
) ([]entities.Artifact, error) {
	headerPath := a.layout.ProfileHeaderPath(p.ID())

	data := templates.ProfileData{
		Guard:         guard(path.Join(a.layout.CharacterizationDir, p.ID()+"_H")),
		FileName:      path.Base(headerPath),
		FileDoc:       fileDoc(p.Brief(), p.Description()),
		Options:       make([]templates.OptionBlock, 0, len(r.Options)),
		Testing:       p.Testing(),
		ResetFunction: a.layout.ResetFunction,
		Reset:         r.Reset,
	}
	for _, o := range r.Options {
		data.Options = append(data.Options, templates.OptionBlock{
			Comment: BriefComment(o.Option.Brief, o.Option.Description),
			Decl:    o.Decl,
			Def:     o.Def,
		})
	}

	header, err := a.execute(templates.ProfileHeader, data)
	if err != nil {
		return nil, err
	}
	source, err := a.execute(templates.ProfileSource, data)
	if err != nil {
		return nil, err
	}

	return []entities.Artifact{
		{
			Kind:    entities.ArtifactProfileHeader,
			Path:    headerPath,
			Profile: p.ID(),
			Content: header,
		},
		{
			Kind:    entities.ArtifactProfileSource,
			Path:    a.layout.ProfileSourcePath(p.ID()),
			Profile: p.ID(),
			Content: source,
		},
	}, nil
}

func (a *Assembler) execute(name string, data any) (string, error) {
	var sb strings.Builder
	if err := a.tmpl.ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return Clean(sb.String()), nil
}

// Clean normalizes generated text: exactly one trailing newline, no trailing
// blanks on any line and never more than one empty line in a row.
func Clean(code string) string {
	code = strings.TrimSpace(code) + "\n"
	code = trailingBlanks.ReplaceAllString(code, "")
	return blankRuns.ReplaceAllString(code, "\n\n")
}

// BriefComment formats a Doxygen block for an option. A one-line brief stays
// on one line; a description adds an empty comment line and one line per
// description line.
func BriefComment(brief, description string) string {
	if description == "" {
		return "/** @brief " + brief + " */"
	}
	return "/** " + briefBody(brief, description) + "\n */"
}

// fileDoc is the continuation of an @file comment: the brief and description
// without the comment delimiters.
func fileDoc(brief, description string) string {
	if description == "" {
		return "@brief " + brief
	}
	return briefBody(brief, description)
}

func briefBody(brief, description string) string {
	lines := strings.Split(description, "\n")
	return "@brief " + brief + "\n * \n * " + strings.Join(lines, "\n * ")
}

// guard turns a file path into an include guard ("characterizations/a_H"
// becomes "CHARACTERIZATIONS_A_H").
func guard(name string) string {
	return strings.ToUpper(strings.Trim(nonIdentChars.ReplaceAllString(name, "_"), "_"))
}
