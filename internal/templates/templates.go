// Package templates provides the embedded C file templates.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed c/*.tmpl
var cTemplates embed.FS

// Template names, one per generated file kind.
const (
	MasterHeader  = "master_header"
	MasterSource  = "master_source"
	ProfileHeader = "profile_header"
	ProfileSource = "profile_source"
)

// MasterData is rendered into the master header and source.
type MasterData struct {
	// Guard is the include guard of the master header (e.g., "TOGGLE_H")
	Guard string
	// FileName is the master header file name, used by @file
	FileName string
	// HeaderName is what the master source includes
	HeaderName string
	// DefaultCharID is used when CHAR_ID is not defined by the build
	DefaultCharID string
	// Options document every option with its default declaration
	Options []OptionBlock
	// Profiles in CHAR_ID order
	Profiles []ProfileEntry
}

// ProfileEntry is one CHAR_ID of the master files.
type ProfileEntry struct {
	ID     string
	Number int
	Brief  string
	// Header and Source are the include paths of the profile files
	Header string
	Source string
}

// OptionBlock is one option as laid out in a header or source file.
type OptionBlock struct {
	Comment string
	Decl    string
	Def     string
}

// ProfileData is rendered into a per-profile header and source.
type ProfileData struct {
	Guard         string
	FileName      string
	FileDoc       string
	Options       []OptionBlock
	Testing       bool
	ResetFunction string
	Reset         []string
}

// CTemplates returns the parsed C templates, named after their file without
// the .tmpl suffix.
func CTemplates() (*template.Template, error) {
	tmpl := template.New("").Funcs(template.FuncMap{
		"indent": Indent,
	})

	err := fs.WalkDir(cTemplates, "c", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}

		content, err := cTemplates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}

		name := strings.TrimPrefix(path, "c/")
		name = strings.TrimSuffix(name, ".tmpl")

		_, err = tmpl.New(name).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	return tmpl, nil
}

// TemplateNames returns the names of every template CTemplates loads.
func TemplateNames() []string {
	return []string{MasterHeader, MasterSource, ProfileHeader, ProfileSource}
}

// Indent prefixes every line of s with n spaces.
func Indent(n int, s string) string {
	if s == "" {
		return ""
	}
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}
