// Copyright (c) 2026 Mariusz Górski. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/template"
)

//go:embed templates/suite_edit
var builtinTemplates embed.FS

// ErrTemplateNotFound reports a logical template name that no provider in
// the chain could resolve.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateSourceNotFoundError reports a custom template directory that does
// not exist. It is raised when the renderer is constructed, before any
// render attempt.
type TemplateSourceNotFoundError struct {
	Dir string
}

func (e *TemplateSourceNotFoundError) Error() string {
	return fmt.Sprintf("custom template source not found: %s", e.Dir)
}

// templateProvider is one source of template files.
type templateProvider struct {
	name string // "custom" or "default", used in diagnostics
	fsys fs.FS
}

// TemplateSet resolves logical template names against an ordered provider
// chain and expands them with text/template. The first provider that has a
// file with the requested name wins, so a custom directory shadows the
// built-in defaults file by file.
type TemplateSet struct {
	providers []templateProvider
	parsed    map[string]*template.Template
}

// NewTemplateSet builds the provider chain. customDir may be empty; when set
// it must exist, otherwise a *TemplateSourceNotFoundError is returned.
func NewTemplateSet(customDir string) (*TemplateSet, error) {
	ts := &TemplateSet{parsed: make(map[string]*template.Template)}
	if customDir != "" {
		info, err := os.Stat(customDir)
		if err != nil || !info.IsDir() {
			return nil, &TemplateSourceNotFoundError{Dir: customDir}
		}
		ts.providers = append(ts.providers, templateProvider{name: "custom", fsys: os.DirFS(customDir)})
	}
	builtin, err := fs.Sub(builtinTemplates, "templates/suite_edit")
	if err != nil {
		return nil, fmt.Errorf("loading built-in templates: %w", err)
	}
	ts.providers = append(ts.providers, templateProvider{name: "default", fsys: builtin})
	return ts, nil
}

// lookup finds the raw template text and the provider that supplied it.
func (ts *TemplateSet) lookup(name string) (string, string, error) {
	for _, p := range ts.providers {
		data, err := fs.ReadFile(p.fsys, name)
		if err == nil {
			return string(data), p.name, nil
		}
	}
	return "", "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
}

// Render expands the named template with the given data.
func (ts *TemplateSet) Render(name string, data map[string]any) (string, error) {
	tmpl, ok := ts.parsed[name]
	if !ok {
		text, _, err := ts.lookup(name)
		if err != nil {
			return "", err
		}
		tmpl, err = template.New(name).Option("missingkey=zero").Parse(text)
		if err != nil {
			return "", fmt.Errorf("parsing template %s: %w", name, err)
		}
		ts.parsed[name] = tmpl
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering template %s: %w", name, err)
	}
	return buf.String(), nil
}

// TemplateInfo describes one resolved logical template.
type TemplateInfo struct {
	Name   string
	Source string // provider that wins the lookup
	Bytes  int
}

// templateNames are the logical names the renderer uses, in document order.
var templateNames = []string{
	"HEADER.md",
	"header.py",
	"AUTHORING_INTRO.md",
	"TABLE_EXPECTATIONS_HEADER.md",
	"TABLE_EXPECTATIONS_NOT_FOUND.md",
	"table_expectation.py",
	"COLUMN_EXPECTATIONS_HEADER.md",
	"COLUMN_EXPECTATIONS.md",
	"COLUMN_EXPECTATIONS_NOT_FOUND.md",
	"column_expectation.py",
	"FOOTER.md",
	"footer.py",
}

// List resolves every logical template name against the chain and reports
// which provider supplies it. Names with no provider are skipped; the
// built-in set always covers all of them.
func (ts *TemplateSet) List() []TemplateInfo {
	var infos []TemplateInfo
	for _, name := range templateNames {
		text, source, err := ts.lookup(name)
		if err != nil {
			continue
		}
		infos = append(infos, TemplateInfo{Name: name, Source: source, Bytes: len(text)})
	}
	return infos
}
