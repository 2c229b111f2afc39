// Package render formats catalog lookups and briefings for output.
package render

import (
	"fmt"

	"github.com/KaramelBytes/wealth360-cli/internal/briefing"
	"github.com/KaramelBytes/wealth360-cli/internal/persona"
)

// Renderer formats catalog views into bytes for output.
type Renderer interface {
	Personas(ps []persona.Persona, defaultID string) ([]byte, error)
	Persona(p persona.Persona) ([]byte, error)
	Sections(refs []persona.SectionRef) ([]byte, error)
	Insights(p persona.Persona, entries persona.SectionInsights) ([]byte, error)
	Briefing(b *briefing.Briefing) ([]byte, error)
}

// Options tune the human-readable renderers.
type Options struct {
	// Color enables persona accent colors in text output.
	Color bool
}

// Formats lists the supported format names.
var Formats = []string{"text", "md", "json", "yaml"}

// NewRenderer returns a Renderer for the given format string.
// Supported formats: "text" (default), "md", "json", "yaml".
func NewRenderer(format string, opts Options) (Renderer, error) {
	switch format {
	case "text", "":
		return newTextRenderer(opts), nil
	case "md", "markdown":
		return &markdownRenderer{}, nil
	case "json":
		return &jsonRenderer{}, nil
	case "yaml", "yml":
		return &yamlRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are text, md, json, yaml", format)
	}
}

// ValidFormat reports whether NewRenderer accepts format.
func ValidFormat(format string) bool {
	_, err := NewRenderer(format, Options{})
	return err == nil
}

// insightsView is the shape shared by structured renderers for Insights.
type insightsView struct {
	Persona  string                  `json:"persona" yaml:"persona"`
	Sections persona.SectionInsights `json:"sections" yaml:"sections"`
}

type personasView struct {
	Default  string            `json:"default" yaml:"default"`
	Personas []persona.Persona `json:"personas" yaml:"personas"`
}
