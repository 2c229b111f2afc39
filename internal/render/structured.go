package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KaramelBytes/wealth360-cli/internal/briefing"
	"github.com/KaramelBytes/wealth360-cli/internal/persona"
	"gopkg.in/yaml.v3"
)

type jsonRenderer struct{}

func (r *jsonRenderer) encode(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("rendering json: %w", err)
	}
	return append(b, '\n'), nil
}

func (r *jsonRenderer) Personas(ps []persona.Persona, defaultID string) ([]byte, error) {
	return r.encode(personasView{Default: defaultID, Personas: ps})
}

func (r *jsonRenderer) Persona(p persona.Persona) ([]byte, error) { return r.encode(p) }

func (r *jsonRenderer) Sections(refs []persona.SectionRef) ([]byte, error) { return r.encode(refs) }

func (r *jsonRenderer) Insights(p persona.Persona, entries persona.SectionInsights) ([]byte, error) {
	return r.encode(insightsView{Persona: p.ID, Sections: entries})
}

func (r *jsonRenderer) Briefing(b *briefing.Briefing) ([]byte, error) { return r.encode(b) }

type yamlRenderer struct{}

func (r *yamlRenderer) encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("rendering yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("rendering yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *yamlRenderer) Personas(ps []persona.Persona, defaultID string) ([]byte, error) {
	return r.encode(personasView{Default: defaultID, Personas: ps})
}

func (r *yamlRenderer) Persona(p persona.Persona) ([]byte, error) { return r.encode(p) }

func (r *yamlRenderer) Sections(refs []persona.SectionRef) ([]byte, error) { return r.encode(refs) }

func (r *yamlRenderer) Insights(p persona.Persona, entries persona.SectionInsights) ([]byte, error) {
	return r.encode(insightsView{Persona: p.ID, Sections: entries})
}

// Briefing uses a yaml-tagged mirror since briefing.Briefing only carries json tags.
func (r *yamlRenderer) Briefing(b *briefing.Briefing) ([]byte, error) {
	return r.encode(struct {
		ID               string                  `yaml:"id"`
		RequestedPersona string                  `yaml:"requested_persona"`
		FallbackPersona  bool                    `yaml:"fallback_persona"`
		Persona          persona.Persona         `yaml:"persona"`
		Sections         persona.SectionInsights `yaml:"sections"`
		GeneratedAt      string                  `yaml:"generated_at"`
	}{
		ID:               b.ID,
		RequestedPersona: b.RequestedPersona,
		FallbackPersona:  b.FallbackPersona,
		Persona:          b.Persona,
		Sections:         b.Sections,
		GeneratedAt:      b.GeneratedAt.Format(time.RFC3339),
	})
}
