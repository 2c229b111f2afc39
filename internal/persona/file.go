package persona

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk YAML form of a catalog. Personas and sections are
// sequences so definition order survives a round trip.
type Document struct {
	DefaultPersona string    `yaml:"default_persona"`
	Personas       []Persona `yaml:"personas"`
	Sections       []Section `yaml:"sections"`
}

// Decode reads a YAML catalog document and validates it through New.
func Decode(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	c, err := New(doc.Personas, doc.Sections, doc.DefaultPersona)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Document returns a copy of the catalog in its file form.
func (c *Catalog) Document() Document {
	doc := Document{
		DefaultPersona: c.defaultID,
		Personas:       c.Personas(),
		Sections:       make([]Section, len(c.sections)),
	}
	for i, s := range c.sections {
		insights := make(map[string]SectionInsight, len(s.Insights))
		for pid, in := range s.Insights {
			insights[pid] = SectionInsight{
				PrimaryMetrics: cloneStrings(in.PrimaryMetrics),
				KeyInsights:    cloneStrings(in.KeyInsights),
				DataSources:    cloneStrings(in.DataSources),
			}
		}
		doc.Sections[i] = Section{ID: s.ID, Title: s.Title, Insights: insights}
	}
	return doc
}

// Encode writes the catalog to w as a YAML document readable by Decode.
func Encode(w io.Writer, c *Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.Document()); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}
