// Package persona holds the persona catalog: the fixed set of dashboard roles
// and the insight content each dashboard section shows for every role.
//
// All lookups are total. An unknown persona resolves to the default persona
// and an unknown (section, persona) pair resolves to a record with empty
// lists, so a presentation layer always has something to render.
package persona

import (
	"errors"
	"fmt"
)

// DefaultSectionTitle is the title reported for a section ID the catalog does not know.
const DefaultSectionTitle = "Section"

var (
	ErrEmptyCatalog   = errors.New("catalog has no personas")
	ErrDuplicateID    = errors.New("duplicate id")
	ErrUnknownPersona = errors.New("unknown persona")
	ErrUnknownDefault = errors.New("default persona not defined")
)

// Persona describes one dashboard role.
type Persona struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Role        string   `json:"role" yaml:"role"`
	Description string   `json:"description" yaml:"description"`
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Color       string   `json:"color" yaml:"color"`
	FocusAreas  []string `json:"focus_areas" yaml:"focus_areas"`
}

// PersonaRef is the (identifier, display name) pair used by selection controls.
type PersonaRef struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// SectionInsight is the content a section defines for one persona.
type SectionInsight struct {
	PrimaryMetrics []string `json:"primary_metrics" yaml:"primary_metrics"`
	KeyInsights    []string `json:"key_insights" yaml:"key_insights"`
	DataSources    []string `json:"data_sources" yaml:"data_sources"`
}

// Section is one dashboard page and its per-persona insight content.
type Section struct {
	ID       string                    `json:"id" yaml:"id"`
	Title    string                    `json:"title" yaml:"title"`
	Insights map[string]SectionInsight `json:"insights" yaml:"insights"`
}

// SectionRef is the (identifier, title) pair for a section.
type SectionRef struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// InsightRecord is what a (section, persona) lookup returns.
type InsightRecord struct {
	SectionTitle   string   `json:"section_title" yaml:"section_title"`
	KeyInsights    []string `json:"key_insights" yaml:"key_insights"`
	PrimaryMetrics []string `json:"primary_metrics" yaml:"primary_metrics"`
	DataSources    []string `json:"data_sources" yaml:"data_sources"`
}

// Empty reports whether the record carries no insight content.
func (r InsightRecord) Empty() bool {
	return len(r.KeyInsights) == 0 && len(r.PrimaryMetrics) == 0 && len(r.DataSources) == 0
}

// Resolution tells a caller whether a lookup matched or took the default branch.
type Resolution int

const (
	Found Resolution = iota
	Fallback
)

func (r Resolution) String() string {
	switch r {
	case Found:
		return "found"
	case Fallback:
		return "fallback"
	default:
		return fmt.Sprintf("Resolution(%d)", int(r))
	}
}

// SectionEntry pairs a section ID with the record resolved for it.
type SectionEntry struct {
	SectionID string        `json:"section_id" yaml:"section_id"`
	Record    InsightRecord `json:"record" yaml:"record"`
}

// SectionInsights is an ordered mapping from section ID to record.
type SectionInsights []SectionEntry

// Get returns the record for sectionID.
func (s SectionInsights) Get(sectionID string) (InsightRecord, bool) {
	for _, e := range s {
		if e.SectionID == sectionID {
			return e.Record, true
		}
	}
	return InsightRecord{}, false
}

// IDs returns the section IDs in order.
func (s SectionInsights) IDs() []string {
	out := make([]string, len(s))
	for i, e := range s {
		out[i] = e.SectionID
	}
	return out
}

// Catalog is an immutable persona catalog. The zero value is not usable; build
// one with New or use Builtin. A Catalog is safe for concurrent use.
type Catalog struct {
	personas     []Persona
	personaIndex map[string]int
	sections     []Section
	sectionIndex map[string]int
	defaultID    string
}

var builtin = mustNew(builtinPersonas, builtinSections, defaultPersonaID)

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog { return builtin }

func mustNew(personas []Persona, sections []Section, defaultID string) *Catalog {
	c, err := New(personas, sections, defaultID)
	if err != nil {
		panic(fmt.Sprintf("persona: invalid built-in catalog: %v", err))
	}
	return c
}

// New validates the tables and returns a catalog holding private copies of them.
// An empty defaultID selects "executive".
func New(personas []Persona, sections []Section, defaultID string) (*Catalog, error) {
	if len(personas) == 0 {
		return nil, ErrEmptyCatalog
	}
	if defaultID == "" {
		defaultID = defaultPersonaID
	}
	c := &Catalog{
		personas:     make([]Persona, 0, len(personas)),
		personaIndex: make(map[string]int, len(personas)),
		sections:     make([]Section, 0, len(sections)),
		sectionIndex: make(map[string]int, len(sections)),
		defaultID:    defaultID,
	}
	for _, p := range personas {
		if p.ID == "" {
			return nil, errors.New("persona with empty id")
		}
		if _, dup := c.personaIndex[p.ID]; dup {
			return nil, fmt.Errorf("persona %q: %w", p.ID, ErrDuplicateID)
		}
		c.personaIndex[p.ID] = len(c.personas)
		c.personas = append(c.personas, clonePersona(p))
	}
	if _, ok := c.personaIndex[defaultID]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefault, defaultID)
	}
	for _, s := range sections {
		if s.ID == "" {
			return nil, errors.New("section with empty id")
		}
		if _, dup := c.sectionIndex[s.ID]; dup {
			return nil, fmt.Errorf("section %q: %w", s.ID, ErrDuplicateID)
		}
		insights := make(map[string]SectionInsight, len(s.Insights))
		for pid, in := range s.Insights {
			if _, ok := c.personaIndex[pid]; !ok {
				return nil, fmt.Errorf("section %q references %w %q", s.ID, ErrUnknownPersona, pid)
			}
			insights[pid] = SectionInsight{
				PrimaryMetrics: cloneStrings(in.PrimaryMetrics),
				KeyInsights:    cloneStrings(in.KeyInsights),
				DataSources:    cloneStrings(in.DataSources),
			}
		}
		c.sectionIndex[s.ID] = len(c.sections)
		c.sections = append(c.sections, Section{ID: s.ID, Title: s.Title, Insights: insights})
	}
	return c, nil
}

// ListPersonas returns every persona's (ID, Name) in definition order.
func (c *Catalog) ListPersonas() []PersonaRef {
	out := make([]PersonaRef, len(c.personas))
	for i, p := range c.personas {
		out[i] = PersonaRef{ID: p.ID, Name: p.Name}
	}
	return out
}

// Personas returns full copies of every persona in definition order.
func (c *Catalog) Personas() []Persona {
	out := make([]Persona, len(c.personas))
	for i, p := range c.personas {
		out[i] = clonePersona(p)
	}
	return out
}

// DefaultPersonaID is the persona substituted for unknown identifiers.
func (c *Catalog) DefaultPersonaID() string { return c.defaultID }

// HasPersona reports whether id names a known persona.
func (c *Catalog) HasPersona(id string) bool {
	_, ok := c.personaIndex[id]
	return ok
}

// HasSection reports whether id names a known section.
func (c *Catalog) HasSection(id string) bool {
	_, ok := c.sectionIndex[id]
	return ok
}

// LookupPersona returns the persona for id, or the default persona with Fallback.
func (c *Catalog) LookupPersona(id string) (Persona, Resolution) {
	if i, ok := c.personaIndex[id]; ok {
		return clonePersona(c.personas[i]), Found
	}
	return clonePersona(c.personas[c.personaIndex[c.defaultID]]), Fallback
}

// PersonaInfo returns the persona for id, substituting the default persona
// when id is unknown.
func (c *Catalog) PersonaInfo(id string) Persona {
	p, _ := c.LookupPersona(id)
	return p
}

// Sections returns every section's (ID, Title) in definition order.
func (c *Catalog) Sections() []SectionRef {
	out := make([]SectionRef, len(c.sections))
	for i, s := range c.sections {
		out[i] = SectionRef{ID: s.ID, Title: s.Title}
	}
	return out
}

// LookupSectionInsights resolves the record for a (section, persona) pair.
// Missing pairs return the section title, or DefaultSectionTitle for an
// unknown section, with empty lists and Fallback.
func (c *Catalog) LookupSectionInsights(sectionID, personaID string) (InsightRecord, Resolution) {
	i, ok := c.sectionIndex[sectionID]
	if !ok {
		return emptyRecord(DefaultSectionTitle), Fallback
	}
	return resolveIn(c.sections[i], personaID)
}

// SectionInsights is LookupSectionInsights without the resolution tag.
func (c *Catalog) SectionInsights(sectionID, personaID string) InsightRecord {
	r, _ := c.LookupSectionInsights(sectionID, personaID)
	return r
}

// AllSectionInsights resolves personaID against every section, in section order.
func (c *Catalog) AllSectionInsights(personaID string) SectionInsights {
	out := make(SectionInsights, len(c.sections))
	for i, s := range c.sections {
		r, _ := resolveIn(s, personaID)
		out[i] = SectionEntry{SectionID: s.ID, Record: r}
	}
	return out
}

func resolveIn(s Section, personaID string) (InsightRecord, Resolution) {
	in, ok := s.Insights[personaID]
	if !ok {
		return emptyRecord(s.Title), Fallback
	}
	return InsightRecord{
		SectionTitle:   s.Title,
		KeyInsights:    cloneStrings(in.KeyInsights),
		PrimaryMetrics: cloneStrings(in.PrimaryMetrics),
		DataSources:    cloneStrings(in.DataSources),
	}, Found
}

func emptyRecord(title string) InsightRecord {
	return InsightRecord{
		SectionTitle:   title,
		KeyInsights:    []string{},
		PrimaryMetrics: []string{},
		DataSources:    []string{},
	}
}

func clonePersona(p Persona) Persona {
	p.FocusAreas = cloneStrings(p.FocusAreas)
	return p
}

// cloneStrings never returns nil so empty lists encode as [] rather than null.
func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
