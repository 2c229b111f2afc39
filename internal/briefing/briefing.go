// Package briefing assembles persona briefings, the per-role insight panel
// of the dashboard, and persists them as JSON documents.
package briefing

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/KaramelBytes/wealth360-cli/internal/persona"
	"github.com/KaramelBytes/wealth360-cli/internal/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const fileExt = ".json"

// Briefing is a persona's insight records for a set of sections.
type Briefing struct {
	ID               string                  `json:"id"`
	RequestedPersona string                  `json:"requested_persona"`
	FallbackPersona  bool                    `json:"fallback_persona"`
	Persona          persona.Persona         `json:"persona"`
	Sections         persona.SectionInsights `json:"sections"`
	GeneratedAt      time.Time               `json:"generated_at"`
}

// Build resolves personaID and the given sections against c. With no section
// IDs every catalog section is included. Unknown IDs resolve the way the
// catalog resolves them.
func Build(c *persona.Catalog, personaID string, sectionIDs ...string) *Briefing {
	p, res := c.LookupPersona(personaID)
	b := &Briefing{
		ID:               uuid.NewString(),
		RequestedPersona: personaID,
		FallbackPersona:  res == persona.Fallback,
		Persona:          p,
		GeneratedAt:      time.Now().UTC(),
	}
	// insights are keyed by the resolved persona so a fallback briefing is the
	// default persona's full briefing rather than a page of empty sections
	if len(sectionIDs) == 0 {
		b.Sections = c.AllSectionInsights(p.ID)
		return b
	}
	b.Sections = make(persona.SectionInsights, 0, len(sectionIDs))
	for _, id := range sectionIDs {
		b.Sections = append(b.Sections, persona.SectionEntry{
			SectionID: id,
			Record:    c.SectionInsights(id, p.ID),
		})
	}
	return b
}

// FileName is the name Save writes the briefing under.
func (b *Briefing) FileName() string { return b.ID + fileExt }

// Save writes the briefing into dir using an atomic write and returns the path.
func (b *Briefing) Save(dir string) (string, error) {
	if b.ID == "" {
		return "", errors.New("briefing id not set")
	}
	if err := utils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("ensure dir: %w", err)
	}
	data, err := utils.PrettyJSON(b)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, b.FileName())
	if err := utils.SafeWriteFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// Load reads a briefing written by Save.
func Load(path string) (*Briefing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("briefing not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read briefing: %w", err)
	}
	var b Briefing
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse briefing: %w", err)
	}
	return &b, nil
}

// List loads every briefing in dir, oldest first. A missing dir is empty.
// Files that cannot be read or parsed are skipped and logged to log, which may be nil.
func List(dir string, log *zap.Logger) ([]*Briefing, error) {
	if log == nil {
		log = zap.NewNop()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read briefings dir: %w", err)
	}
	var out []*Briefing
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		b, err := Load(path)
		if err != nil {
			log.Warn("skipping unreadable briefing", zap.String("path", path), zap.Error(err))
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GeneratedAt.Before(out[j].GeneratedAt)
	})
	return out, nil
}
