package render

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/wealth360-cli/internal/briefing"
	"github.com/KaramelBytes/wealth360-cli/internal/persona"
	"github.com/charmbracelet/lipgloss"
)

var (
	mutedColor   = lipgloss.Color("#6c757d")
	warningColor = lipgloss.Color("#FFC107")
)

type textRenderer struct {
	color bool

	section lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
}

func newTextRenderer(opts Options) *textRenderer {
	r := &textRenderer{
		color:   opts.Color,
		section: lipgloss.NewStyle(),
		label:   lipgloss.NewStyle(),
		muted:   lipgloss.NewStyle(),
		warning: lipgloss.NewStyle(),
	}
	if opts.Color {
		r.section = r.section.Bold(true)
		r.label = r.label.Bold(true)
		r.muted = r.muted.Foreground(mutedColor)
		r.warning = r.warning.Foreground(warningColor)
	}
	return r
}

// accent styles a persona heading with the persona's own color.
func (r *textRenderer) accent(p persona.Persona) lipgloss.Style {
	s := lipgloss.NewStyle()
	if r.color {
		s = s.Bold(true)
		if p.Color != "" {
			s = s.Foreground(lipgloss.Color(p.Color))
		}
	}
	return s
}

func (r *textRenderer) Personas(ps []persona.Persona, defaultID string) ([]byte, error) {
	var sb strings.Builder
	for _, p := range ps {
		marker := ""
		if p.ID == defaultID {
			marker = " " + r.muted.Render("(default)")
		}
		fmt.Fprintf(&sb, "- %s: %s%s\n", p.ID, r.accent(p).Render(p.Name), marker)
	}
	if len(ps) == 0 {
		sb.WriteString("(no personas)\n")
	}
	return []byte(sb.String()), nil
}

func (r *textRenderer) writePersona(sb *strings.Builder, p persona.Persona) {
	fmt.Fprintf(sb, "%s  %s\n", r.accent(p).Render(p.Name), r.muted.Render("("+p.ID+" · "+p.Role+")"))
	if p.Description != "" {
		sb.WriteString(p.Description)
		sb.WriteString("\n")
	}
	if len(p.FocusAreas) > 0 {
		fmt.Fprintf(sb, "%s %s\n", r.label.Render("Focus areas:"), strings.Join(p.FocusAreas, ", "))
	}
}

func (r *textRenderer) Persona(p persona.Persona) ([]byte, error) {
	var sb strings.Builder
	r.writePersona(&sb, p)
	return []byte(sb.String()), nil
}

func (r *textRenderer) Sections(refs []persona.SectionRef) ([]byte, error) {
	var sb strings.Builder
	for _, s := range refs {
		fmt.Fprintf(&sb, "- %s: %s\n", s.ID, s.Title)
	}
	if len(refs) == 0 {
		sb.WriteString("(no sections)\n")
	}
	return []byte(sb.String()), nil
}

func (r *textRenderer) writeEntries(sb *strings.Builder, entries persona.SectionInsights) {
	for _, e := range entries {
		fmt.Fprintf(sb, "\n%s %s\n", r.section.Render(e.Record.SectionTitle), r.muted.Render("["+e.SectionID+"]"))
		if e.Record.Empty() {
			fmt.Fprintf(sb, "  %s\n", r.muted.Render("(no insights defined)"))
			continue
		}
		fmt.Fprintf(sb, "  %s %s\n", r.label.Render("Primary metrics:"), strings.Join(e.Record.PrimaryMetrics, ", "))
		fmt.Fprintf(sb, "  %s\n", r.label.Render("Key insights:"))
		for _, in := range e.Record.KeyInsights {
			fmt.Fprintf(sb, "    • %s\n", in)
		}
		fmt.Fprintf(sb, "  %s %s\n", r.label.Render("Data sources:"), strings.Join(e.Record.DataSources, ", "))
	}
}

func (r *textRenderer) Insights(p persona.Persona, entries persona.SectionInsights) ([]byte, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", r.accent(p).Render(p.Name))
	r.writeEntries(&sb, entries)
	return []byte(sb.String()), nil
}

func (r *textRenderer) Briefing(b *briefing.Briefing) ([]byte, error) {
	var sb strings.Builder
	if b.FallbackPersona {
		fmt.Fprintf(&sb, "%s\n\n", r.warning.Render(fmt.Sprintf("⚠ Unknown persona %q; showing %s", b.RequestedPersona, b.Persona.ID)))
	}
	r.writePersona(&sb, b.Persona)
	r.writeEntries(&sb, b.Sections)
	fmt.Fprintf(&sb, "\n%s\n", r.muted.Render(fmt.Sprintf("briefing %s · generated %s", b.ID, b.GeneratedAt.Format("2006-01-02 15:04 MST"))))
	return []byte(sb.String()), nil
}
