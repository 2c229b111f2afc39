package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/KaramelBytes/wealth360-cli/internal/briefing"
	"github.com/KaramelBytes/wealth360-cli/internal/persona"
)

type markdownRenderer struct{}

var mdFuncs = template.FuncMap{
	"join": strings.Join,
}

var mdTemplates = template.Must(template.New("md").Funcs(mdFuncs).Parse(`
{{- define "persona" -}}
## {{ .Name }}

**ID:** ` + "`{{ .ID }}`" + ` | **Role:** {{ .Role }} | **Color:** {{ .Color }}

{{ .Description }}

**Focus areas:**
{{ range .FocusAreas }}
- {{ . }}
{{- end }}
{{ end -}}

{{- define "entries" -}}
{{ range . }}
### {{ .Record.SectionTitle }} ({{ .SectionID }})
{{ if .Record.Empty }}
_No insights defined for this persona._
{{ else }}
**Primary metrics:** {{ join .Record.PrimaryMetrics ", " }}

**Key insights:**
{{ range .Record.KeyInsights }}
- {{ . }}
{{- end }}

**Data sources:** {{ join .Record.DataSources ", " }}
{{ end -}}
{{ end -}}
{{ end -}}

{{- define "personas" -}}
# Personas
{{ $def := .Default }}
| ID | Name | Role |
|---|---|---|
{{- range .Personas }}
| ` + "`{{ .ID }}`" + `{{ if eq .ID $def }} (default){{ end }} | {{ .Name }} | {{ .Role }} |
{{- end }}
{{ end -}}

{{- define "sections" -}}
# Sections

| ID | Title |
|---|---|
{{- range . }}
| ` + "`{{ .ID }}`" + ` | {{ .Title }} |
{{- end }}
{{ end -}}

{{- define "insights" -}}
# Insights for {{ .Persona }}
{{ template "entries" .Sections }}
{{- end -}}

{{- define "briefing" -}}
# Persona Briefing

{{ if .FallbackPersona }}> Requested persona ` + "`{{ .RequestedPersona }}`" + ` is unknown; showing the default persona.

{{ end -}}
{{ template "persona" .Persona }}
{{- template "entries" .Sections }}
---
*Briefing {{ .ID }} | Generated {{ .GeneratedAt.Format "2006-01-02 15:04 MST" }}*
{{ end -}}
`))

func (r *markdownRenderer) exec(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *markdownRenderer) Personas(ps []persona.Persona, defaultID string) ([]byte, error) {
	return r.exec("personas", personasView{Default: defaultID, Personas: ps})
}

func (r *markdownRenderer) Persona(p persona.Persona) ([]byte, error) {
	return r.exec("persona", p)
}

func (r *markdownRenderer) Sections(refs []persona.SectionRef) ([]byte, error) {
	return r.exec("sections", refs)
}

func (r *markdownRenderer) Insights(p persona.Persona, entries persona.SectionInsights) ([]byte, error) {
	return r.exec("insights", insightsView{Persona: p.Name, Sections: entries})
}

func (r *markdownRenderer) Briefing(b *briefing.Briefing) ([]byte, error) {
	return r.exec("briefing", b)
}
