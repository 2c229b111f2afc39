// Package compare contrasts what two personas see on the same dashboard section.
package compare

import (
	"strings"

	"github.com/KaramelBytes/wealth360-cli/internal/persona"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Result is the comparison of two personas on one section.
type Result struct {
	SectionID    string
	SectionTitle string
	Left, Right  persona.Persona
	// Metrics present for both personas, in the left persona's order.
	SharedMetrics []string
	OnlyLeft      []string
	OnlyRight     []string
	SharedSources []string

	diffs []diffmatchpatch.Diff
}

// Compare resolves both personas against sectionID and diffs their records.
// Unknown personas resolve to the default persona as in the catalog.
func Compare(c *persona.Catalog, sectionID, left, right string) *Result {
	lp := c.PersonaInfo(left)
	rp := c.PersonaInfo(right)
	lr := c.SectionInsights(sectionID, lp.ID)
	rr := c.SectionInsights(sectionID, rp.ID)

	res := &Result{
		SectionID:    sectionID,
		SectionTitle: lr.SectionTitle,
		Left:         lp,
		Right:        rp,
	}
	res.SharedMetrics, res.OnlyLeft, res.OnlyRight = partition(lr.PrimaryMetrics, rr.PrimaryMetrics)
	res.SharedSources, _, _ = partition(lr.DataSources, rr.DataSources)

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(recordText(lr), recordText(rr))
	diffs := dmp.DiffMain(a, b, false)
	res.diffs = dmp.DiffCharsToLines(diffs, lines)
	return res
}

// Identical reports whether both personas see the same content.
func (r *Result) Identical() bool {
	for _, d := range r.diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			return false
		}
	}
	return true
}

// Unified renders the line diff with "-" for the left persona, "+" for the
// right persona and two spaces for shared lines.
func (r *Result) Unified() string {
	var sb strings.Builder
	sb.WriteString("--- " + r.Left.ID + "\n")
	sb.WriteString("+++ " + r.Right.ID + "\n")
	for _, d := range r.diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

// recordText is the line form diffed by Compare.
func recordText(r persona.InsightRecord) string {
	var sb strings.Builder
	for _, m := range r.PrimaryMetrics {
		sb.WriteString("metric: " + m + "\n")
	}
	for _, in := range r.KeyInsights {
		sb.WriteString("insight: " + in + "\n")
	}
	for _, s := range r.DataSources {
		sb.WriteString("source: " + s + "\n")
	}
	return sb.String()
}

func partition(left, right []string) (shared, onlyLeft, onlyRight []string) {
	inRight := make(map[string]bool, len(right))
	for _, v := range right {
		inRight[v] = true
	}
	inLeft := make(map[string]bool, len(left))
	for _, v := range left {
		inLeft[v] = true
		if inRight[v] {
			shared = append(shared, v)
		} else {
			onlyLeft = append(onlyLeft, v)
		}
	}
	for _, v := range right {
		if !inLeft[v] {
			onlyRight = append(onlyRight, v)
		}
	}
	return shared, onlyLeft, onlyRight
}
