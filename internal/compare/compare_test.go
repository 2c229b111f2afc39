package compare

import (
	"strings"
	"testing"

	"github.com/KaramelBytes/wealth360-cli/internal/persona"
	"github.com/google/go-cmp/cmp"
)

func TestCompareHomeCIOvsExecutive(t *testing.T) {
	r := Compare(persona.Builtin(), "home", "chief_investment_officer", "executive")

	if r.SectionTitle != "Platform Home" {
		t.Fatalf("title = %q", r.SectionTitle)
	}
	if diff := cmp.Diff([]string{"Total AUM"}, r.SharedMetrics); diff != "" {
		t.Fatalf("shared metrics (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"YTD Growth", "Portfolio Performance"}, r.OnlyLeft); diff != "" {
		t.Fatalf("only left (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Client Count", "Revenue", "Growth Rate"}, r.OnlyRight); diff != "" {
		t.Fatalf("only right (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ACCOUNTS", "PORTFOLIOS"}, r.SharedSources); diff != "" {
		t.Fatalf("shared sources (-want +got):\n%s", diff)
	}
	if r.Identical() {
		t.Fatalf("expected differences")
	}

	u := r.Unified()
	for _, want := range []string{
		"--- chief_investment_officer\n",
		"+++ executive\n",
		"  metric: Total AUM\n",
		"- metric: YTD Growth\n",
		"+ metric: Client Count\n",
		"+ source: TRANSACTIONS\n",
	} {
		if !strings.Contains(u, want) {
			t.Fatalf("unified diff missing %q:\n%s", want, u)
		}
	}
}

func TestCompareSamePersonaIdentical(t *testing.T) {
	r := Compare(persona.Builtin(), "ai_insights", "wealth_advisor", "wealth_advisor")
	if !r.Identical() {
		t.Fatalf("expected identical:\n%s", r.Unified())
	}
	if len(r.OnlyLeft) != 0 || len(r.OnlyRight) != 0 {
		t.Fatalf("unexpected unique metrics: %v %v", r.OnlyLeft, r.OnlyRight)
	}
}

func TestCompareUnknownPersonaUsesDefault(t *testing.T) {
	r := Compare(persona.Builtin(), "home", "nobody", "executive")
	if r.Left.ID != "executive" {
		t.Fatalf("left persona = %q", r.Left.ID)
	}
	if !r.Identical() {
		t.Fatalf("fallback persona should match executive")
	}
}
