package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags clears sticky flag values and Changed state left by earlier invocations.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runCmd executes the root command with args and returns stdout.
func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execCmd(args...)
	if err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return out
}

func execCmd(args ...string) (string, error) {
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// isolateHome points HOME at a temp dir so config and briefings stay local to the test.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestCLI_PersonasListAndShow(t *testing.T) {
	isolateHome(t)

	out := runCmd(t, "personas", "list", "--no-color")
	if !strings.Contains(out, "- wealth_advisor: Wealth Advisor") {
		t.Fatalf("list missing wealth advisor:\n%s", out)
	}
	if !strings.Contains(out, "executive: C-Suite Executive (default)") {
		t.Fatalf("list missing default marker:\n%s", out)
	}

	out = runCmd(t, "personas", "show", "wealth_advisor", "--format", "json")
	var p struct {
		ID         string   `json:"id"`
		Role       string   `json:"role"`
		FocusAreas []string `json:"focus_areas"`
	}
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("show output not JSON: %v\n%s", err, out)
	}
	if p.Role != "Advisor" || p.FocusAreas[0] != "Client 360 View" {
		t.Fatalf("unexpected persona: %+v", p)
	}

	out = runCmd(t, "personas", "show", "nobody", "--format", "json")
	if !strings.Contains(out, `"id": "executive"`) {
		t.Fatalf("unknown persona should fall back to executive:\n%s", out)
	}
}

func TestCLI_InsightsSectionAndAll(t *testing.T) {
	isolateHome(t)

	out := runCmd(t, "insights", "home", "-p", "compliance_officer", "--no-color")
	if !strings.Contains(out, "Primary metrics: Compliance Rate, Open Alerts, KYC Status") {
		t.Fatalf("unexpected insights output:\n%s", out)
	}

	out = runCmd(t, "insights", "--all", "-p", "wealth_advisor", "--format", "json")
	var v struct {
		Sections []struct {
			SectionID string `json:"section_id"`
		} `json:"sections"`
	}
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if len(v.Sections) != 6 || v.Sections[5].SectionID != "advanced_capabilities" {
		t.Fatalf("unexpected sections: %+v", v.Sections)
	}

	out = runCmd(t, "insights", "no_such_page", "--no-color")
	if !strings.Contains(out, "Section [no_such_page]") || !strings.Contains(out, "(no insights defined)") {
		t.Fatalf("unknown section should render the default record:\n%s", out)
	}

	if _, err := execCmd("insights", "home", "--all"); err == nil {
		t.Fatalf("expected error for section plus --all")
	}
}

func TestCLI_BriefSaveListShow(t *testing.T) {
	home := isolateHome(t)

	out := runCmd(t, "brief", "home", "ai_insights", "-p", "relationship_manager", "--format", "json", "--save")
	var b struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(out), &b); err != nil || b.ID == "" {
		t.Fatalf("brief output not JSON: %v\n%s", err, out)
	}
	saved := filepath.Join(home, ".wealth360", "briefings", b.ID+".json")
	if _, err := os.Stat(saved); err != nil {
		t.Fatalf("briefing not saved: %v", err)
	}

	out = runCmd(t, "brief", "list")
	if !strings.Contains(out, b.ID+": relationship_manager, 2 section(s)") {
		t.Fatalf("list missing saved briefing:\n%s", out)
	}

	out = runCmd(t, "brief", "show", b.ID, "--format", "md")
	if !strings.Contains(out, "## Relationship Manager (RM)") {
		t.Fatalf("show did not render saved briefing:\n%s", out)
	}
}

func TestCLI_Compare(t *testing.T) {
	isolateHome(t)

	out := runCmd(t, "compare", "chief_investment_officer", "executive")
	for _, want := range []string{
		"Platform Home [home]",
		"shared metrics: Total AUM",
		"- metric: YTD Growth",
		"+ metric: Client Count",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("compare output missing %q:\n%s", want, out)
		}
	}
	out = runCmd(t, "compare", "wealth_advisor", "wealth_advisor", "-s", "ai_insights")
	if !strings.Contains(out, "(identical)") {
		t.Fatalf("expected identical:\n%s", out)
	}
}

func TestCLI_ConfigSetAndShow(t *testing.T) {
	isolateHome(t)

	runCmd(t, "config", "set", "default_persona", "operations_manager")
	runCmd(t, "config", "set", "output_format", "md")
	if _, err := execCmd("config", "set", "default_persona", "intern"); err == nil {
		t.Fatalf("expected error for unknown persona")
	}
	if _, err := execCmd("config", "set", "output_format", "pdf"); err == nil {
		t.Fatalf("expected error for unknown format")
	}

	out := runCmd(t, "config", "show")
	if !strings.Contains(out, "default_persona: operations_manager") || !strings.Contains(out, "output_format: md") {
		t.Fatalf("config not persisted:\n%s", out)
	}

	out = runCmd(t, "personas", "show")
	if !strings.Contains(out, "## Operations Manager") {
		t.Fatalf("default persona and format not applied:\n%s", out)
	}
}

func TestCLI_CatalogDumpValidateAndOverride(t *testing.T) {
	home := isolateHome(t)
	path := filepath.Join(home, "catalog.yaml")

	runCmd(t, "catalog", "dump", "-o", path)
	out := runCmd(t, "catalog", "validate", path)
	if !strings.Contains(out, "6 persona(s), 6 section(s), default executive") {
		t.Fatalf("unexpected validate output:\n%s", out)
	}

	small := `default_persona: cio
personas:
  - id: cio
    name: Chief Investment Officer
    role: CIO
    description: Oversight
    color: "#1f4e79"
    focus_areas: [Risk]
  - id: ops
    name: Ops
    role: Operations
    description: Ops
    color: "#fd7e14"
    focus_areas: []
sections:
  - id: home
    title: Home
    insights:
      cio:
        primary_metrics: [Total AUM]
        key_insights: [AUM tracking]
        data_sources: [ACCOUNTS]
`
	smallPath := filepath.Join(home, "small.yaml")
	if err := os.WriteFile(smallPath, []byte(small), 0o644); err != nil {
		t.Fatal(err)
	}
	out = runCmd(t, "catalog", "validate", smallPath)
	if !strings.Contains(out, "section home has no insights for ops") {
		t.Fatalf("expected missing-pair warning:\n%s", out)
	}

	out = runCmd(t, "--catalog", smallPath, "personas", "list", "--no-color")
	if !strings.Contains(out, "- cio: Chief Investment Officer (default)") {
		t.Fatalf("catalog override not applied:\n%s", out)
	}

	bad := filepath.Join(home, "bad.yaml")
	if err := os.WriteFile(bad, []byte("personas: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execCmd("catalog", "validate", bad); err == nil {
		t.Fatalf("expected empty catalog to fail validation")
	}
}

func TestCLI_BriefListSkipsCorruptFile(t *testing.T) {
	home := isolateHome(t)

	out := runCmd(t, "brief", "home", "-p", "executive", "--format", "json", "--save")
	var b struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(out), &b); err != nil {
		t.Fatalf("brief output not JSON: %v", err)
	}
	dir := filepath.Join(home, ".wealth360", "briefings")
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	out = runCmd(t, "brief", "list")
	if !strings.Contains(out, b.ID+": executive, 1 section(s)") {
		t.Fatalf("list should still show the readable briefing:\n%s", out)
	}
}

func TestCLI_CompareUnknownSection(t *testing.T) {
	isolateHome(t)

	_, err := execCmd("compare", "executive", "wealth_advisor", "-s", "nowhere")
	if err == nil || !strings.Contains(err.Error(), "unknown section: nowhere") {
		t.Fatalf("expected unknown section error, got %v", err)
	}
}

func TestCLI_CatalogFileHomeRelative(t *testing.T) {
	home := isolateHome(t)

	runCmd(t, "catalog", "dump", "-o", filepath.Join(home, "cat.yaml"))
	runCmd(t, "config", "set", "catalog_file", "~/cat.yaml")
	out := runCmd(t, "config", "show")
	if !strings.Contains(out, "catalog_file: ~/cat.yaml") {
		t.Fatalf("catalog_file not saved:\n%s", out)
	}
	out = runCmd(t, "personas", "list", "--no-color")
	if !strings.Contains(out, "- wealth_advisor: Wealth Advisor") {
		t.Fatalf("home-relative catalog not loaded:\n%s", out)
	}
	out = runCmd(t, "--catalog", "~/cat.yaml", "sections", "--no-color")
	if !strings.Contains(out, "- advanced_capabilities: ") {
		t.Fatalf("home-relative --catalog not loaded:\n%s", out)
	}
}
