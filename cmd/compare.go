package cmd

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/wealth360-cli/internal/compare"
	"github.com/spf13/cobra"
)

var compareSection string

var compareCmd = &cobra.Command{
	Use:   "compare <persona-a> <persona-b>",
	Short: "Compare what two personas see on a dashboard section",
	Example: `  wealth360 compare chief_investment_officer executive
  wealth360 compare relationship_manager wealth_advisor -s ai_insights`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		section := compareSection
		if section == "" {
			section = cfg.DefaultSection
		}
		if !c.HasSection(section) {
			return fmt.Errorf("unknown section: %s (see 'wealth360 sections')", section)
		}
		res := compare.Compare(c, section, resolvePersona(c, args[0]).ID, resolvePersona(c, args[1]).ID)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s [%s]: %s vs %s\n", res.SectionTitle, res.SectionID, res.Left.Name, res.Right.Name)
		fmt.Fprintf(out, "shared metrics: %s\n", listOrNone(res.SharedMetrics))
		fmt.Fprintf(out, "only %s: %s\n", res.Left.ID, listOrNone(res.OnlyLeft))
		fmt.Fprintf(out, "only %s: %s\n", res.Right.ID, listOrNone(res.OnlyRight))
		fmt.Fprintf(out, "shared data sources: %s\n", listOrNone(res.SharedSources))
		if res.Identical() {
			fmt.Fprintln(out, "(identical)")
			return nil
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, res.Unified())
		return nil
	},
}

func listOrNone(v []string) string {
	if len(v) == 0 {
		return "(none)"
	}
	return strings.Join(v, ", ")
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVarP(&compareSection, "section", "s", "", "section id (default is config default_section)")
}
