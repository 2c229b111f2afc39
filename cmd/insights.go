package cmd

import (
	"fmt"

	"github.com/KaramelBytes/wealth360-cli/internal/persona"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	insightsPersona string
	insightsAll     bool
)

var insightsCmd = &cobra.Command{
	Use:   "insights [section-id]",
	Short: "Show the insights a persona sees on a dashboard section",
	Long: `Show the primary metrics, key insights and data sources a persona sees on a
dashboard section. Without a section id the configured default_section is used;
--all shows every section in dashboard order.`,
	Example: `  wealth360 insights home -p compliance_officer
  wealth360 insights --all -p wealth_advisor --format md`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if insightsAll && len(args) > 0 {
			return fmt.Errorf("specify a section or --all, not both")
		}
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		r, err := newRenderer()
		if err != nil {
			return err
		}
		p := resolvePersona(c, insightsPersona)
		if insightsAll {
			out, err := r.Insights(p, c.AllSectionInsights(p.ID))
			return write(cmd.OutOrStdout(), out, err)
		}
		section := cfg.DefaultSection
		if len(args) == 1 {
			section = args[0]
		}
		rec, res := c.LookupSectionInsights(section, p.ID)
		if res == persona.Fallback {
			log.Warn("no insights defined", zap.String("section", section), zap.String("persona", p.ID))
		}
		entries := persona.SectionInsights{{SectionID: section, Record: rec}}
		out, err := r.Insights(p, entries)
		return write(cmd.OutOrStdout(), out, err)
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
	insightsCmd.Flags().StringVarP(&insightsPersona, "persona", "p", "", "persona id (default is config default_persona)")
	insightsCmd.Flags().BoolVar(&insightsAll, "all", false, "show every section")
}
