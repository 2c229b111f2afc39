package cmd

import (
	"github.com/spf13/cobra"
)

var personasCmd = &cobra.Command{
	Use:     "personas",
	Aliases: []string{"persona"},
	Short:   "List or inspect dashboard personas",
	Example: `  wealth360 personas list
  wealth360 personas show wealth_advisor
  wealth360 personas show compliance_officer --format json`,
}

var personasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List personas in definition order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		r, err := newRenderer()
		if err != nil {
			return err
		}
		out, err := r.Personas(c.Personas(), c.DefaultPersonaID())
		return write(cmd.OutOrStdout(), out, err)
	},
}

var personasShowCmd = &cobra.Command{
	Use:   "show [persona-id]",
	Short: "Show a persona's role, description and focus areas",
	Long: `Show a persona's metadata. Unknown ids show the default persona; with no id the
configured default_persona is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		r, err := newRenderer()
		if err != nil {
			return err
		}
		id := ""
		if len(args) == 1 {
			id = args[0]
		}
		out, err := r.Persona(resolvePersona(c, id))
		return write(cmd.OutOrStdout(), out, err)
	},
}

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List dashboard sections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		r, err := newRenderer()
		if err != nil {
			return err
		}
		out, err := r.Sections(c.Sections())
		return write(cmd.OutOrStdout(), out, err)
	},
}

func init() {
	rootCmd.AddCommand(personasCmd)
	personasCmd.AddCommand(personasListCmd)
	personasCmd.AddCommand(personasShowCmd)
	rootCmd.AddCommand(sectionsCmd)
}
