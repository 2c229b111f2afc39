package cmd

import (
	"bytes"
	"fmt"

	"github.com/KaramelBytes/wealth360-cli/internal/persona"
	"github.com/KaramelBytes/wealth360-cli/internal/utils"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Export or validate persona catalog files",
	Example: `  wealth360 catalog dump --output catalog.yaml
  wealth360 catalog validate ./catalog.yaml
  wealth360 --catalog ./catalog.yaml personas list`,
}

var catalogOutput string

var catalogDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Write the active catalog as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := persona.Encode(&buf, c); err != nil {
			return err
		}
		if catalogOutput == "" {
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		if err := utils.SafeWriteFile(catalogOutput, buf.Bytes()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Catalog written: %s\n", catalogOutput)
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a YAML catalog file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCatalog(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✓ %s: %d persona(s), %d section(s), default %s\n",
			args[0], len(c.ListPersonas()), len(c.Sections()), c.DefaultPersonaID())
		// Undefined pairs are legal but render as empty sections.
		for _, s := range c.Sections() {
			for _, p := range c.ListPersonas() {
				if _, res := c.LookupSectionInsights(s.ID, p.ID); res == persona.Fallback {
					fmt.Fprintf(out, "⚠ section %s has no insights for %s\n", s.ID, p.ID)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogDumpCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogDumpCmd.Flags().StringVarP(&catalogOutput, "output", "o", "", "write to file instead of stdout")
}
