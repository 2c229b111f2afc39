package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/KaramelBytes/wealth360-cli/internal/config"
	"github.com/KaramelBytes/wealth360-cli/internal/persona"
	"github.com/KaramelBytes/wealth360-cli/internal/render"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set wealth360 configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "No config loaded")
			return nil
		}
		fmt.Fprintf(out, "default_persona: %s\n", cfg.DefaultPersona)
		fmt.Fprintf(out, "default_section: %s\n", cfg.DefaultSection)
		fmt.Fprintf(out, "output_format: %s\n", cfg.OutputFormat)
		fmt.Fprintf(out, "color: %t\n", cfg.Color)
		if cfg.CatalogFile != "" {
			fmt.Fprintf(out, "catalog_file: %s\n", cfg.CatalogFile)
		}
		fmt.Fprintf(out, "briefings_dir: %s\n", cfg.BriefingsDir)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		// Reload from disk so flag overrides are not persisted
		c, err := cfgpkg.Load(cfgFile)
		if err != nil {
			return err
		}
		switch key {
		case "default_persona", "default_section":
			cat, err := catalogFor(c)
			if err != nil {
				return err
			}
			if key == "default_persona" {
				if !cat.HasPersona(val) {
					return fmt.Errorf("invalid default_persona: %s (see 'wealth360 personas list')", val)
				}
				c.DefaultPersona = val
			} else {
				if !cat.HasSection(val) {
					return fmt.Errorf("invalid default_section: %s (see 'wealth360 sections')", val)
				}
				c.DefaultSection = val
			}
		case "output_format":
			if !render.ValidFormat(val) {
				return fmt.Errorf("invalid output_format: %s (use text, md, json or yaml)", val)
			}
			c.OutputFormat = val
		case "color":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for color: %v", val)
			}
			c.Color = b
		case "catalog_file":
			if val != "" {
				if _, err := openCatalog(val); err != nil {
					return err
				}
			}
			c.CatalogFile = val
		case "briefings_dir":
			c.BriefingsDir = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		cfg = c
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

// catalogFor returns the catalog a saved config would use.
func catalogFor(c *cfgpkg.Global) (*persona.Catalog, error) {
	if c.CatalogFile == "" {
		return persona.Builtin(), nil
	}
	return openCatalog(c.CatalogFile)
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
