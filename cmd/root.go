package cmd

import (
	"fmt"
	"io"
	"os"

	cfgpkg "github.com/KaramelBytes/wealth360-cli/internal/config"
	"github.com/KaramelBytes/wealth360-cli/internal/logging"
	"github.com/KaramelBytes/wealth360-cli/internal/persona"
	"github.com/KaramelBytes/wealth360-cli/internal/render"
	"github.com/KaramelBytes/wealth360-cli/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	cfgFile     string
	debug       bool
	flagFormat  string
	flagNoColor bool
	flagCatalog string

	// Loaded configuration
	cfg *cfgpkg.Global
	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "wealth360",
	Short: "Wealth 360 persona catalog: role-tailored dashboard insights",
	Long: `wealth360 exposes the Wealth 360 analytics dashboard's persona catalog: the roles the
dashboard can be tailored to and, for every dashboard section, the metrics, insights and data
sources each role is shown.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	err := rootCmd.Execute()
	_ = log.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.wealth360/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "output format: text, md, json, yaml (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored text output")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "YAML catalog file replacing the built-in catalog (overrides config)")
}

func loadConfig() {
	if l, err := logging.New(debug); err == nil {
		log = l
	} else {
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to init logger: %v\n", err)
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults so read-only commands keep working
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{DefaultPersona: "executive", DefaultSection: "home", OutputFormat: "text", Color: true}
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("format") && flagFormat != "" {
		cfg.OutputFormat = flagFormat
	}
	if f.Changed("no-color") && flagNoColor {
		cfg.Color = false
	}
	if f.Changed("catalog") {
		cfg.CatalogFile = flagCatalog
	}
	log.Debug("configuration loaded",
		zap.String("config", cfgFile),
		zap.String("format", cfg.OutputFormat),
		zap.String("catalog_file", cfg.CatalogFile))
}

// loadCatalog returns the configured catalog file, or the built-in catalog.
func loadCatalog() (*persona.Catalog, error) {
	if cfg == nil || cfg.CatalogFile == "" {
		return persona.Builtin(), nil
	}
	c, err := openCatalog(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", cfg.CatalogFile, err)
	}
	log.Debug("using catalog file", zap.String("path", cfg.CatalogFile))
	return c, nil
}

// openCatalog loads a catalog file, resolving a leading "~".
func openCatalog(path string) (*persona.Catalog, error) {
	p, err := utils.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return persona.LoadFile(p)
}

func newRenderer() (render.Renderer, error) {
	format, color := "text", true
	if cfg != nil {
		format, color = cfg.OutputFormat, cfg.Color
	}
	return render.NewRenderer(format, render.Options{Color: color})
}

// resolvePersona applies the configured default when id is empty and falls
// back to the catalog's default persona for unknown ids.
func resolvePersona(c *persona.Catalog, id string) persona.Persona {
	if id == "" && cfg != nil {
		id = cfg.DefaultPersona
	}
	p, res := c.LookupPersona(id)
	if res == persona.Fallback {
		log.Warn("unknown persona, using default",
			zap.String("requested", id),
			zap.String("default", p.ID))
	}
	return p
}

func write(w io.Writer, b []byte, err error) error {
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
