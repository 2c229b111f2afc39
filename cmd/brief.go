package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/wealth360-cli/internal/briefing"
	"github.com/KaramelBytes/wealth360-cli/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	briefPersona string
	briefSave    bool
)

var briefCmd = &cobra.Command{
	Use:   "brief [section-id...]",
	Short: "Build a persona briefing across dashboard sections",
	Long: `Build a briefing: the persona's profile followed by its insights for the given
sections, or every section when none are given. --save stores the briefing as JSON
in briefings_dir.`,
	Example: `  wealth360 brief -p relationship_manager
  wealth360 brief home ai_insights -p executive --format md --save
  wealth360 brief list
  wealth360 brief show 3f6c1d2e-...`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		r, err := newRenderer()
		if err != nil {
			return err
		}
		id := briefPersona
		if id == "" {
			id = cfg.DefaultPersona
		}
		b := briefing.Build(c, id, args...)
		if b.FallbackPersona {
			log.Warn("unknown persona, using default", zap.String("requested", id), zap.String("default", b.Persona.ID))
		}
		out, err := r.Briefing(b)
		if err := write(cmd.OutOrStdout(), out, err); err != nil {
			return err
		}
		if !briefSave {
			return nil
		}
		dir, err := briefingsDir()
		if err != nil {
			return err
		}
		path, err := b.Save(dir)
		if err != nil {
			return fmt.Errorf("save briefing: %w", err)
		}
		log.Debug("briefing saved", zap.String("id", b.ID), zap.String("path", path))
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Briefing saved: %s\n", path)
		return nil
	},
}

var briefListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved briefings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := briefingsDir()
		if err != nil {
			return err
		}
		all, err := briefing.List(dir, log)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(all) == 0 {
			fmt.Fprintln(out, "(no briefings)")
			return nil
		}
		for _, b := range all {
			fmt.Fprintf(out, "- %s: %s, %d section(s), %s\n",
				b.ID, b.Persona.ID, len(b.Sections), b.GeneratedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var briefShowCmd = &cobra.Command{
	Use:   "show <briefing-id|path>",
	Short: "Render a saved briefing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !strings.HasSuffix(path, ".json") {
			dir, err := briefingsDir()
			if err != nil {
				return err
			}
			path = filepath.Join(dir, path+".json")
		}
		b, err := briefing.Load(path)
		if err != nil {
			return err
		}
		r, err := newRenderer()
		if err != nil {
			return err
		}
		out, err := r.Briefing(b)
		return write(cmd.OutOrStdout(), out, err)
	},
}

func briefingsDir() (string, error) {
	if cfg != nil && cfg.BriefingsDir != "" {
		return utils.ExpandHome(cfg.BriefingsDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".wealth360", "briefings"), nil
}

func init() {
	rootCmd.AddCommand(briefCmd)
	briefCmd.AddCommand(briefListCmd)
	briefCmd.AddCommand(briefShowCmd)
	briefCmd.Flags().StringVarP(&briefPersona, "persona", "p", "", "persona id (default is config default_persona)")
	briefCmd.Flags().BoolVar(&briefSave, "save", false, "save the briefing to briefings_dir")
}
