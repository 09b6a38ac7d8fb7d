package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathwise",
	Short: "Skill gap analysis and learning roadmaps",
	Long: "Pathwise estimates skill XP from CV evidence, tracks skill unlocks, " +
		"recommends learning content and plans a roadmap toward a target role.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == versionCmd.Name() {
			return nil
		}
		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		deps = d
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("env-file", ".env", "Path to a .env file (missing file is ignored)")
	pf.String("log-level", "", "Log level: debug, info, warn, error (overrides PATHWISE_LOG_LEVEL)")
	pf.String("log-format", "", "Log format: console or json (overrides PATHWISE_LOG_FORMAT)")
	pf.String("catalog", "", "Path to a YAML skill catalog (overrides PATHWISE_CATALOG)")
	pf.Bool("no-color", false, "Disable coloured output")

	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(roleCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(awardCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(capabilityCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
