package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/capability"
	"github.com/abhisek/pathwise/internal/career"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis for a request file",
	Long: "Reads a JSON request with any of target_role, resume_text, skills,\n" +
		"evidence and top_k. --role overrides target_role.",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		path, _ := cmd.Flags().GetString("input")
		asJSON, _ := cmd.Flags().GetBool("json")

		input, err := readInput(path)
		if err != nil {
			return err
		}
		if role != "" {
			if input, err = withFields(input, map[string]any{"target_role": role}); err != nil {
				return err
			}
		}

		out, err := deps.caps.Invoke(cmd.Context(), capability.NameAnalyze, input)
		if err != nil {
			return err
		}
		report, ok := out.(*career.Report)
		if !ok {
			return fmt.Errorf("unexpected %s output %T", capability.NameAnalyze, out)
		}

		if asJSON {
			return printJSON(cmd, report)
		}
		deps.printer(cmd).Report(report)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("role", "", "Target role (ID or name)")
	analyzeCmd.Flags().String("input", "", "Path to a JSON request file")
	analyzeCmd.Flags().Bool("json", false, "Print the report as JSON")
}
