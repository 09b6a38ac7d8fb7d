package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/capability"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show per-skill XP and unlock status from an evidence file",
	Long: "Reads a JSON object mapping skill names to evidence, e.g.\n" +
		`  {"python": {"years_experience": 1, "num_projects": 2, "has_cert": false}}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("evidence")
		asJSON, _ := cmd.Flags().GetBool("json")

		xpBySkill, err := estimate(cmd, path)
		if err != nil {
			return err
		}
		states := deps.svc.Status(xpBySkill)

		if asJSON {
			return printJSON(cmd, states)
		}
		deps.printer(cmd).Status(states)
		return nil
	},
}

// estimate validates an evidence file and converts it to XP per skill.
func estimate(cmd *cobra.Command, path string) (map[string]int, error) {
	evidence, err := readInput(path)
	if err != nil {
		return nil, err
	}
	input, err := withFields(json.RawMessage(`{}`), map[string]any{"evidence": evidence})
	if err != nil {
		return nil, err
	}
	out, err := deps.caps.Invoke(cmd.Context(), capability.NameEstimateXP, input)
	if err != nil {
		return nil, err
	}
	xpBySkill, ok := out.(map[string]int)
	if !ok {
		return nil, fmt.Errorf("unexpected %s output %T", capability.NameEstimateXP, out)
	}
	return xpBySkill, nil
}

func init() {
	statusCmd.Flags().String("evidence", "", "Path to a JSON evidence file (default: no evidence)")
	statusCmd.Flags().Bool("json", false, "Print JSON instead of a table")
}
