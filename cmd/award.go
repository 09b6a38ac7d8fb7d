package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/capability"
	"github.com/abhisek/pathwise/internal/career"
)

var awardCmd = &cobra.Command{
	Use:   "award",
	Short: "Award XP to a skill and show what it unlocks",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("evidence")
		skill, _ := cmd.Flags().GetString("skill")
		amount, _ := cmd.Flags().GetInt("xp")
		asJSON, _ := cmd.Flags().GetBool("json")

		current, err := estimate(cmd, path)
		if err != nil {
			return err
		}
		input, err := withFields(json.RawMessage(`{}`), map[string]any{
			"xp":     current,
			"skill":  skill,
			"amount": amount,
		})
		if err != nil {
			return err
		}

		out, err := deps.caps.Invoke(cmd.Context(), capability.NameAwardXP, input)
		if err != nil {
			return err
		}
		res, ok := out.(career.AwardResult)
		if !ok {
			return fmt.Errorf("unexpected %s output %T", capability.NameAwardXP, out)
		}

		if asJSON {
			return printJSON(cmd, res)
		}
		deps.printer(cmd).Transitions(res.Transitions)
		return nil
	},
}

func init() {
	awardCmd.Flags().String("evidence", "", "Path to a JSON evidence file for the starting XP")
	awardCmd.Flags().String("skill", "", "Skill to award XP to (ID, name or alias)")
	awardCmd.Flags().Int("xp", 0, "XP to award")
	awardCmd.Flags().Bool("json", false, "Print JSON")
	_ = awardCmd.MarkFlagRequired("skill")
	_ = awardCmd.MarkFlagRequired("xp")
}
