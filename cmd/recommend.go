package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/capability"
	"github.com/abhisek/pathwise/internal/skillgraph"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend courses and projects toward a role",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		path, _ := cmd.Flags().GetString("evidence")
		topK, _ := cmd.Flags().GetInt("top-k")
		asJSON, _ := cmd.Flags().GetBool("json")

		evidence, err := readInput(path)
		if err != nil {
			return err
		}
		fields := map[string]any{"target_role": role, "evidence": evidence}
		if topK > 0 {
			fields["top_k"] = topK
		}
		input, err := withFields(json.RawMessage(`{}`), fields)
		if err != nil {
			return err
		}

		out, err := deps.caps.Invoke(cmd.Context(), capability.NameRecommend, input)
		if err != nil {
			return err
		}
		items, ok := out.([]skillgraph.ContentItem)
		if !ok {
			return fmt.Errorf("unexpected %s output %T", capability.NameRecommend, out)
		}

		if asJSON {
			return printJSON(cmd, items)
		}
		deps.printer(cmd).Content(items)
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("role", "", "Target role (ID or name)")
	recommendCmd.Flags().String("evidence", "", "Path to a JSON evidence file")
	recommendCmd.Flags().Int("top-k", 0, "Maximum recommendations (default: PATHWISE_TOP_K)")
	recommendCmd.Flags().Bool("json", false, "Print JSON instead of a list")
	_ = recommendCmd.MarkFlagRequired("role")
}
