package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/skillgraph"
)

var roleCmd = &cobra.Command{
	Use:   "role",
	Short: "Browse target roles",
}

var roleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List roles and the skills they require",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps.printer(cmd).Roles(deps.graph.Roles())
		return nil
	},
}

func init() {
	roleCmd.AddCommand(roleListCmd)
}

func names(skills []skillgraph.Skill) string {
	if len(skills) == 0 {
		return "-"
	}
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = s.Name
	}
	return strings.Join(out, ", ")
}
