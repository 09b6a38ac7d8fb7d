package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the skill catalog",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills in learning order (optionally only those a role needs)",
	RunE: func(cmd *cobra.Command, args []string) error {
		roleKey, _ := cmd.Flags().GetString("role")
		roots, _ := cmd.Flags().GetBool("roots")

		skills := deps.graph.TopologicalOrder()
		switch {
		case roots:
			skills = deps.graph.RootSkills()
		case roleKey != "":
			role, ok := deps.graph.FindRole(roleKey)
			if !ok {
				return fmt.Errorf("role %q not found in skill catalog", roleKey)
			}
			skills = deps.graph.ByRole(role.ID)
		}

		deps.printer(cmd).Skills(skills)
		return nil
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a skill with its prerequisites and dependents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := deps.graph.GetSkill(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", s.Name, s.ID)
		if s.Description != "" {
			fmt.Fprintln(out, s.Description)
		}
		fmt.Fprintf(out, "Required XP:   %d\n", s.RequiredXP)
		fmt.Fprintf(out, "Roles:         %s\n", strings.Join(s.Roles, ", "))
		if len(s.Aliases) > 0 {
			fmt.Fprintf(out, "Aliases:       %s\n", strings.Join(s.Aliases, ", "))
		}
		fmt.Fprintf(out, "Prerequisites: %s\n", names(deps.graph.Prerequisites(s.ID)))
		fmt.Fprintf(out, "Unlocks:       %s\n", names(deps.graph.Dependents(s.ID)))
		if res := deps.graph.ResourceFor(s.ID); res != "" {
			fmt.Fprintf(out, "Resource:      %s\n", res)
		}
		return nil
	},
}

func init() {
	skillListCmd.Flags().String("role", "", "Only skills the role needs (ID or name)")
	skillListCmd.Flags().Bool("roots", false, "Only entry-level skills with no prerequisites")
	skillListCmd.MarkFlagsMutuallyExclusive("role", "roots")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
}
