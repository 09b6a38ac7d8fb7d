package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/capability"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Plan a learning roadmap toward a role",
	Long: "Builds an ordered roadmap from the skills you already have, given as a\n" +
		"comma-separated list, detected in a resume text file, or both.",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		skillList, _ := cmd.Flags().GetString("skills")
		resumePath, _ := cmd.Flags().GetString("resume")
		asJSON, _ := cmd.Flags().GetBool("json")

		fields := map[string]any{"target_role": role, "skills": splitList(skillList)}
		if resumePath != "" {
			text, err := os.ReadFile(resumePath)
			if err != nil {
				return fmt.Errorf("read resume: %w", err)
			}
			fields["resume_text"] = string(text)
		}
		input, err := withFields(json.RawMessage(`{}`), fields)
		if err != nil {
			return err
		}

		out, err := deps.caps.Invoke(cmd.Context(), capability.NameRoadmap, input)
		if err != nil {
			return err
		}
		res, ok := out.(capability.RoadmapOutput)
		if !ok {
			return fmt.Errorf("unexpected %s output %T", capability.NameRoadmap, out)
		}

		if asJSON {
			return printJSON(cmd, res)
		}

		p := deps.printer(cmd)
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, p.Painter.Paint(theme.Title, "Roadmap: "+res.TargetRole))
		if !res.RoleFound {
			fmt.Fprintln(w, p.Painter.Paint(theme.Warning, res.Narrative))
			return nil
		}
		p.Roadmap(res.Steps)
		fmt.Fprintln(w)
		fmt.Fprintln(w, res.Narrative)
		return nil
	},
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func init() {
	roadmapCmd.Flags().String("role", "", "Target role (ID or name)")
	roadmapCmd.Flags().String("skills", "", "Comma-separated skills you already have")
	roadmapCmd.Flags().String("resume", "", "Path to a plain-text resume")
	roadmapCmd.Flags().Bool("json", false, "Print JSON")
	_ = roadmapCmd.MarkFlagRequired("role")
}
