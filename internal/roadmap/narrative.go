package roadmap

import (
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/gap"
)

// narrativeGapLimit is how many gaps the narrative names.
const narrativeGapLimit = 3

// Narrative summarises a gap analysis for a role in plain English.
func Narrative(roleName string, gaps []gap.Entry) string {
	if len(gaps) == 0 {
		return fmt.Sprintf("Your resume already aligns well with the %s role. "+
			"Focus on projects and portfolios to showcase your expertise.", roleName)
	}
	names := gap.Names(gaps[:min(len(gaps), narrativeGapLimit)])
	return fmt.Sprintf("For the %s role, you are missing key skills such as %s. "+
		"Start by covering their prerequisites, then move to advanced applications. "+
		"Completing these topics will significantly strengthen your fit for %s.",
		roleName, strings.Join(names, ", "), roleName)
}

// RoleNotFound is the narrative for a role the catalog does not define.
func RoleNotFound(roleKey string) string {
	return fmt.Sprintf("Role %q not found in skill catalog.", roleKey)
}
