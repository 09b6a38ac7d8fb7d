package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var capabilityCmd = &cobra.Command{
	Use:   "capability",
	Short: "List or invoke engine capabilities",
}

var capabilityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered capabilities",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		infos := deps.caps.List()
		if asJSON {
			return printJSON(cmd, infos)
		}
		for _, info := range infos {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s  %s\n", info.Name, info.Description)
		}
		return nil
	},
}

var capabilityInvokeCmd = &cobra.Command{
	Use:   "invoke <name>",
	Short: "Invoke a capability with JSON input and print its JSON output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("input")
		input, err := readInput(path)
		if err != nil {
			return err
		}
		out, err := deps.caps.Invoke(cmd.Context(), args[0], input)
		if err != nil {
			return err
		}
		return printJSON(cmd, out)
	},
}

func init() {
	capabilityListCmd.Flags().Bool("json", false, "Print JSON including input schemas")
	capabilityInvokeCmd.Flags().String("input", "", "Path to a JSON input file (default: {})")

	capabilityCmd.AddCommand(capabilityListCmd)
	capabilityCmd.AddCommand(capabilityInvokeCmd)
}
