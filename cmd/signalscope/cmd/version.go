package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the signalscope CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "signalscope version %s\n", version)
		fmt.Fprintln(cmd.OutOrStdout(), "Technical analysis and composite signal scoring for daily bars")
		fmt.Fprintln(cmd.OutOrStdout(), "https://github.com/rustyeddy/signalscope")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
