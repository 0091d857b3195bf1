package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/promptbox"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the promptbox version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), promptbox.VersionTag())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
