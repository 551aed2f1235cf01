package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setUsernameCmd = &cobra.Command{
	Use:   "set-username <username>",
	Short: "Set your Bitbucket username",
	Args:  cobra.ExactArgs(1),
	RunE:  runSetUsername,
}

func init() {
	rootCmd.AddCommand(setUsernameCmd)
}

func runSetUsername(cmd *cobra.Command, args []string) error {
	store, err := credentialStore()
	if err != nil {
		return err
	}

	creds, err := store.Load()
	if err != nil {
		return err
	}

	creds.Username = args[0]
	if err := store.Save(creds); err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Username set to: %s\n", creds.Username)
	return err
}
