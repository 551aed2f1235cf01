package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setPasswordCmd = &cobra.Command{
	Use:   "set-password <appPassword>",
	Short: "Set your Bitbucket app password",
	Long: `Set the app password used for API authentication.

The password is stored as plaintext JSON in your home directory; use a
scoped app password, not your account password.`,
	Args: cobra.ExactArgs(1),
	RunE: runSetPassword,
}

func init() {
	rootCmd.AddCommand(setPasswordCmd)
}

func runSetPassword(cmd *cobra.Command, args []string) error {
	store, err := credentialStore()
	if err != nil {
		return err
	}

	creds, err := store.Load()
	if err != nil {
		return err
	}

	creds.AppPassword = args[0]
	if err := store.Save(creds); err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), "App password set.")
	return err
}
