package main

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored session",
	Long: `Sign out of the server. The local library copy and any queued
offline edits stay on disk; they sync on the next login.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := newApp(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := a.store.DeleteSession(cmd.Context()); err != nil {
			return err
		}
		a.io.Println("Logged out.")
		return nil
	},
}
