package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push queued local edits, then pull server changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, cleanup, err := newApp(ctx, true)
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := a.service.Sync(ctx, printProgress)
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		a.io.Printf("Pushed %d change(s).\n", result.Pushed)
		if result.PullIssues != nil {
			a.io.Printf("Some data could not be refreshed: %v\n", result.PullIssues)
		}

		state, err := a.observer.State(ctx)
		if err != nil {
			return err
		}
		if state.HasErrors {
			a.io.Printf("%d change(s) failed to sync, see 'listenup status'.\n", len(state.Failed))
		}
		return nil
	},
}

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull server changes without pushing local edits",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, cleanup, err := newApp(ctx, true)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := a.service.Pull(ctx, printProgress); err != nil {
			return fmt.Errorf("pull failed: %w", err)
		}
		a.io.Println("Library up to date.")
		return nil
	},
}
