package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show queued and failed sync operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, cleanup, err := newApp(ctx, true)
		if err != nil {
			return err
		}
		defer cleanup()

		state, err := a.observer.State(ctx)
		if err != nil {
			return err
		}

		a.io.Printf("Pending changes: %d\n", state.PendingCount)
		if !state.HasErrors {
			a.io.Println("No sync errors.")
			return nil
		}

		a.io.Printf("Failed changes: %d\n", len(state.Failed))
		for _, f := range state.Failed {
			a.io.Printf("  %s  %s\n", f.ID, f.Description)
			a.io.Printf("      after %d attempt(s): %s\n", f.Attempts, f.Error)
		}
		a.io.Println("Use 'listenup retry <id>' or 'listenup dismiss <id>'.")
		return nil
	},
}

var retryAll bool

var retryCmd = &cobra.Command{
	Use:   "retry [operation-id]",
	Short: "Requeue a failed change for the next sync",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, cleanup, err := newApp(ctx, true)
		if err != nil {
			return err
		}
		defer cleanup()

		switch {
		case retryAll:
			if err := a.observer.RetryAll(ctx); err != nil {
				return err
			}
		case len(args) == 1:
			if err := a.observer.Retry(ctx, args[0]); err != nil {
				return err
			}
		default:
			return fmt.Errorf("pass an operation ID or --all")
		}

		a.io.Println("Requeued. Run 'listenup sync' to push.")
		return nil
	},
}

var dismissAll bool

var dismissCmd = &cobra.Command{
	Use:   "dismiss [operation-id]",
	Short: "Discard a failed change and restore server state",
	Long: `Discard a failed change. The affected item is flagged for resync
so the server's version replaces the abandoned local edit on the next
pull.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, cleanup, err := newApp(ctx, true)
		if err != nil {
			return err
		}
		defer cleanup()

		switch {
		case dismissAll:
			if err := a.observer.DismissAll(ctx); err != nil {
				return err
			}
		case len(args) == 1:
			if err := a.observer.Dismiss(ctx, args[0]); err != nil {
				return err
			}
		default:
			return fmt.Errorf("pass an operation ID or --all")
		}

		a.io.Println("Dismissed. Run 'listenup pull' to restore server state.")
		return nil
	},
}

func init() {
	retryCmd.Flags().BoolVar(&retryAll, "all", false, "requeue every failed change")
	dismissCmd.Flags().BoolVar(&dismissAll, "all", false, "discard every failed change")
}
