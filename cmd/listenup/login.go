package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/listenupapp/listenup-client/internal/client/session"
	"github.com/listenupapp/listenup-client/internal/validation"
	"github.com/listenupapp/listenup-client/pkg/api"
)

var (
	loginServer string
	loginEmail  string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and run the initial library sync",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, cleanup, err := newApp(ctx, false)
		if err != nil {
			return err
		}
		defer cleanup()

		email := loginEmail
		if email == "" {
			email, err = a.io.ReadInput("Email: ")
			if err != nil {
				return err
			}
		}
		if err := validation.ValidateEmail(email); err != nil {
			return err
		}

		password, err := a.io.ReadPassword("Password: ")
		if err != nil {
			return err
		}
		if err := validation.ValidatePassword(password); err != nil {
			return err
		}

		// Keep the device identity stable across re-logins
		deviceID := session.NewDeviceID()
		if a.sess != nil && a.sess.DeviceID != "" {
			deviceID = a.sess.DeviceID
		}

		serverURL := a.cfg.ServerURL
		if loginServer != "" {
			serverURL = loginServer
			a.client.SetBaseURL(serverURL)
		}

		tokens, err := a.client.Login(ctx, api.LoginRequest{
			Email:    email,
			Password: password,
			DeviceID: deviceID,
		})
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		expiry, err := session.TokenExpiry(tokens.AccessToken)
		if err != nil {
			return err
		}

		a.sess = &session.Session{
			UserID:       tokens.UserID,
			DeviceID:     deviceID,
			ServerURL:    serverURL,
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
			ExpiresAt:    expiry,
		}
		if err := session.Save(ctx, a.store, a.sess); err != nil {
			return err
		}
		a.io.Println("Logged in.")

		a.io.Println("Running initial sync...")
		if err := a.service.Pull(ctx, printProgress); err != nil {
			return fmt.Errorf("initial sync failed (retry with 'listenup pull'): %w", err)
		}
		a.io.Println("Library ready.")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginServer, "server", "", "server base URL (overrides config)")
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
}
