package cmd

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/devportfolio/portfolio/internal/client/store"
	"github.com/devportfolio/portfolio/pkg/sdk"
)

var (
	loginEmail    string
	loginPassword string

	registerName   string
	registerAvatar string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and save the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd.Context())

		password, err := passwordOrPrompt(loginPassword)
		if err != nil {
			return err
		}

		session, err := a.store.Login(cmd.Context(), loginEmail, password)
		if err != nil {
			return errors.New(a.store.State().Session.Err)
		}
		if err := saveSession(a, session); err != nil {
			return err
		}

		pterm.Success.Printf("Logged in as %s (%s)\n", session.User.Name, session.User.Email)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and save the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd.Context())

		password, err := passwordOrPrompt(loginPassword)
		if err != nil {
			return err
		}

		session, err := a.store.Register(cmd.Context(), sdk.RegisterInput{
			Name:     registerName,
			Email:    loginEmail,
			Password: password,
			Avatar:   registerAvatar,
		})
		if err != nil {
			return errors.New(a.store.State().Session.Err)
		}
		if err := saveSession(a, session); err != nil {
			return err
		}

		pterm.Success.Printf("Account created for %s\n", session.User.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd.Context())

		// Ask the server to revoke the token; it may not keep a revocation list.
		if token := a.store.State().Session.Data.Token; token != "" {
			if err := a.api.WithToken(token).Logout(cmd.Context()); err != nil {
				pterm.Warning.Printf("Server logout failed: %s\n", sdk.ErrorMessage(err, err.Error()))
			}
		}

		a.store.Logout()
		if err := a.creds.DeleteCredentials(); err != nil {
			return err
		}

		pterm.Success.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd.Context())

		token := a.store.State().Session.Data.Token
		if token == "" {
			return errors.New("not logged in")
		}
		user, err := a.api.WithToken(token).Me(cmd.Context())
		if err != nil {
			return errors.New(sdk.ErrorMessage(err, "Failed to fetch user"))
		}

		pterm.DefaultSection.Println("Signed in")
		pterm.Info.Printf("Name:  %s\n", user.Name)
		pterm.Info.Printf("Email: %s\n", user.Email)
		pterm.Info.Printf("Role:  %s\n", user.Role)
		return nil
	},
}

func passwordOrPrompt(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	password, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

func saveSession(a *app, session store.Session) error {
	creds := sdk.NewCredentials(&sdk.AuthResult{Token: session.Token, User: session.User})
	if err := a.creds.SaveCredentials(creds); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	return nil
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().StringVar(&loginEmail, "email", "", "Account email")
		c.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
		_ = c.MarkFlagRequired("email")
	}
	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&registerAvatar, "avatar", "", "Avatar URL")
	_ = registerCmd.MarkFlagRequired("name")
}
