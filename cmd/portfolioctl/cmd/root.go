package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/devportfolio/portfolio/internal/client/credentials"
	"github.com/devportfolio/portfolio/internal/client/store"
	"github.com/devportfolio/portfolio/internal/pkg/config"
	"github.com/devportfolio/portfolio/pkg/sdk"
)

var apiURL string

// app is the per-invocation wiring shared by all subcommands.
type app struct {
	api   *sdk.Client
	store *store.Store
	creds sdk.CredentialStore
}

type appKey struct{}

func appFrom(ctx context.Context) *app {
	a, _ := ctx.Value(appKey{}).(*app)
	if a == nil {
		panic("portfolioctl: command context missing app")
	}
	return a
}

var rootCmd = &cobra.Command{
	Use:   "portfolioctl",
	Short: "Portfolio CLI - browse and manage portfolio projects",
	Long: `portfolioctl is the command-line client for the portfolio API. It keeps the
signed-in session in ~/.portfolio/credentials.json.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadClient(cmd.Context(), nil)
		if err != nil {
			return err
		}
		if apiURL != "" {
			cfg.APIURL = apiURL
		}

		creds, err := credentials.NewFileStore()
		if err != nil {
			return fmt.Errorf("failed to create credential store: %w", err)
		}

		api := sdk.NewClient(cfg.APIURL, sdk.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
		a := &app{api: api, store: store.New(api), creds: creds}

		saved, err := creds.LoadCredentials()
		switch {
		case err == nil && saved.IsExpired():
			pterm.Warning.Println("Saved session has expired; run `portfolioctl login`.")
		case err == nil:
			a.store.Hydrate(store.Session{User: saved.User, Token: saved.Token})
		case !errors.Is(err, credentials.ErrNotLoggedIn):
			return err
		}

		cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, a))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Portfolio API base URL (default $PORTFOLIO_API_URL or http://localhost:5000/api)")
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(usersCmd)
}
