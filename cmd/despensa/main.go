package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/Despensa_Go/internal/client"
)

// Version is set at build time
var Version = "dev"

// globalOptions are the persistent flags shared by every remote command
type globalOptions struct {
	profilePath string
	apiURL      string
	token       string
	apiKey      string
	userID      string
	timeout     time.Duration
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "despensa",
		Short: "Pantry and weekly menu tool",
		Long: `despensa talks to the Despensa API to inspect the pantry, show menus
and prepare them, and runs local maintenance such as migrations.

Connection settings come from flags, then DESPENSA_* environment
variables, then the saved profile.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.profilePath, "profile", defaultProfilePath(), "Path of the saved connection profile")
	pf.StringVar(&opts.apiURL, "api-url", "", "API base URL (env DESPENSA_API_URL)")
	pf.StringVar(&opts.token, "token", "", "Bearer token (env DESPENSA_TOKEN)")
	pf.StringVar(&opts.apiKey, "api-key", "", "API key for trusted callers (env DESPENSA_API_KEY)")
	pf.StringVar(&opts.userID, "user", "", "User id sent with the API key (env DESPENSA_USER)")
	pf.DurationVar(&opts.timeout, "timeout", client.DefaultTimeout, "Request timeout")

	root.AddCommand(
		newPrepareCmd(opts),
		newPantryCmd(opts),
		newMenuCmd(opts),
		newMigrateCmd(),
		newTokenCmd(opts),
	)
	return root
}

// apiClient builds a client from flags, environment and the saved profile
func (o *globalOptions) apiClient() (*client.Client, error) {
	p, err := loadProfile(o.profilePath)
	if err != nil {
		return nil, err
	}

	return client.New(client.Options{
		BaseURL: firstNonEmpty(o.apiURL, os.Getenv("DESPENSA_API_URL"), p.BaseURL, client.DefaultBaseURL),
		Token:   firstNonEmpty(o.token, os.Getenv("DESPENSA_TOKEN"), p.Token),
		APIKey:  firstNonEmpty(o.apiKey, os.Getenv("DESPENSA_API_KEY")),
		UserID:  firstNonEmpty(o.userID, os.Getenv("DESPENSA_USER"), p.UserID),
		Timeout: o.timeout,
		Retries: client.DefaultRetries,
	}), nil
}

func defaultProfilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "despensa-profile.json"
	}
	return filepath.Join(dir, "despensa", "profile.json")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
