package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/Despensa_Go/internal/auth"
	"github.com/osse101/Despensa_Go/internal/config"
)

var errNoJWTSecret = errors.New("JWT_SECRET is not set")

func newTokenCmd(opts *globalOptions) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "token USER_ID",
		Short: "Issue an access token for a user",
		Long: `Issue a signed access token with the server's JWT_SECRET, JWT_ISSUER
and JWT_TTL. Meant for development and for operators with access to the
server configuration.

With --save the token and user are stored in the profile so later
commands use them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			token, expires, err := issueToken(cfg, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintln(cmd.ErrOrStderr(), mutedStyle.Render("expires "+expires.Format(time.RFC3339)))

			if !save {
				return nil
			}
			p, err := loadProfile(opts.profilePath)
			if err != nil {
				return err
			}
			p.UserID = args[0]
			p.Token = token
			if opts.apiURL != "" {
				p.BaseURL = opts.apiURL
			}
			if err := saveProfile(opts.profilePath, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), successStyle.Render("Saved to "+opts.profilePath))
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Store the token in the profile")
	return cmd
}

func issueToken(cfg *config.Config, userID string) (string, time.Time, error) {
	if cfg.JWTSecret == "" {
		return "", time.Time{}, errNoJWTSecret
	}
	if len(cfg.JWTSecret) < config.MinJWTSecretLength {
		return "", time.Time{}, fmt.Errorf("JWT_SECRET must be at least %d characters", config.MinJWTSecretLength)
	}
	return auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL).Issue(userID)
}
