// cmd/debugtoken/main.go
// Mints a token for the /api/debug routes, signed with SECRET_KEY from the environment.
//
//	go run ./cmd/debugtoken --sub ops@example.com --ttl 2h
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matchops/settlement-report/internal/config"
	"github.com/matchops/settlement-report/internal/middleware"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
		staff   bool
	)

	cmd := &cobra.Command{
		Use:   "debugtoken",
		Short: "Issue a bearer token for the debug inspection routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			token, err := middleware.IssueToken([]byte(cfg.SecretKey), subject, staff, ttl)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "sub", "", "who the token is issued to")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	cmd.Flags().BoolVar(&staff, "staff", true, "grant access to debug routes")
	_ = cmd.MarkFlagRequired("sub")

	return cmd
}
