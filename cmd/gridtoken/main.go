// Command gridtoken prints an operator token for the result server's admin routes.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-grid/config"
	"github.com/beka-birhanu/vinom-grid/infrastruture/token"
	"github.com/spf13/cobra"
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
	)

	cmd := &cobra.Command{
		Use:          "gridtoken",
		Short:        "Issue a bearer token signed with JWT_SECRET",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tokenizer, err := token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
			if err != nil {
				return err
			}

			signed, err := tokenizer.Generate(subject, map[string]interface{}{"role": "operator"}, ttl)
			if err != nil {
				return fmt.Errorf("signing token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "operator", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
