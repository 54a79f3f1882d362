package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/myrinnew/wpkit"
	"github.com/myrinnew/wpkit/internal/config"
	"github.com/myrinnew/wpkit/internal/logger"
)

func newCookiesCmd(debug *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cookies",
		Short: "Inspect and remove webview session cookies",
	}
	cmd.AddCommand(newCookiesListCmd(debug))
	cmd.AddCommand(newCookiesLogoutCmd(debug))
	return cmd
}

// openJar builds a jar for the configured engine store.
func openJar(debug bool) (*wpkit.Jar, config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	cleanupLog, _ := logger.Setup(logger.Config{DataDir: cfg.Data.Dir, Debug: debug})
	cleanup := func() {
		if cleanupLog != nil {
			_ = cleanupLog()
		}
	}

	paths, warnings := wpkit.ResolveStorePaths(cfg.Data.Dir)
	for _, w := range warnings {
		logger.L().Warn(w)
	}

	store, err := paths.Store(wpkit.Engine(cfg.Data.Engine))
	if err != nil {
		cleanup()
		return nil, config.Config{}, nil, err
	}

	return wpkit.NewJar(store, wpkit.WithLogger(logger.L())), cfg, cleanup, nil
}

func newCookiesListCmd(debug *bool) *cobra.Command {
	var rawURL string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cookies matching a URL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			jar, cfg, cleanup, err := openJar(*debug)
			if err != nil {
				return err
			}
			defer cleanup()

			if rawURL == "" {
				rawURL = cfg.Site.URL
			}

			cookies, err := jar.Cookies(cmd.Context(), rawURL)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDOMAIN\tPATH\tSECURE\tENGINE")
			for _, c := range cookies {
				fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n", c.Name, c.Domain, c.Path, c.Secure, c.Source.Engine)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&rawURL, "url", "", "URL to match cookies against (defaults to the configured site URL)")
	return cmd
}

func newCookiesLogoutCmd(debug *bool) *cobra.Command {
	var (
		rawURL   string
		username string
	)

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove a user's session cookies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			jar, cfg, cleanup, err := openJar(*debug)
			if err != nil {
				return err
			}
			defer cleanup()

			if rawURL == "" {
				rawURL = cfg.Site.URL
			}
			if username == "" {
				username = cfg.Site.Username
			}
			if username == "" {
				return fmt.Errorf("no username given and none configured")
			}

			if err := jar.RemoveForUser(cmd.Context(), rawURL, username); err != nil {
				return err
			}
			fmt.Printf("Removed session cookies for %s\n", username)
			return nil
		},
	}
	cmd.Flags().StringVar(&rawURL, "url", "", "URL to match cookies against (defaults to the configured site URL)")
	cmd.Flags().StringVar(&username, "username", "", "username to log out (defaults to the configured username)")
	return cmd
}
