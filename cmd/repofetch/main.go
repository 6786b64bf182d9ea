// Package main implements the repofetch CLI for fetching a single
// repository into a local directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NicabarNimble/go-repofetch/internal/config"
	"github.com/NicabarNimble/go-repofetch/internal/fetch"
	"github.com/NicabarNimble/go-repofetch/internal/host"
	"github.com/NicabarNimble/go-repofetch/internal/logging"
	"github.com/NicabarNimble/go-repofetch/internal/token"
)

var (
	hostType    string
	accessToken string
	configPath  string
	logFormat   string
	verbose     bool
	// fetchFunc allows for mocking in tests
	fetchFunc = fetch.Fetch
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "repofetch [repo-url] [local-path]",
		Short: "Fetch a repository into a local directory",
		Long: `Ensures a shallow clone of a repository exists at a local path,
reusing the destination if it is already populated. An access token can be
supplied for private repositories; token material never appears in errors
or log output.

Example usage:
  repofetch https://code.example.com/org/repo.git ./repo
  repofetch https://code.example.com/org/repo.git ./repo --token account:private-token`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], args[1])
		},
	}

	rootCmd.Flags().StringVar(&hostType, "host", "", "Repository host type (default from config)")
	// Token flag is optional; GIT_TOKEN_<HOST> is consulted when unset
	rootCmd.Flags().StringVar(&accessToken, "token", "", "Access token for private repositories (optional)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a config file")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "", "Log format: pretty or json")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func run(cmd *cobra.Command, repoURL, localPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	h := cfg.Host
	if hostType != "" {
		h = hostType
	}
	format := cfg.Log.Format
	if logFormat != "" {
		format = logFormat
	}

	logger := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		Format:  format,
		Verbose: verbose,
	})

	tok := accessToken
	if tok == "" {
		if v, ok := token.FromEnv(h); ok {
			tok = v
		}
	}

	result, err := fetchFunc(fetch.Options{
		RepoURL:     repoURL,
		LocalPath:   localPath,
		Host:        host.Type(h),
		AccessToken: tok,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("fetch operation failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
