// Package commands implements the CLI command structure using Cobra.
package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vireo-ai/vireo-go/cli/config"
	"github.com/vireo-ai/vireo-go/cli/keystore"
	"github.com/vireo-ai/vireo-go/vireo"
)

var (
	// Global flags
	cfgFile    string
	model      string
	baseURL    string
	jsonOutput bool
	verbose    bool

	// Loaded configuration
	cfg *config.Config
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "vireo",
	Short: "Vireo - generative AI platform CLI",
	Long: `Vireo is a command-line interface for OpenAI-compatible platforms.

Use Vireo to manage API keys, chat with models, and work with files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.vireo/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&model, "model", "", "model ID (e.g. gpt-4o)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL override")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

// initConfig reads in config file and sets defaults. A local .env file is
// loaded first so VIREO_API_KEY can live alongside a project checkout.
func initConfig() error {
	_ = godotenv.Load()

	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	var err error
	cfg, err = config.LoadConfig(path)
	if err != nil {
		return err
	}

	// Apply config defaults if flags not set
	if model == "" && cfg.DefaultModel != "" {
		model = cfg.DefaultModel
	}
	if baseURL == "" && cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}

	return nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return cfg
}

// GetModel returns the effective model ID (flag or config default).
func GetModel() string {
	return model
}

// GetBaseURL returns the effective base URL (flag or config default).
func GetBaseURL() string {
	return baseURL
}

// IsJSONOutput returns true if JSON output is enabled.
func IsJSONOutput() bool {
	return jsonOutput
}

// IsVerbose returns true if verbose output is enabled.
func IsVerbose() bool {
	return verbose
}

// resolveAPIKey finds the API key: environment first, then the keystore
// entry named by the config (default entry name "default").
func resolveAPIKey() (string, error) {
	if key := os.Getenv(vireo.DefaultAPIKeyEnvVar); key != "" {
		return key, nil
	}
	if key := os.Getenv(vireo.FallbackAPIKeyEnvVar); key != "" {
		return key, nil
	}

	ks, err := keystore.NewKeystore()
	if err != nil {
		return "", fmt.Errorf("failed to open keystore: %w", err)
	}

	ref := "default"
	if cfg != nil && cfg.APIKeyRef != "" {
		ref = cfg.APIKeyRef
	}

	key, err := ks.Get(ref)
	if err != nil {
		if _, ok := err.(*keystore.ErrKeyNotFound); ok {
			return "", fmt.Errorf("no API key found: set %s or run 'vireo keys set %s'", vireo.DefaultAPIKeyEnvVar, ref)
		}
		return "", fmt.Errorf("failed to get API key: %w", err)
	}
	return key, nil
}

// newClient builds an API client from the resolved key and global flags.
func newClient() (*vireo.Client, error) {
	apiKey, err := resolveAPIKey()
	if err != nil {
		return nil, err
	}

	var opts []vireo.Option
	if u := GetBaseURL(); u != "" {
		opts = append(opts, vireo.WithBaseURL(u))
	}
	if cfg != nil {
		if cfg.OrgID != "" {
			opts = append(opts, vireo.WithOrgID(cfg.OrgID))
		}
		if cfg.ProjectID != "" {
			opts = append(opts, vireo.WithProjectID(cfg.ProjectID))
		}
	}
	if IsVerbose() {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		opts = append(opts, vireo.WithLogger(logger))
	}

	return vireo.New(apiKey, opts...), nil
}
