package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vireo-ai/vireo-go/cli/config"
	"github.com/vireo-ai/vireo-go/cli/keystore"
)

var (
	initModel   string
	initBaseURL string
	initSkipKey bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize Vireo configuration",
	Long: `Initialize Vireo configuration.

Writes ~/.vireo/config.yaml with the chosen defaults and prompts for an
API key, which is stored encrypted in the keystore.

Example:
  vireo init --default-model gpt-4o`,
	RunE: runInitCmd,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initModel, "default-model", "", "Default model for chat requests")
	initCmd.Flags().StringVar(&initBaseURL, "api-base-url", "", "API base URL override")
	initCmd.Flags().BoolVar(&initSkipKey, "skip-key", false, "Do not prompt for an API key")
}

func runInitCmd(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	newCfg := &config.Config{
		DefaultModel: initModel,
		BaseURL:      initBaseURL,
		APIKeyRef:    "default",
	}

	if err := config.SaveConfig(path, newCfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)

	if initSkipKey {
		return nil
	}

	apiKey, err := promptKey("Enter API key (leave empty to skip): ")
	if err != nil {
		return err
	}
	if apiKey == "" {
		fmt.Println("No key entered; set one later with 'vireo keys set default'.")
		return nil
	}

	ks, err := keystore.NewKeystore()
	if err != nil {
		return fmt.Errorf("failed to open keystore: %w", err)
	}
	if err := ks.Set("default", apiKey); err != nil {
		return fmt.Errorf("failed to store key: %w", err)
	}

	fmt.Println("API key stored.")
	return nil
}
