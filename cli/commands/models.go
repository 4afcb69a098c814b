package commands

import (
	"context"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available models",
	Long:  `List the models available to the configured API key.`,
	RunE:  runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}

	models, err := client.ListModels(context.Background())
	if err != nil {
		return handleChatError(err)
	}

	if IsJSONOutput() {
		return outputJSON(models)
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"ID", "Owned By", "Created"})
	for _, m := range models {
		t.AppendRow(table.Row{m.ID, m.OwnedBy, m.Created.String()})
	}
	t.Render()

	return nil
}
