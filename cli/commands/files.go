package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/vireo-ai/vireo-go/vireo"
)

var filePurpose string

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Manage uploaded files",
	Long:  `List, upload, and delete files stored on the platform.`,
}

var filesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded files",
	RunE:  runFilesList,
}

var filesUploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Upload a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilesUpload,
}

var filesDeleteCmd = &cobra.Command{
	Use:   "delete <file-id>",
	Short: "Delete an uploaded file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilesDelete,
}

func init() {
	rootCmd.AddCommand(filesCmd)
	filesCmd.AddCommand(filesListCmd)
	filesCmd.AddCommand(filesUploadCmd)
	filesCmd.AddCommand(filesDeleteCmd)

	filesListCmd.Flags().StringVar(&filePurpose, "purpose", "", "Filter by purpose")
	filesUploadCmd.Flags().StringVar(&filePurpose, "purpose", "assistants", "File purpose")
}

func runFilesList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}

	var params *vireo.FileListParams
	if filePurpose != "" {
		p := vireo.FilePurpose(filePurpose)
		params = &vireo.FileListParams{Purpose: &p}
	}

	files, err := client.ListFiles(context.Background(), params)
	if err != nil {
		return handleChatError(err)
	}

	if IsJSONOutput() {
		return outputJSON(files.Data)
	}

	if len(files.Data) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No files uploaded.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"ID", "Filename", "Purpose", "Bytes", "Created"})
	for _, f := range files.Data {
		t.AppendRow(table.Row{f.ID, f.Filename, f.Purpose, f.Bytes, f.CreatedAt.String()})
	}
	t.Render()

	return nil
}

func runFilesUpload(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return exitWithCode(ExitValidation, fmt.Errorf("failed to open %s: %w", path, err))
	}
	defer f.Close()

	client, err := newClient()
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}

	uploaded, err := client.UploadFile(context.Background(), &vireo.FileUploadRequest{
		File:     f,
		Filename: filepath.Base(path),
		Purpose:  vireo.FilePurpose(filePurpose),
	})
	if err != nil {
		return handleChatError(err)
	}

	if IsJSONOutput() {
		return outputJSON(uploaded)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s (%d bytes) as %s\n", uploaded.Filename, uploaded.Bytes, uploaded.ID)
	return nil
}

func runFilesDelete(cmd *cobra.Command, args []string) error {
	fileID := args[0]

	client, err := newClient()
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}

	resp, err := client.DeleteFile(context.Background(), fileID)
	if err != nil {
		return handleChatError(err)
	}

	if IsJSONOutput() {
		return outputJSON(resp)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", resp.ID)
	return nil
}
