package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/petrichorlabs/rampkit/tools"
)

var saveFromStdin bool

var saveCmd = &cobra.Command{
	Use:   "save <path> [content]",
	Short: "Save content to a file under the work directory",
	Long: `Save content through the FileManager adapter. Content comes from the
second argument, or from stdin with --stdin. Parent directories are created
automatically.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSave,
}

var saveMemoryCmd = &cobra.Command{
	Use:   "save-memory <namespace> <dir> <file>",
	Short: "Save memory artifacts to disk",
	Long:  `Write every artifact stored under a namespace of the CLI memory to disk.`,
	Args:  cobra.ExactArgs(3),
	RunE:  runSaveMemory,
}

func init() {
	saveCmd.Flags().BoolVar(&saveFromStdin, "stdin", false, "read content from stdin")
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(saveMemoryCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	var content string
	switch {
	case saveFromStdin:
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		content = string(b)
	case len(args) == 2:
		content = args[1]
	default:
		return fmt.Errorf("provide content as an argument or use --stdin")
	}

	fm, _, err := newFileManager()
	if err != nil {
		return err
	}
	input, err := json.Marshal(tools.SaveContentInput{Path: args[0], Content: content})
	if err != nil {
		return err
	}
	return printArtifact(fm.SaveContentToFile(cmd.Context(), input))
}

func runSaveMemory(cmd *cobra.Command, args []string) error {
	fm, _, err := newFileManager()
	if err != nil {
		return err
	}
	input, err := json.Marshal(tools.SaveMemoryArtifactsInput{
		ArtifactNamespace: args[0],
		DirName:           args[1],
		FileName:          args[2],
		MemoryName:        cliMemoryName,
	})
	if err != nil {
		return err
	}
	return printArtifact(fm.SaveMemoryArtifactsToDisk(cmd.Context(), input))
}
