package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/petrichorlabs/rampkit/artifact"
	"github.com/petrichorlabs/rampkit/tools"
)

var loadCmd = &cobra.Command{
	Use:   "load <path>...",
	Short: "Load files from the work directory",
	Long:  `Load one or more files through the FileManager adapter and print their contents.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	fm, _, err := newFileManager()
	if err != nil {
		return err
	}

	input, err := json.Marshal(tools.LoadFilesInput{Paths: args})
	if err != nil {
		return err
	}
	res := fm.LoadFilesFromDisk(cmd.Context(), input)

	list, ok := res.(artifact.List)
	if !ok {
		return printArtifact(res)
	}
	header := color.New(color.FgCyan, color.Bold)
	for _, a := range list.Values {
		if txt, ok := a.(artifact.Text); ok && txt.Name != "" {
			header.Printf("--- %s ---\n", txt.Name)
		}
		fmt.Println(a.ToText())
	}
	return nil
}
