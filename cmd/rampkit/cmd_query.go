package main

import (
	"encoding/json"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/petrichorlabs/rampkit/artifact"
	"github.com/petrichorlabs/rampkit/tools"
)

var queryFile string

var queryCmd = &cobra.Command{
	Use:   "query --file <path> [question]",
	Short: "Query a file's text through the storage driver",
	Long: `Load a file, store its text as a record, and run a question against it
through the TextManager adapter. When the question is omitted, it is
prompted for interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize --file <path>",
	Short: "Summarize a file's text through the storage driver",
	Args:  cobra.NoArgs,
	RunE:  runSummarize,
}

func init() {
	queryCmd.Flags().StringVarP(&queryFile, "file", "f", "", "file to load into storage (relative to the workdir)")
	_ = queryCmd.MarkFlagRequired("file")
	summarizeCmd.Flags().StringVarP(&queryFile, "file", "f", "", "file to load into storage (relative to the workdir)")
	_ = summarizeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(summarizeCmd)
}

// loadRecord loads the flagged file via the FileManager and stores its text
// as a record, returning the key and the ramp.
func loadRecord(cmd *cobra.Command) (*tools.TextManager, string, error) {
	fm, cfg, err := newFileManager()
	if err != nil {
		return nil, "", err
	}
	tm, driver, err := newTextManager(cfg)
	if err != nil {
		return nil, "", err
	}

	input, err := json.Marshal(tools.LoadFilesInput{Paths: []string{queryFile}})
	if err != nil {
		return nil, "", err
	}
	res := fm.LoadFilesFromDisk(cmd.Context(), input)
	list, ok := res.(artifact.List)
	if !ok || len(list.Values) != 1 {
		return nil, "", fmt.Errorf("%s", res.ToText())
	}

	key, err := driver.Save(list.Values[0].ToText())
	if err != nil {
		return nil, "", fmt.Errorf("store record: %w", err)
	}
	return tm, key, nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	question := ""
	if len(args) == 1 {
		question = args[0]
	} else {
		prompt := &survey.Input{Message: "Question to run against the record:"}
		if err := survey.AskOne(prompt, &question, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	tm, key, err := loadRecord(cmd)
	if err != nil {
		return err
	}
	input, err := json.Marshal(tools.QueryRecordInput{ID: key, Query: question})
	if err != nil {
		return err
	}
	return printArtifact(tm.QueryRecord(cmd.Context(), input))
}

func runSummarize(cmd *cobra.Command, args []string) error {
	tm, key, err := loadRecord(cmd)
	if err != nil {
		return err
	}
	input, err := json.Marshal(tools.SummarizeRecordInput{ID: key})
	if err != nil {
		return err
	}
	return printArtifact(tm.SummarizeRecord(cmd.Context(), input))
}
