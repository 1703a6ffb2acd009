package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/petrichorlabs/rampkit/artifact"
	"github.com/petrichorlabs/rampkit/internal/config"
	"github.com/petrichorlabs/rampkit/internal/llm"
	"github.com/petrichorlabs/rampkit/internal/storage"
	"github.com/petrichorlabs/rampkit/memory"
	"github.com/petrichorlabs/rampkit/tools"
)

const version = "0.2.0"

// cliMemoryName is the registry name the CLI binds its file-backed store to.
const cliMemoryName = "scratch"

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "rampkit",
	Short: "File and text-storage tool adapters for LLM agents",
	Long: `rampkit exercises the FileManager and TextManager adapters from the
command line: load and save files under a configured work directory, and
query or summarize text records through the storage driver.

Configuration comes from rampkit.yaml (or --config) with RAMP_* environment
overrides.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rampkit %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to a rampkit config file")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newFileManager builds the FileManager from config with the CLI memory
// registered.
func newFileManager() (*tools.FileManager, config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, config.Config{}, err
	}
	if !filepath.IsAbs(cfg.Workdir) {
		abs, err := filepath.Abs(cfg.Workdir)
		if err != nil {
			return nil, config.Config{}, fmt.Errorf("resolve workdir: %w", err)
		}
		cfg.Workdir = abs
	}

	reg := memory.NewRegistry()
	reg.Register(cliMemoryName, memory.NewFileStore(cfg.MemoryFile))

	fm, err := tools.NewFileManager(cfg.Workdir, reg)
	if err != nil {
		return nil, config.Config{}, err
	}
	return fm, cfg, nil
}

// newTextManager builds the TextManager over the in-memory driver with an
// Anthropic completer.
func newTextManager(cfg config.Config) (*tools.TextManager, *storage.MemoryDriver, error) {
	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		return nil, nil, fmt.Errorf("missing ANTHROPIC_API_KEY; export it before running")
	}
	driver := storage.NewMemoryDriver(llm.NewAnthropic(cfg.Model, cfg.MaxTokens))
	return tools.NewTextManager(cfg.StorageName, driver), driver, nil
}

// printArtifact renders an activity result; Error artifacts become command
// errors so the exit code reflects the failure.
func printArtifact(a artifact.Artifact) error {
	switch v := a.(type) {
	case artifact.Error:
		return fmt.Errorf("%s", v.Message)
	case artifact.Info:
		color.New(color.FgGreen).Println(v.Value)
	case artifact.List:
		for _, nested := range v.Values {
			if err := printArtifact(nested); err != nil {
				return err
			}
		}
	default:
		fmt.Println(a.ToText())
	}
	return nil
}
