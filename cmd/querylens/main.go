package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"querylens/internal/config"
	"querylens/internal/fields"
	"querylens/internal/intent"
	"querylens/internal/llm"
	"querylens/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string
	provider   string
	model      string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "querylens",
	Short: "querylens - query understanding for dataset search",
	Long: `querylens turns free-text dataset queries into structured search intents.

A query like "show me the content of Risk20140318.pdf" becomes a record
saying which indexes to search (dataset metadata, file metadata, file
content), which filters to apply, and how many files to return. The
interpretation comes from a text-generation model and is corrected by
deterministic heuristics; extraction never fails, it degrades to a safe
default intent.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return logging.Initialize(logging.Options{
			Debug:     verbose || cfg.Debug,
			Workspace: ".",
		})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: .querylens/config.json, then ~/.querylens/config.json)")
	rootCmd.PersistentFlags().StringVar(&provider, "provider", "", "model provider override (anthropic, openai)")
	rootCmd.PersistentFlags().StringVar(&model, "model", "", "model name override")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if provider != "" {
		cfg.Provider = provider
	}
	if model != "" {
		cfg.Model = model
	}
	return cfg, nil
}

// buildExtractor wires config, provider client, and field registry into an
// extractor. The returned registry is file-backed when the config names a
// fields file, otherwise it carries the default field set.
func buildExtractor() (*intent.Extractor, *fields.Registry, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	providerName, apiKey, err := cfg.ActiveProvider()
	if err != nil {
		return nil, nil, err
	}

	client, err := llm.New(llm.Provider(providerName), llm.Config{
		APIKey:    apiKey,
		BaseURL:   cfg.BaseURL,
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
		Timeout:   cfg.Timeout(),
	})
	if err != nil {
		return nil, nil, err
	}

	registry, err := loadRegistry(cfg)
	if err != nil {
		return nil, nil, err
	}

	return intent.NewExtractor(client, registry), registry, nil
}

func loadRegistry(cfg *config.Config) (*fields.Registry, error) {
	if cfg.FieldsFile == "" {
		return fields.NewRegistry(), nil
	}
	registry, err := fields.Load(cfg.FieldsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load fields file: %w", err)
	}
	return registry, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
