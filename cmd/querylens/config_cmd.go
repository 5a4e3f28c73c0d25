package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the effective configuration",
}

// configShowCmd prints the merged config with secrets redacted.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration (API keys redacted)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		redacted := *cfg
		redacted.AnthropicAPIKey = redactKey(redacted.AnthropicAPIKey)
		redacted.OpenAIAPIKey = redactKey(redacted.OpenAIAPIKey)

		out, err := json.MarshalIndent(redacted, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))

		if providerName, _, err := cfg.ActiveProvider(); err == nil {
			fmt.Fprintf(os.Stdout, "active provider: %s\n", providerName)
		} else {
			fmt.Fprintf(os.Stdout, "active provider: none (%v)\n", err)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func redactKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + "..." + key[len(key)-4:]
}
