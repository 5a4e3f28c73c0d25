package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// fieldsCmd prints the known metadata field names.
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the known metadata field names",
	Long: `Prints the metadata field names offered to the model as filter targets.
These come from the configured fields file, or from the built-in defaults
when none is configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		registry, err := loadRegistry(cfg)
		if err != nil {
			return err
		}
		for _, name := range registry.Names() {
			fmt.Fprintln(os.Stdout, name)
		}
		return nil
	},
}
