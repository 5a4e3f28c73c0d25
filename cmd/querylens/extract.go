package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

// extractCmd interprets a single query.
var extractCmd = &cobra.Command{
	Use:   "extract [query]",
	Short: "Extract a structured search intent from a query",
	Long: `Interprets a free-text dataset query and prints the structured intent
as JSON.

Example:
  querylens extract "show me files with Risk in the filename"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	extractor, _, err := buildExtractor()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	query := strings.Join(args, " ")
	result := extractor.ExtractIntent(ctx, query)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
