package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"querylens/internal/fields"
	"querylens/internal/intent"
	"querylens/internal/logging"
)

var batchConcurrency int

// batchCmd interprets many queries from a file, one per line.
var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Extract intents for a file of queries, one per line",
	Long: `Reads queries from a file (one per line, blank lines and #-comments
skipped) and prints one JSON intent per line, in input order. Extractions
run concurrently up to --concurrency.

While a batch is running, changes to the configured fields file are picked
up by later extractions.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "maximum concurrent extractions")
}

func runBatch(cmd *cobra.Command, args []string) error {
	extractor, registry, err := buildExtractor()
	if err != nil {
		return err
	}

	queries, err := readQueries(args[0])
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		return fmt.Errorf("no queries in %s", args[0])
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Hot-reload the metadata fields while the batch runs.
	if registry.Path() != "" {
		watcher, err := fields.NewWatcher(registry)
		if err != nil {
			logging.Get(logging.CategoryCLI).Warn("fields watcher unavailable", zap.Error(err))
		} else {
			if err := watcher.Start(ctx); err != nil {
				logging.Get(logging.CategoryCLI).Warn("fields watcher failed to start", zap.Error(err))
			} else {
				defer watcher.Stop()
			}
		}
	}

	results := make([]intent.QueryIntent, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			results[i] = extractor.ExtractIntent(gctx, q)
			return nil
		})
	}
	// Extraction never fails, so the only group error is ctx cancellation.
	if err := g.Wait(); err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

func readQueries(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var queries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	return queries, scanner.Err()
}
