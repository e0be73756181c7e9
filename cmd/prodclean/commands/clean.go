package commands

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/prodclean/internal/jsonl"
	"github.com/jmylchreest/prodclean/internal/logger"
	"github.com/jmylchreest/prodclean/internal/output"
	"github.com/jmylchreest/prodclean/internal/runner"
	"github.com/jmylchreest/prodclean/pkg/clean"
)

// statsFile is the optional statistics sidecar, a single JSON object with
// the output document count.
type statsFile struct {
	Count int `json:"count"`
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Join metadata with labels and clean the text",
	Long: `Clean reads a product metadata JSON Lines file and an attribute label
JSON Lines file, joins them by product identifier, and emits one cleaned
document per distinct identifier.

Records without a matching label, paragraphs classified as markup or CSS
noise, and documents without a surviving title are dropped; drop reasons
are tallied and logged at completion.

Examples:
  # Clean to stdout
  prodclean clean --metadata metadata.jsonl --labels labels.jsonl

  # Clean to a file with a stats sidecar
  prodclean clean --metadata metadata.jsonl --labels labels.jsonl \
      -o clean.jsonl --stats clean-stats.json`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()

	// Inputs
	flags.String("metadata", "", "product metadata JSON Lines file (required)")
	flags.String("labels", "", "attribute labels JSON Lines file (required)")

	// Output settings
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "jsonl", "output format: json, jsonl, yaml")
	flags.String("stats", "", "write a JSON statistics file with the output document count")

	// Execution settings
	flags.IntP("concurrency", "c", runner.DefaultConfig().Concurrency, "records processed in parallel")

	_ = cleanCmd.MarkFlagRequired("metadata")
	_ = cleanCmd.MarkFlagRequired("labels")
}

func runClean(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		JSON:  viper.GetBool("log_json"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	metadataPath, _ := cmd.Flags().GetString("metadata")
	labelsPath, _ := cmd.Flags().GetString("labels")

	logger.Debug("loading labels", "path", labelsPath)
	labels, err := jsonl.ReadFile[clean.LabelRecord](labelsPath)
	if err != nil {
		logger.Error("failed to read labels", "error", err)
		return err
	}

	logger.Debug("loading metadata", "path", metadataPath)
	raws, err := jsonl.ReadFile[clean.RawRecord](metadataPath)
	if err != nil {
		logger.Error("failed to read metadata", "error", err)
		return err
	}

	logger.Info("inputs loaded",
		"records", humanize.Comma(int64(len(raws))),
		"labels", humanize.Comma(int64(len(labels))))

	concurrency, _ := cmd.Flags().GetInt("concurrency")
	counters := clean.NewCounters()
	r, err := runner.New(runner.Config{Concurrency: concurrency}, counters)
	if err != nil {
		logger.Error("failed to create runner", "error", err)
		return err
	}

	docs, err := r.Run(ctx, raws, labels)
	if err != nil {
		logger.Error("pipeline failed", "error", err)
		return err
	}

	if err := writeDocuments(cmd, docs); err != nil {
		logger.Error("failed to write output", "error", err)
		return err
	}

	if statsPath, _ := cmd.Flags().GetString("stats"); statsPath != "" {
		if err := writeStats(statsPath, len(docs)); err != nil {
			logger.Error("failed to write stats", "error", err)
			return err
		}
	}

	for name, value := range counters.Snapshot() {
		logger.Debug("counter", "name", name, "value", value)
	}
	logger.Info("clean complete", "documents", humanize.Comma(int64(len(docs))))
	return nil
}

// writeDocuments serializes the documents to the configured destination.
func writeDocuments(cmd *cobra.Command, docs []clean.Document) error {
	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	var dst io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		dst = f
	}

	writer, err := output.NewWriter(dst, output.Format(format))
	if err != nil {
		return err
	}

	for _, doc := range docs {
		if err := writer.Write(doc); err != nil {
			return err
		}
	}
	return writer.Close()
}

// writeStats writes the statistics sidecar file.
func writeStats(path string, count int) error {
	data, err := json.MarshalIndent(statsFile{Count: count}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
