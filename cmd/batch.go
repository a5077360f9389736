package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/ats-matcher/internal/ai"
	"github.com/spigell/ats-matcher/internal/ats"
	"github.com/spigell/ats-matcher/internal/batch"
	"github.com/spigell/ats-matcher/internal/filtering"
	"github.com/spigell/ats-matcher/internal/logger"
)

const jdPreviewLength = 80

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a CV against every job listed in the config file, best match first",
	PreRun: func(cmd *cobra.Command, _ []string) {
		viper.BindPFlag("requirements.extract", cmd.Flags().Lookup("extract-requirements"))
	},
	Run: func(cmd *cobra.Command, _ []string) {
		runBatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().String("cv", "", "path to the CV as plain text")
	batchCmd.Flags().StringP("format", "o", formatText, "output format: text or json")
	batchCmd.Flags().Bool("no-semantic", false, "skip semantic scoring even when an embedding backend is configured")
	batchCmd.Flags().Float64("min-score", 0, "drop jobs scoring below this value")
	batchCmd.Flags().StringP("exclude-file", "e", "", "file with job names to skip, one per line. Default is unset.")
	batchCmd.Flags().Int("concurrency", batch.DefaultConcurrency, "number of jobs scored at once")
	batchCmd.Flags().Bool("extract-requirements", false, "ask Gemini for structured requirements of jobs without a requirements file")

	batchCmd.MarkFlagRequired("cv")

	viper.BindPFlag("batch.min-score", batchCmd.Flags().Lookup("min-score"))
	viper.BindPFlag("batch.exclude-file", batchCmd.Flags().Lookup("exclude-file"))
	viper.BindPFlag("batch.concurrency", batchCmd.Flags().Lookup("concurrency"))
}

func runBatch(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	if viper.ConfigFileUsed() == "" {
		logger.Fatal("config file is required for batch", zap.String("hint", "create ats-matcher.yaml or pass --config"))
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	format, _ := cmd.Flags().GetString("format")
	if format != formatText && format != formatJSON {
		logger.Fatal("unsupported output format", zap.String("format", format))
	}

	cvPath, _ := cmd.Flags().GetString("cv")
	cv, err := readText(cvPath)
	if err != nil {
		logger.Fatal("reading cv", zap.Error(err))
	}

	jobs, err := loadJobs(ctx, config.Batch.Jobs, newRequirementsExtractor(ctx, config, logger), logger)
	if err != nil {
		logger.Fatal("loading jobs", zap.Error(err))
	}
	if len(jobs) == 0 {
		logger.Info("exiting", zap.String("reason", "no jobs configured under batch.jobs"))
		return
	}

	if noSemantic, _ := cmd.Flags().GetBool("no-semantic"); noSemantic {
		config.Embedding.Enabled = false
	}

	backend, err := newEmbeddingBackend(ctx, config.Embedding, logger)
	if err != nil {
		logger.Fatal("configuring embeddings", zap.Error(err))
	}
	defer backend.Close()

	logger.Info("starting the batch", zap.Int("jobs", len(jobs)), zap.String("version", version))

	results, err := batch.Run(ctx, cv, jobs, batch.Options{
		Concurrency: config.Batch.Concurrency,
		NewOptimizer: func() (*ats.Optimizer, error) {
			return ats.New(ats.WithSemantic(backend.scorer()), ats.WithLogger(logger))
		},
		Logger: logger,
	})
	if err != nil {
		logger.Fatal("scoring jobs", zap.Error(err))
	}

	steps := filtering.Default()
	filtered, err := filtering.Run(ctx, &filtering.Config{
		MinScore:    config.Batch.MinScore,
		ExcludeFile: config.Batch.ExcludeFile,
		MaxYearsGap: config.Batch.MaxYearsGap,
	}, filtering.Deps{Logger: logger}, steps, filtering.NewResults(results))
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	for _, status := range filtering.Describe(steps) {
		logger.Debug("filter status",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	if filtered.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no jobs left after filters"))
		return
	}

	if err := writeResults(os.Stdout, filtered.Items, format); err != nil {
		logger.Fatal("writing results", zap.Error(err))
	}
}

// loadJobs reads the job files. With an extractor, jobs without a
// requirements file get extracted requirements; extraction failures only
// cost the job its structured requirements.
func loadJobs(ctx context.Context, configs []JobConfig, extractor ai.RequirementsExtractor, l *zap.Logger) ([]batch.Job, error) {
	jobs := make([]batch.Job, 0, len(configs))
	for _, c := range configs {
		jd, err := readText(c.JDFile)
		if err != nil {
			return nil, fmt.Errorf("job %q: %w", c.Name, err)
		}

		var requirements string
		if strings.TrimSpace(c.RequirementsFile) != "" {
			if requirements, err = readText(c.RequirementsFile); err != nil {
				return nil, fmt.Errorf("job %q: %w", c.Name, err)
			}
		}

		if requirements == "" && extractor != nil {
			if requirements, err = extractor.ExtractRequirements(ctx, jd); err != nil {
				l.Warn("extracting requirements", zap.String("job", c.Name), zap.Error(err))
				requirements = ""
			}
		}

		l.Debug("job loaded",
			zap.String("job", c.Name),
			zap.String("jd_preview", logger.TruncateForLog(jd, jdPreviewLength)),
			zap.Bool("requirements", requirements != ""),
		)
		jobs = append(jobs, batch.Job{Name: c.Name, JD: jd, Requirements: requirements})
	}
	return jobs, nil
}

func writeResults(w io.Writer, results []batch.Result, format string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "rank\tscore\tverdict\tjob\tmissing")
	for i, r := range results {
		var missing []string
		if r.Report != nil {
			missing = r.Report.MissingKeywords[:min(3, len(r.Report.MissingKeywords))]
		}
		fmt.Fprintf(tw, "%d\t%.1f\t%s\t%s\t%s\n",
			i+1, r.Score(), ats.Recommendation(r.Score()), r.Job.Name, strings.Join(missing, ", "))
	}
	return tw.Flush()
}
