package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/ats-matcher/internal/ats"
	"github.com/spigell/ats-matcher/internal/logger"
)

const (
	PromptSuggestions = "Show suggestions"
	PromptGaps        = "Show gaps"
	PromptDump        = "Dump report to file"
	PromptExit        = "Exit"

	formatText = "text"
	formatJSON = "json"
)

var errExit = errors.New("exit requested")

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a CV against a single job description",
	// Both score and batch carry --extract-requirements; bind the one in use.
	PreRun: func(cmd *cobra.Command, _ []string) {
		viper.BindPFlag("requirements.extract", cmd.Flags().Lookup("extract-requirements"))
	},
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().String("cv", "", "path to the CV as plain text")
	scoreCmd.Flags().String("jd", "", "path to the job description as plain text")
	scoreCmd.Flags().StringP("requirements", "r", "", "path to structured requirements (HARD SKILLS:, REQUIRED:, ... lines)")
	scoreCmd.Flags().String("company", "", "employer name to exclude from keywords. Detected from the job description when unset.")
	scoreCmd.Flags().StringP("format", "o", formatText, "output format: text or json")
	scoreCmd.Flags().BoolP("interactive", "i", false, "explore the report interactively after scoring")
	scoreCmd.Flags().Bool("no-semantic", false, "skip semantic scoring even when an embedding backend is configured")
	scoreCmd.Flags().Bool("extract-requirements", false, "ask Gemini for structured requirements when --requirements is not given")

	scoreCmd.MarkFlagRequired("cv")
	scoreCmd.MarkFlagRequired("jd")

	viper.BindPFlag("company", scoreCmd.Flags().Lookup("company"))
}

func score(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	format, _ := cmd.Flags().GetString("format")
	if format != formatText && format != formatJSON {
		logger.Fatal("unsupported output format", zap.String("format", format))
	}

	cvPath, _ := cmd.Flags().GetString("cv")
	jdPath, _ := cmd.Flags().GetString("jd")
	reqPath, _ := cmd.Flags().GetString("requirements")

	cv, err := readText(cvPath)
	if err != nil {
		logger.Fatal("reading cv", zap.Error(err))
	}
	jd, err := readText(jdPath)
	if err != nil {
		logger.Fatal("reading job description", zap.Error(err))
	}
	var requirements string
	if reqPath != "" {
		if requirements, err = readText(reqPath); err != nil {
			logger.Fatal("reading requirements", zap.Error(err))
		}
	}

	if requirements == "" {
		if extractor := newRequirementsExtractor(ctx, config, logger); extractor != nil {
			requirements, err = extractor.ExtractRequirements(ctx, jd)
			if err != nil {
				logger.Warn("extracting requirements, scoring without them", zap.Error(err))
				requirements = ""
			}
		}
	}

	if noSemantic, _ := cmd.Flags().GetBool("no-semantic"); noSemantic {
		config.Embedding.Enabled = false
	}

	backend, err := newEmbeddingBackend(ctx, config.Embedding, logger)
	if err != nil {
		logger.Fatal("configuring embeddings", zap.Error(err))
	}
	defer backend.Close()

	optimizer, err := ats.New(
		ats.WithSemantic(backend.scorer()),
		ats.WithCompany(config.Company),
		ats.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal("creating optimizer", zap.Error(err))
	}

	logger.Info("scoring cv", zap.String("cv", cvPath), zap.String("jd", jdPath), zap.String("version", version))
	report := optimizer.Score(ctx, cv, jd, requirements)

	if err := writeReport(os.Stdout, report, format); err != nil {
		logger.Fatal("writing report", zap.Error(err))
	}

	if interactive, _ := cmd.Flags().GetBool("interactive"); !interactive {
		return
	}

	prompt := promptui.Select{
		Label: "Next?",
		Items: []string{PromptSuggestions, PromptGaps, PromptDump, PromptExit},
	}
	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, report); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, report *ats.Report) error {
	switch action {
	case PromptSuggestions:
		printSuggestions(os.Stdout, report.Gaps.Suggestions)
		return nil
	case PromptGaps:
		printGaps(os.Stdout, report.Gaps)
		return nil
	case PromptDump:
		filename, err := dumpToTmpFile(report)
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		logger.Info("dumping report to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func writeReport(w io.Writer, report *ats.Report, format string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return ats.Render(w, report)
}

func printSuggestions(w io.Writer, suggestions []ats.Suggestion) {
	if len(suggestions) == 0 {
		fmt.Fprintln(w, "No suggestions: every tracked keyword is covered.")
		return
	}
	for i, s := range suggestions {
		fmt.Fprintf(w, "%2d. %-20s %-11s -> %s (similarity %.1f)\n",
			i+1, s.Skill, s.Priority, s.RecommendedSection.Title(), s.SectionScore)
	}
}

func printGaps(w io.Writer, g ats.GapAnalysis) {
	lines := []struct {
		label string
		items []string
	}{
		{"Missing critical keywords", g.MissingCritical},
		{"Missing required skills", g.MissingRequired},
		{"Weak evidence", g.WeakEvidenceSkills},
		{"Missing concepts", g.SemanticGaps},
	}
	for _, l := range lines {
		if len(l.items) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", l.label, strings.Join(l.items, ", "))
	}
	if g.Experience.JDYears != nil {
		fmt.Fprintf(w, "Experience gap: %d years\n", g.Experience.Gap)
	}
}

func dumpToTmpFile(v any) (string, error) {
	file, err := os.CreateTemp("", fmt.Sprintf("ats_report_%s_*.json", uuid.NewString()))
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
