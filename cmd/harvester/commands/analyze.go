package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/qepting91/complaint-harvester/internal/analysis"
	"github.com/qepting91/complaint-harvester/internal/llm"
	"github.com/qepting91/complaint-harvester/internal/loader"
	"github.com/spf13/cobra"
)

var (
	analyzeInput    *string
	analyzeGoal     *string
	analyzeOutput   *string
	analyzeMarkdown *string
	analyzePDF      *string
)

func init() {
	analyzeInput = analyzeCmd.Flags().String("input", "data.json", "Harvested JSON file.")
	analyzeGoal = analyzeCmd.Flags().String("goal", "Müşteri memnuniyetini artırmak", "Company goal quoted in the report.")
	analyzeOutput = analyzeCmd.Flags().String("output", "report.json", "Report JSON output path.")
	analyzeMarkdown = analyzeCmd.Flags().String("markdown", "report.md", "Report markdown output path.")
	analyzePDF = analyzeCmd.Flags().String("pdf", "", "Also render the report to this PDF file.")
	rootCmd.AddCommand(analyzeCmd)
}

func newGenerator() llm.Generator {
	var gens []llm.Generator
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		gens = append(gens, llm.NewOpenAI(os.Getenv("OPENAI_BASE_URL"), key, os.Getenv("OPENAI_MODEL")))
	} else {
		slog.Warn("OpenAI API key not configured")
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		gens = append(gens, llm.NewGemini(os.Getenv("GEMINI_BASE_URL"), key, os.Getenv("GEMINI_MODEL")))
	} else {
		slog.Warn("Gemini API key not configured")
	}
	return llm.NewFallback(slog.Default(), gens...)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze --input <harvest.json> [--goal <text>]",
	Short: "Scores sentiment, labels topics and writes a brand report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loader.LoadScraped(*analyzeInput, time.Now())
		if err != nil {
			return err
		}

		gen := newGenerator()
		pipeline := analysis.NewPipeline(
			analysis.NewHFScorer(os.Getenv("HF_BASE_URL"), os.Getenv("HF_API_TOKEN"), os.Getenv("SENTIMENT_MODEL")),
			analysis.NewTopicLabeler(gen),
			analysis.NewReporter(gen),
			slog.Default(),
		)

		report, runErr := pipeline.Run(cmd.Context(), ds, *analyzeGoal)
		if runErr != nil && !errors.Is(runErr, analysis.ErrReportGeneration) {
			return runErr
		}

		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(*analyzeOutput, out, 0o644); err != nil {
			return err
		}
		slog.Info("Output saved", "path", *analyzeOutput)

		if report.ReportMarkdown == "" {
			slog.Warn("No markdown report content generated")
			return runErr
		}
		if err := os.WriteFile(*analyzeMarkdown, []byte(report.ReportMarkdown), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report saved to %s\n", *analyzeMarkdown)

		if *analyzePDF != "" {
			if err := writePDF(*analyzePDF, report); err != nil {
				return fmt.Errorf("pdf export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "PDF saved to %s\n", *analyzePDF)
		}
		return nil
	},
}

func writePDF(path string, report analysis.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := analysis.WritePDF(f, report); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
