package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jiruejeta/resume-matcher/internal/extraction"
	"github.com/jiruejeta/resume-matcher/internal/fetch"
	"github.com/jiruejeta/resume-matcher/internal/matching"
	"github.com/jiruejeta/resume-matcher/internal/observability"
	"github.com/jiruejeta/resume-matcher/internal/schemas"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a directory of resumes against a job description",
	Long:  "Score every supported resume file in a directory against a job description taken from a text file or a posting URL, and print the ranked results.",
	RunE:  runScore,
}

var (
	scoreJobFile   string
	scoreJobURL    string
	scoreResumeDir string
	scoreTop       int
	scoreJSON      bool
	scoreBrowser   bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job-file", "j", "", "Path to text file containing the job description")
	scoreCmd.Flags().StringVarP(&scoreJobURL, "job-url", "u", "", "URL of a job posting to fetch")
	scoreCmd.Flags().StringVarP(&scoreResumeDir, "resume-dir", "r", "", "Directory of resume files to score (required)")
	scoreCmd.Flags().IntVar(&scoreTop, "top", 0, "Only show the top N resumes (0 shows all)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Emit results as JSON instead of formatted output")
	scoreCmd.Flags().BoolVar(&scoreBrowser, "browser", false, "Allow a headless browser fallback for SPA postings")

	scoreCmd.MarkFlagRequired("resume-dir")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	if scoreJobFile == "" && scoreJobURL == "" {
		return fmt.Errorf("either --job-file or --job-url must be provided")
	}
	if scoreJobFile != "" && scoreJobURL != "" {
		return fmt.Errorf("--job-file and --job-url are mutually exclusive; provide only one")
	}

	jobDescription, err := loadJobDescription(cmd)
	if err != nil {
		return err
	}

	paths, err := collectResumePaths(scoreResumeDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no supported resume files found in %s", scoreResumeDir)
	}

	resumes := extraction.ExtractAll(cmd.Context(), paths, extraction.DefaultConcurrency)
	results := matching.CombinedScores(jobDescription, resumes)

	ranked := append([]matching.ScoreResult(nil), results...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CombinedScore > ranked[j].CombinedScore
	})
	if scoreTop > 0 && scoreTop < len(ranked) {
		ranked = ranked[:scoreTop]
	}

	if scoreJSON {
		return emitJSON(ranked)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJobRequirements(matching.ParseJobRequirements(jobDescription))
	printer.PrintMatchResults(ranked)
	return nil
}

// loadJobDescription reads the job description from the file or URL flag.
func loadJobDescription(cmd *cobra.Command) (string, error) {
	if scoreJobFile != "" {
		content, err := os.ReadFile(scoreJobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return extraction.CleanText(string(content)), nil
	}

	opts := fetch.DefaultOptions()
	opts.UseBrowser = scoreBrowser
	result, err := fetch.Posting(cmd.Context(), scoreJobURL, opts)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return result.Text, nil
}

// collectResumePaths lists the supported resume files in dir, sorted by name
// so scoring order is stable across runs.
func collectResumePaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if extraction.Supported(path) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// emitJSON prints the results as indented JSON, checked against the repo
// schema when it can be located.
func emitJSON(results []matching.ScoreResult) error {
	encoded, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/match_results.json"); schemaPath != "" {
		if err := schemas.ValidateJSONFile(schemaPath, string(encoded)); err != nil {
			return fmt.Errorf("results failed schema validation: %w", err)
		}
	}

	fmt.Println(string(encoded))
	return nil
}
