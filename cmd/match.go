package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/smartmatch/jobmatcher/internal/logger"
	"github.com/smartmatch/jobmatcher/internal/matching"
	"github.com/smartmatch/jobmatcher/internal/preferences"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowBreakdown = "Show per-dimension breakdown"
	PromptDumpToFile    = "Dump results to file"
	PromptExit          = "Exit"
)

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowBreakdown, PromptDumpToFile, PromptExit},
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a preference document against the job catalog once and print the results",
	Run: func(cmd *cobra.Command, _ []string) {
		match(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("input", "i", "", "preference document to match ('-' or empty reads stdin)")
	matchCmd.Flags().StringP("output", "o", "", "write full results to this file and skip the interactive menu")
}

func match(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	raw, err := readInput(cmd.Flag("input").Value.String())
	if err != nil {
		logger.Fatal("reading the preference document", zap.Error(err))
	}

	prefs, err := preferences.Normalize(raw)
	if err != nil {
		var formatErr *preferences.FormatError
		if errors.As(err, &formatErr) {
			logger.Fatal("the input is not valid JSON", zap.Error(err))
		}
		logger.Fatal("normalizing preferences", zap.Error(err))
	}

	// do not bother error since the record was just built from valid JSON
	pretty, _ := json.MarshalIndent(prefs, "", "  ")
	logger.Debug(fmt.Sprintf("normalized preferences: \n %s", pretty))

	cat, err := loadCatalog(config)
	if err != nil {
		logger.Fatal("loading the job catalog", zap.Error(err))
	}

	results := matching.Match(prefs, cat)
	logger.Info("matching completed",
		zap.Int("catalog_jobs", cat.Len()),
		zap.Int("results", len(results)),
	)

	for _, result := range results {
		fmt.Printf("%6.2f  %s at %s (%s)\n", result.MatchScore, result.JobTitle, result.Company, result.JobID)
	}

	if output := cmd.Flag("output").Value.String(); output != "" {
		if err := results.ToFile(output); err != nil {
			logger.Fatal("writing results", zap.Error(err))
		}
		logger.Info("results written", zap.String("path", output))
		return
	}

	for {
		_, answer, err := prompt.Run()
		if err != nil {
			logger.Fatal("prompt failed", zap.Error(err))
		}

		switch answer {
		case PromptShowBreakdown:
			// already marshaled fine above, ignore the error here too
			full, _ := json.MarshalIndent(results, "", "  ")
			fmt.Println(string(full))
		case PromptDumpToFile:
			path, err := results.DumpToTmpFile()
			if err != nil {
				logger.Error("dumping results", zap.Error(err))
				continue
			}
			logger.Info("results dumped", zap.String("path", path))
		case PromptExit:
			return
		}
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
