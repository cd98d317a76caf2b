package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/core"
	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/models"
	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/utils"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

var (
	configFile string
	logLevel   string

	stats      []string
	games      int
	maxWorkers int
	outputDir  string
	catalogURL string
	headless   bool
)

var rootCmd = &cobra.Command{
	Use:   "mlbscraper",
	Short: "MLB player prop scraper",
	Long: `mlbscraper extracts player prop records from a paginated sportsbook
catalog and enriches each one with the player's recent-game averages,
overall and split by home/away. Results land in one CSV file per stat
category.

Examples:
  # Scrape Hits and Home Runs, averaging the last 5 games
  mlbscraper -s "Hits,Home Runs" -g 5

  # Same selection by menu key, with 3 parallel scrapers
  mlbscraper -s 1,2 -w 3

  # List the available stat categories
  mlbscraper list

Version: ` + Version + `
Build time: ` + BuildTime,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config, err := core.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logConfig := utils.LogConfig{
			Level:      config.Logging.Level,
			LogDir:     config.Logging.LogDir,
			MaxSize:    config.Logging.Rotation.MaxSize,
			MaxBackups: config.Logging.Rotation.MaxBackups,
			MaxAge:     config.Logging.Rotation.MaxAge,
			Compress:   config.Logging.Rotation.Compress,
		}
		if logLevel != "" {
			logConfig.Level = logLevel
		}

		if err := utils.InitLogger(logConfig); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		go func() {
			sig := <-sigChan
			utils.Warnf("received signal %v, shutting down", sig)
			os.Exit(0)
		}()

		config, err := core.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		// Flags override the config file.
		if games > 0 {
			config.Scrape.Games = games
		}
		if maxWorkers > 0 {
			config.Scrape.MaxWorkers = maxWorkers
		}
		if outputDir != "" {
			config.Output.BaseDir = outputDir
		}
		if catalogURL != "" {
			config.Scrape.CatalogURL = catalogURL
		}
		config.Scrape.Headless = headless

		if len(stats) == 0 {
			return cmd.Help()
		}

		if err := ValidateFlags(stats, config.Scrape.Games, config.Scrape.MaxWorkers); err != nil {
			return err
		}
		selected, err := models.ParseSelection(stats)
		if err != nil {
			return err
		}

		names := make([]string, 0, len(selected))
		for _, c := range selected {
			names = append(names, c.Name)
		}
		utils.Infof("selected categories: %v", names)

		summary := core.NewOrchestrator(config).Run(selected, config.Scrape.MaxWorkers)

		if err := utils.SaveRunReport(config.Output.BaseDir, summary); err != nil {
			utils.Error(err, "saving run report")
		}

		printSummary(summary)

		if summary.FailCount == summary.TotalCategories {
			return fmt.Errorf("all %d categories failed", summary.TotalCategories)
		}
		return nil
	},
}

func printSummary(summary *core.RunSummary) {
	fmt.Println("\n==================================================")
	fmt.Println("Scrape summary")
	fmt.Println("==================================================")
	for _, r := range summary.Results {
		status := "ok"
		if !r.Success {
			status = "FAILED: " + r.Error
		}
		fmt.Printf("%-14s %5d records  %6.1fs  %s\n", r.Category, r.Records, r.Duration, status)
	}
	fmt.Println("--------------------------------------------------")
	fmt.Printf("Categories: %d ok, %d failed\n", summary.SuccessCount, summary.FailCount)
	fmt.Printf("Records:    %d\n", summary.TotalRecords)
	fmt.Printf("Duration:   %.1fs\n", summary.TotalDuration)
	fmt.Println("==================================================")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available stat categories",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Available stat categories:")
		for _, c := range models.StatCategories {
			fmt.Printf("  %2s: %s\n", c.Key, c.Name)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mlbscraper %s\n", Version)
		fmt.Printf("Build time: %s\n", BuildTime)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace|debug|info|warn|error)")

	rootCmd.Flags().StringSliceVarP(&stats, "stats", "s", nil, "stat categories to scrape, by key or name (see 'list')")
	rootCmd.Flags().IntVarP(&games, "games", "g", 0, "number of recent games to average (default from config)")
	rootCmd.Flags().IntVarP(&maxWorkers, "workers", "w", 0, "parallel scrapers, 1-4 (default from config)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory for CSV files")
	rootCmd.Flags().StringVar(&catalogURL, "catalog-url", "", "prop catalog URL override")
	rootCmd.Flags().BoolVar(&headless, "headless", true, "headless browser mode")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
