// cmd/schedctl/main.go
// Operator CLI: run a scheduling pass or export a fixture workbook without
// going through the HTTP surface.

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/config"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/database"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/export"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/services"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "schedctl",
		Short: "Cricket tournament scheduling control tool",
	}

	var tournamentID string

	generateCmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate and persist a schedule for a tournament",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(tournamentID)
		},
	}
	generateCmd.Flags().StringVarP(&tournamentID, "tournament", "t", "", "Tournament ID")
	generateCmd.MarkFlagRequired("tournament")

	var outputFile string
	exportCmd := &cobra.Command{
		Use:          "export",
		Short:        "Export the committed schedule to an Excel workbook",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(tournamentID, outputFile)
		},
	}
	exportCmd.Flags().StringVarP(&tournamentID, "tournament", "t", "", "Tournament ID")
	exportCmd.MarkFlagRequired("tournament")
	exportCmd.Flags().StringVarP(&outputFile, "output", "o", "schedule.xlsx", "Output Excel file path")

	rootCmd.AddCommand(generateCmd, exportCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// connect loads the configuration and opens the data stores.
func connect() (*config.Config, *database.Connections, *services.Container, *log.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	logger := log.New(os.Stderr, "[schedctl] ", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conns, err := database.Connect(ctx, database.Config{
		MySQL: database.MySQLConfig{
			DSN:             cfg.Database.MySQL.DSN,
			MaxOpenConns:    cfg.Database.MySQL.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MySQL.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.MySQL.ConnMaxLifetime,
		},
		MongoDB: database.MongoConfig{
			URI:      cfg.Database.MongoDB.URI,
			Database: cfg.Database.MongoDB.Database,
		},
		Redis: database.RedisConfig{
			Addr:     cfg.Database.Redis.Addr,
			Password: cfg.Database.Redis.Password,
			DB:       cfg.Database.Redis.DB,
		},
	}, logger)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("connecting to stores: %w", err)
	}

	return cfg, conns, services.NewContainer(conns, cfg, logger), logger, nil
}

func runGenerate(tournamentID string) error {
	_, conns, svc, _, err := connect()
	if err != nil {
		return err
	}
	defer conns.Close()

	result, err := svc.Schedule.Generate(context.Background(), tournamentID, nil)
	if result != nil && !result.Success {
		fmt.Printf("schedule generation failed: %s\n", result.Message)
		for _, conflict := range result.Conflicts {
			fmt.Printf("  - %s\n", conflict)
		}
	}
	if err != nil {
		return err
	}

	fmt.Printf("scheduled %d matches (%s)\n", result.MatchesScheduled, result.Status)
	for _, m := range result.Schedule {
		fmt.Printf("  #%-3d %s  %s vs %s  @ %s\n",
			m.MatchNumber,
			m.ScheduledStart.Format("2006-01-02 15:04"),
			m.Team1Name, m.Team2Name, m.VenueName)
	}
	return nil
}

func runExport(tournamentID, outputPath string) error {
	_, conns, svc, _, err := connect()
	if err != nil {
		return err
	}
	defer conns.Close()

	ctx := context.Background()
	tournament, err := svc.Tournament.GetByID(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("loading tournament: %w", err)
	}
	teams, err := svc.Tournament.Teams(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("loading teams: %w", err)
	}
	venues, err := svc.Tournament.Venues(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("loading venues: %w", err)
	}
	matches, err := svc.Schedule.Matches(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("loading schedule: %w", err)
	}

	workbook, err := export.Workbook(tournament, teams, venues, matches)
	if err != nil {
		return fmt.Errorf("building workbook: %w", err)
	}

	if err := workbook.SaveAs(outputPath); err != nil {
		return fmt.Errorf("saving file: %w", err)
	}

	fmt.Printf("schedule for %q (%d matches) saved to %s\n", tournament.Name, len(matches), outputPath)
	return nil
}
