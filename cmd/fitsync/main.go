// Command fitsync is a local maintenance tool for a FitSync data directory:
// it can export the document, import a previously exported file, and print
// progress statistics. There is no server; everything operates on the
// on-device store directly.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fitsync/fitsync/internal/config"
	"github.com/fitsync/fitsync/internal/metrics"
	"github.com/fitsync/fitsync/internal/repository"
	"github.com/fitsync/fitsync/internal/service"
	"github.com/fitsync/fitsync/internal/storage"
	"github.com/fitsync/fitsync/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()

	store, err := storage.Open(cfg.DataDir, cfg.Backend)
	if err != nil {
		slog.Error("failed to open storage", "data_dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	repo, err := repository.New(ctx, store, metrics.New(prometheus.NewRegistry()), slog.Default())
	if err != nil {
		slog.Error("failed to load document", "error", err)
		os.Exit(1)
	}

	switch cmd := flag.Arg(0); cmd {
	case "export":
		err = runExport(repo, flag.Arg(1))
	case "import":
		err = runImport(ctx, repo, flag.Arg(1))
	case "stats":
		err = runStats(ctx, repo, flag.Arg(1))
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: fitsync [-config file] <command>

Commands:
  export [file]      write the document as pretty JSON to file (or stdout)
  import <file>      replace the document with a previously exported file
  stats <email>      print progress statistics for the user
`)
}

func runExport(repo *repository.Repository, path string) error {
	out, err := repo.Export()
	if err != nil {
		return err
	}
	if path == "" {
		_, err = os.Stdout.Write(append(out, '\n'))
		return err
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	slog.Info("document exported", "path", path)
	return nil
}

func runImport(ctx context.Context, repo *repository.Repository, path string) error {
	if path == "" {
		return fmt.Errorf("import requires a file argument")
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}
	if err := repo.Import(ctx, text); err != nil {
		return err
	}
	slog.Info("document imported", "path", path)
	return nil
}

func runStats(ctx context.Context, repo *repository.Repository, email string) error {
	if email == "" {
		return fmt.Errorf("stats requires a user email argument")
	}

	data := repo.Current()
	userID := ""
	for _, u := range data.Users {
		if u.Email == email {
			userID = u.ID
			break
		}
	}
	if userID == "" {
		return fmt.Errorf("no user with email %q", email)
	}

	progress := service.NewProgressService(repo, slog.Default())
	summary := progress.Summary(ctx, userID)

	fmt.Printf("This week:    %d workouts, %d min, %d kcal (%.0f%% of goal)\n",
		summary.Weekly.WorkoutCount,
		summary.Weekly.TotalMinutes,
		summary.Weekly.TotalCalories,
		summary.Weekly.ProgressPercent,
	)
	fmt.Printf("Consistency:  %.0f/100\n", summary.Consistency)
	fmt.Printf("Streak:       %d current / %d longest\n", summary.Streak.Current, summary.Streak.Longest)
	fmt.Printf("Records:      %d exercises\n", len(summary.Records))
	for _, rec := range summary.Records {
		fmt.Printf("  %-24s %.1f kg × %d (%s)\n",
			rec.ExerciseName, rec.WeightKg, rec.Reps, rec.Date.Format("2006-01-02"))
	}
	return nil
}
