// Command backfill loads a JSON array of submissions and writes them in a
// single transaction. Every record is validated and normalized exactly like
// an API create; one invalid record aborts the whole run before any write.
//
// Usage: backfill -file data.json [-config config.yaml] [-dry-run]
//
// Without -config the file named by CONFIG_PATH is used, as for the server.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/gametime-api/internal/app"
	"github.com/heartmarshall/gametime-api/internal/config"
	"github.com/heartmarshall/gametime-api/internal/service/submission"
)

type record struct {
	UserID         string   `json:"userId"`
	GameTitle      string   `json:"gameTitle"`
	HoursPlayed    *float64 `json:"hoursPlayed"`
	Platform       string   `json:"platform"`
	CompletionType string   `json:"completionType"`
	Difficulty     string   `json:"difficulty"`
	Notes          *string  `json:"notes"`
}

func main() {
	file := flag.String("file", "data.json", "path to a JSON array of submissions")
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to the YAML config")
	dryRun := flag.Bool("dry-run", false, "validate the file without writing")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	inputs, err := readInputs(*file)
	if err != nil {
		logger.Error("read input file", slog.String("file", *file), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *dryRun {
		for i, in := range inputs {
			if err := in.Validate(); err != nil {
				logger.Error("invalid record", slog.Int("index", i), slog.String("error", err.Error()))
				os.Exit(1)
			}
		}
		logger.Info("dry run passed", slog.Int("records", len(inputs)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	backend, err := app.NewBackend(ctx, cfg, logger)
	if err != nil {
		logger.Error("open backend", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer backend.Close()

	written, err := backend.Service.Import(ctx, inputs)
	if err != nil {
		logger.Error("backfill failed", slog.String("error", err.Error()))
		backend.Close()
		os.Exit(1)
	}

	logger.Info("backfill completed",
		slog.Int("written", len(written)),
		slog.String("storage_driver", cfg.Storage.Driver),
	)
}

func readInputs(path string) ([]submission.CreateInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	inputs := make([]submission.CreateInput, len(records))
	for i, r := range records {
		inputs[i] = submission.CreateInput(r)
	}
	return inputs, nil
}
