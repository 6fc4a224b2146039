// Command seed imports a catalog export into the question store. The API
// never creates records; this is the only write path besides the toggle
// endpoints.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dsa-tracker/backend/internal/domain/question"
	"github.com/dsa-tracker/backend/internal/infrastructure/config"
	"github.com/dsa-tracker/backend/internal/store"
	"github.com/dsa-tracker/backend/internal/worker"
)

func main() {
	file := flag.String("file", "questions.json", "path to the catalog JSON export")
	workers := flag.Int("workers", 8, "concurrent upserts")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if err := run(*file, *workers, logger); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(file string, workers int, logger *slog.Logger) error {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := store.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer db.Close(context.Background())

	records, err := loadRecords(file)
	if err != nil {
		return err
	}
	logger.Info("loaded catalog export", "file", file, "records", len(records))

	ctx = context.Background()
	if err := db.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	pool := worker.NewPool[error](workers, len(records))
	for _, rec := range records {
		rec := rec
		pool.Submit(rec.ID, func() error {
			return db.Upsert(ctx, rec)
		})
	}
	pool.Close()

	failures := 0
	for range records {
		res := <-pool.Results()
		if res.Output != nil {
			logger.Error("upsert failed", "id", res.JobID, "error", res.Output)
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d records failed", failures, len(records))
	}

	logger.Info("seed complete", "records", len(records))
	return nil
}

func loadRecords(file string) ([]question.Question, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}

	var records []question.Question
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}

	seen := make(map[string]bool, len(records))
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, records[i].ID, err)
		}
		if seen[records[i].ID] {
			return nil, fmt.Errorf("record %d: duplicate id %s", i, records[i].ID)
		}
		seen[records[i].ID] = true
	}
	return records, nil
}
