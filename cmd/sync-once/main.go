// Command sync-once runs a single manual menu sync pass and prints the outcome as JSON.
// Exit status is 1 when the spreadsheet could not be read.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-resto-admin/internal/bootstrap"
	"go-resto-admin/internal/config"

	"go.uber.org/zap"
)

func main() {
	timeout := flag.Duration("timeout", time.Minute, "abort the pass after this long")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	log, err := bootstrap.NewLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	db, err := bootstrap.OpenDB(cfg, log)
	if err != nil {
		log.Fatal("Database setup failed", zap.Error(err))
	}
	sheet, err := bootstrap.NewSheetSource(ctx, cfg.Sync)
	if err != nil {
		log.Fatal("Spreadsheet client setup failed", zap.Error(err))
	}

	res, err := bootstrap.NewSyncer(db, sheet, nil, log).TriggerManual(ctx)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(res)

	if err != nil {
		log.Error("Menu sync failed", zap.Error(err))
		os.Exit(1)
	}
}
