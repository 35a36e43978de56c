package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/quailyquaily/unreverse/internal/configutil"
	"github.com/quailyquaily/unreverse/restore"
	"github.com/spf13/cobra"
)

// restorerFromConfig builds a Restorer from the built-in table plus the entries
// in restore.contractions_file, if set.
func restorerFromConfig(cmd *cobra.Command, logger *slog.Logger, onFallback func(string, error)) (*restore.Restorer, error) {
	table := restore.DefaultContractions()
	path := strings.TrimSpace(configutil.FlagOrViperString(cmd, "contractions-file", "restore.contractions_file"))
	if path != "" {
		extra, err := loadContractionsFile(path)
		if err != nil {
			return nil, err
		}
		table = table.Merge(extra)
		if logger != nil {
			logger.Info("restore_contractions_loaded", "file", path, "extra", extra.Len(), "total", table.Len())
		}
	}
	return restore.New(restore.Options{
		Contractions: &table,
		Logger:       logger,
		OnFallback:   onFallback,
	}), nil
}

func loadContractionsFile(path string) (restore.Contractions, error) {
	f, err := os.Open(path)
	if err != nil {
		return restore.Contractions{}, fmt.Errorf("open contractions file: %w", err)
	}
	defer f.Close()
	table, err := restore.LoadContractions(f)
	if err != nil {
		return restore.Contractions{}, fmt.Errorf("load contractions file %s: %w", path, err)
	}
	return table, nil
}
