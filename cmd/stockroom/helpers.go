// Shared helpers for stockroom CLI commands.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/billswift/stockroom/internal/logging"
	"github.com/billswift/stockroom/internal/render"
	"github.com/billswift/stockroom/internal/sqlite"
	"github.com/billswift/stockroom/pkg/types"
)

// openStore resolves configuration and opens the SQLite-backed store. The
// caller must defer store.Close().
func openStore() (*sqlite.Store, types.Config, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, types.Config{}, err
	}

	log := logging.Nop()
	if verbose {
		if log, err = logging.New(zap.DebugLevel); err != nil {
			return nil, types.Config{}, fmt.Errorf("init logger: %w", err)
		}
	}

	store, err := sqlite.Open(cfg, sqlite.WithLogger(logging.Named(log, "store")))
	if err != nil {
		return nil, types.Config{}, fmt.Errorf("open store: %w", err)
	}
	return store, cfg, nil
}

// newRenderer builds a renderer for the effective config. Color and compact
// are per-command display choices.
func newRenderer(cfg types.Config, color, compact bool) (render.Renderer, error) {
	cf, err := render.NewCurrencyFormatter(cfg.Locale, cfg.Currency)
	if err != nil {
		return render.Renderer{}, err
	}
	return render.Renderer{
		Threshold: cfg.LowStockThreshold,
		Currency:  cf,
		Color:     color,
		Compact:   compact,
	}, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// confirm prompts on stderr and reads one line from stdin. Only an explicit
// y or yes answer confirms.
func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
