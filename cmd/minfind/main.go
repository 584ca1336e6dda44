package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/JonMunkholm/minfind/internal/config"
	"github.com/JonMunkholm/minfind/internal/core"
	"github.com/JonMunkholm/minfind/internal/logging"
	"github.com/joho/godotenv"
)

const usage = "USAGE: minfind <filename>"

// Exit codes.
const (
	exitOK     = 0
	exitScan   = 1
	exitUsage  = 2
	exitConfig = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "Invalid command-line arguments.")
		fmt.Fprintln(stderr, usage)
		return exitUsage
	}
	path := args[0]

	// Load .env file if it exists; variables already set in the environment win
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "failed to load configuration: %v\n", err)
		return exitConfig
	}

	logging.Setup(stderr, cfg.Logging.Level, cfg.Logging.Format)
	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	} else {
		slog.Debug("loaded .env file")
	}

	ctx = logging.ContextWithScanID(ctx, logging.NewScanID())
	logger := logging.WithFields(ctx, "path", path)
	logger.Debug("configuration loaded", "config", cfg.String())

	res, err := core.ScanFile(ctx, path, core.ScanOptions{
		ValueColumns:  cfg.Scan.ValueColumns,
		IDColumn:      cfg.Scan.IDColumn,
		Delimiter:     cfg.Scan.DelimiterByte(),
		MaxLineLength: cfg.Scan.MaxLineLength,
	})
	if err != nil {
		logger.Error("scan failed", "error", err, "code", core.MapError(err).Code)
		reportError(stderr, err)
		return exitScan
	}

	logger.Info("scan completed", "rows", res.Rows, "columns", len(res.Minima))
	for _, m := range res.Minima {
		fmt.Fprintf(stdout, "%s: min=%s %s=%d line=%d\n",
			m.Column, strconv.FormatFloat(m.Value, 'g', -1, 64), cfg.Scan.IDColumn, m.ID, m.Line)
	}

	return exitOK
}

// reportError prints a coded message for known error kinds followed by the
// technical detail. Unknown errors are printed as-is.
func reportError(w io.Writer, err error) {
	if !core.IsUserFacing(err) {
		fmt.Fprintf(w, "minfind: %v\n", err)
		return
	}
	fmt.Fprintf(w, "%s\n%v\n", core.FormatUserError(err), err)
}
