package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	authUseCase "github.com/allisson/messaging/internal/auth/usecase"
)

// RunCleanRevokedTokens removes revocation records for tokens that have
// already expired. The sweeper does the same thing on a timer; this command
// exists for one-off runs and cron-driven deployments. Supports dry-run mode
// to preview the deletion count and both text/JSON output formats.
//
// Requirements: Database must be migrated and accessible.
func RunCleanRevokedTokens(
	ctx context.Context,
	useCase authUseCase.AuthUseCase,
	logger *slog.Logger,
	writer io.Writer,
	dryRun bool,
	format string,
) error {
	logger.Info("cleaning revoked tokens", slog.Bool("dry_run", dryRun))

	var count int64
	var err error
	if dryRun {
		count, err = useCase.CountExpired(ctx)
	} else {
		count, err = useCase.PurgeExpired(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to purge revoked tokens: %w", err)
	}

	if format == "json" {
		outputCleanRevokedJSON(count, dryRun, writer)
	} else {
		outputCleanRevokedText(count, dryRun, writer)
	}

	logger.Info("cleanup completed",
		slog.Int64("count", count),
		slog.Bool("dry_run", dryRun),
	)

	return nil
}

// outputCleanRevokedText outputs the result in human-readable text format.
func outputCleanRevokedText(count int64, dryRun bool, writer io.Writer) {
	if dryRun {
		_, _ = fmt.Fprintf(writer, "Dry-run mode: Would purge %d revoked token record(s)\n", count)
	} else {
		_, _ = fmt.Fprintf(writer, "Successfully purged %d revoked token record(s)\n", count)
	}
}

// outputCleanRevokedJSON outputs the result in JSON format for machine consumption.
func outputCleanRevokedJSON(count int64, dryRun bool, writer io.Writer) {
	result := map[string]interface{}{
		"count":   count,
		"dry_run": dryRun,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
