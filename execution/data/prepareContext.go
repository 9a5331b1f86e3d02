package data

import (
	"context"
	"fmt"
	"log/slog"
)

// PrepareContextHelper implements the common logic for enriching a
// context with evaluation data. The machine evaluators share it so
// context preparation behaves the same everywhere.
//
// The returned context is usable even when an error is reported,
// because providers store whatever items they were able to accept.
func PrepareContextHelper(
	ctx context.Context,
	logger *slog.Logger,
	provider Provider,
	d ...any,
) (context.Context, error) {
	if provider == nil {
		logger.WarnContext(ctx, "no data provider available for context preparation")
		return ctx, fmt.Errorf("no data provider available")
	}

	enrichedCtx, err := provider.AddDataToContext(ctx, d...)
	if err != nil {
		logger.ErrorContext(ctx, "failed to prepare context", "error", err)
		// Return the partial context even with errors, as it may have some usable data
	}

	return enrichedCtx, err
}
