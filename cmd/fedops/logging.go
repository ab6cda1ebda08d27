package main

import (
	"context"
	"time"

	"github.com/fedlearn/fedops/internal/logging"
)

// withCmdRunLogger emits a start log line for a CLI command and returns a
// context with the plan ID attached, plus a cleanup function to emit the
// success or failure line.
//
// Usage:
//
//	ctx, cleanup := withCmdRunLogger(ctx, "apply", planID)
//	out, err := uc.Apply(ctx, in)
//	cleanup(err)
//
// Log message format:
// - Start:   CMD:<operation>/S
// - Success: CMD:<operation>/EOK
// - Failure: CMD:<operation>/EFAIL
//
// All lines use INFO level; the failure itself is reported by main.
func withCmdRunLogger(ctx context.Context, operation, planID string) (context.Context, func(err error)) {
	startAt := time.Now()

	logger := logging.FromContext(ctx).With("planId", planID)
	ctx = logging.WithLogger(ctx, logger)

	logger.Info(ctx, "CMD:"+operation+"/S")

	cleanup := func(err error) {
		elapsed := time.Since(startAt).Seconds()
		if err == nil {
			logger.Info(ctx, "CMD:"+operation+"/EOK", "elapsed", elapsed)
			return
		}
		errStr := err.Error()
		if len(errStr) > 32 {
			errStr = errStr[:32] + "..."
		}
		logger.Info(ctx, "CMD:"+operation+"/EFAIL", "err", errStr, "elapsed", elapsed)
	}

	return ctx, cleanup
}
