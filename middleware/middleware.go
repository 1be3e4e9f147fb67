// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/picture-perfect/models"
)

// HandlerFunc processes one interaction and returns the replies to
// render. Commands carry their arguments; callback handlers get nil.
type HandlerFunc func(user models.User, args []string) ([]models.Reply, error)

// WithLogging wraps a handler with interaction logging
func WithLogging(op string, next HandlerFunc) HandlerFunc {
	return func(user models.User, args []string) ([]models.Reply, error) {
		start := time.Now()

		slog.Info("interaction started",
			"op", op,
			"user_id", user.ID,
		)

		replies, err := next(user, args)

		duration := time.Since(start)
		if err != nil {
			slog.Error("interaction failed",
				"op", op,
				"user_id", user.ID,
				"duration_ms", duration.Milliseconds(),
				"error", err,
			)
		} else {
			slog.Info("interaction completed",
				"op", op,
				"user_id", user.ID,
				"duration_ms", duration.Milliseconds(),
			)
		}

		return replies, err
	}
}

// WithRecovery converts a panic into an error so one participant's
// interaction can never take down the update loop or anyone else's
// in-flight session.
func WithRecovery(op string, next HandlerFunc) HandlerFunc {
	return func(user models.User, args []string) (replies []models.Reply, err error) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("interaction panicked", "op", op, "user_id", user.ID, "panic", r)
				replies = nil
				err = fmt.Errorf("panic in %s: %v", op, r)
			}
		}()
		return next(user, args)
	}
}
