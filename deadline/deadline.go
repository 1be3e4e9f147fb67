// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package deadline

import (
	"fmt"
	"time"

	"github.com/danielhkuo/picture-perfect/models"
)

// Default is the compiled-in submission cutoff: March 14 2026, 19:00
// Moscow time, the eve of the 98th Academy Awards ceremony.
var Default = time.Date(2026, time.March, 14, 16, 0, 0, 0, time.UTC)

// DisplayZone is the fixed offset used for human-facing times. It is a
// compile-time constant, not a tz-database zone: no DST adjustment.
var DisplayZone = time.FixedZone("MSK", 3*60*60)

const localLayout = "02.01.2006 15:04"

// Effective returns the configured override if present, else Default.
// A malformed stored override is an error, not a silent fallback.
func Effective(cfg models.BotConfig) (time.Time, error) {
	if cfg.DeadlineUTC == "" {
		return Default, nil
	}
	t, err := time.Parse(time.RFC3339, cfg.DeadlineUTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed deadline override %q: %w", cfg.DeadlineUTC, err)
	}
	return t.UTC(), nil
}

// Status reports whether submissions are accepted at now. When open,
// info holds the remaining time in the coarsest two non-zero units;
// when closed, info holds a closed-since line. The boundary counts as
// closed: now == deadline rejects.
func Status(deadline, now time.Time) (open bool, info string) {
	if !now.Before(deadline) {
		return false, fmt.Sprintf("Predictions closed · %s", FormatLocal(deadline))
	}

	left := deadline.Sub(now)
	h := int(left.Hours())
	m := int(left.Minutes()) % 60
	switch {
	case h >= 24:
		info = fmt.Sprintf("%dd %dh", h/24, h%24)
	case h > 0:
		info = fmt.Sprintf("%dh %dm", h, m)
	default:
		info = fmt.Sprintf("%dm", m)
	}
	return true, info
}

// FormatLocal renders an instant in the fixed display offset.
func FormatLocal(t time.Time) string {
	return t.In(DisplayZone).Format("02.01.2006, 15:04") + " MSK"
}

// ParseLocal parses "dd.mm.yyyy hh:mm" as display-offset wall time and
// returns the instant in UTC.
func ParseLocal(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(localLayout, date+" "+clock, DisplayZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid deadline %q %q: %w", date, clock, err)
	}
	return t.UTC(), nil
}
