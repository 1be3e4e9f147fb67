// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/picture-perfect/deadline"
	"github.com/danielhkuo/picture-perfect/models"
	"github.com/danielhkuo/picture-perfect/store"
)

const (
	eventHeader = "OSCAR 2026"
	divider     = "· · · · · · · · · · · · · · ·"
	missingMark = "—"
)

func userKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

func replyText(text string) []models.Reply {
	return []models.Reply{{Text: text}}
}

func editText(text string) []models.Reply {
	return []models.Reply{{Text: text, Edit: true}}
}

func invalidSelection() []models.Reply {
	return replyText("Invalid selection.")
}

// effectiveDeadline loads the config store and resolves the override.
func effectiveDeadline(b store.Backend) (time.Time, models.BotConfig, error) {
	cfg, err := store.LoadConfig(b)
	if err != nil {
		return time.Time{}, models.BotConfig{}, err
	}
	dl, err := deadline.Effective(cfg)
	if err != nil {
		return time.Time{}, models.BotConfig{}, err
	}
	return dl, cfg, nil
}

// renderBallotLines renders one ballot in catalog order, one block per
// category, flagging categories where prediction and wish coincide.
func renderBallotLines(catalog models.Catalog, predictions, wishes map[string]string) string {
	lines := make([]string, 0, len(catalog))
	for _, cat := range catalog {
		p := predictions[cat.ID]
		if p == "" {
			p = missingMark
		}
		w := wishes[cat.ID]
		if w == "" {
			w = missingMark
		}
		match := ""
		if p == w {
			match = "  ·  matches"
		}
		lines = append(lines, fmt.Sprintf("*%s*\n  ★  `%s`\n  ✦  `%s`%s",
			strings.ToUpper(cat.Title), p, w, match))
	}
	return strings.Join(lines, "\n"+divider+"\n")
}
