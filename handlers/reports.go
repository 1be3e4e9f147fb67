// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/picture-perfect/deadline"
	"github.com/danielhkuo/picture-perfect/models"
	"github.com/danielhkuo/picture-perfect/store"
)

// ReportHandler renders the read-only views: a participant's own
// ballot, the leaderboard and the per-category popularity stats.
// Everything here is derived at read time; nothing is persisted.
type ReportHandler struct {
	store   store.Backend
	catalog models.Catalog
	now     func() time.Time
}

func NewReportHandler(b store.Backend, catalog models.Catalog) *ReportHandler {
	return &ReportHandler{store: b, catalog: catalog, now: time.Now}
}

// MyVotes is the /my_votes command.
func (h *ReportHandler) MyVotes(user models.User) ([]models.Reply, error) {
	votes, err := store.LoadVotes(h.store)
	if err != nil {
		return nil, err
	}
	entry := votes[userKey(user.ID)]
	if !entry.Completed {
		return replyText("You haven't voted yet. /start to begin."), nil
	}

	dl, _, err := effectiveDeadline(h.store)
	if err != nil {
		return nil, err
	}
	footer := "_Voting is closed._"
	if open, info := deadline.Status(dl, h.now()); open {
		footer = fmt.Sprintf("_Closes in: %s_", info)
	}

	return replyText("YOUR PREDICTIONS\n\n" +
		renderBallotLines(h.catalog, entry.Predictions, entry.Wishes) +
		"\n\n" + footer), nil
}

// Leaderboard is the /leaderboard command: top 20 by correct
// predictions, roman markers for the podium, plus the best wisher.
func (h *ReportHandler) Leaderboard(user models.User) ([]models.Reply, error) {
	results, err := store.LoadResults(h.store)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return replyText(fmt.Sprintf(
			"*%s*\n\nResults haven't been announced yet.\nCome back after March 15.", eventHeader)), nil
	}

	votes, err := store.LoadVotes(h.store)
	if err != nil {
		return nil, err
	}
	standings := ComputeStandings(results, votes)

	podium := []string{"I", "II", "III"}
	var lines []string
	for i, s := range standings {
		if i >= 20 {
			break
		}
		rank := humanize.Ordinal(i + 1)
		if i < len(podium) {
			rank = podium[i]
		}
		wish := ""
		if s.WishMatches > 0 {
			wish = fmt.Sprintf("  ·  ✦ %d/%d", s.WishMatches, s.Graded)
		}
		lines = append(lines, fmt.Sprintf("`%s`  %s — ★ %d/%d (%d%%)%s",
			rank, displayTag(s), s.Correct, s.Graded, s.Percent, wish))
	}

	body := "No one has voted."
	if len(lines) > 0 {
		body = strings.Join(lines, "\n")
	}

	footer := ""
	if best, ok := BestWisher(standings); ok {
		footer = fmt.Sprintf("\n\n_Best wisher: %s · %d/%d wishes came true_",
			displayTag(best), best.WishMatches, best.Graded)
	}

	return replyText(fmt.Sprintf("*STANDINGS*  ·  %d/%d categories\n\n%s%s",
		len(results), len(h.catalog), body, footer)), nil
}

// Stats is the /stats command: per category, the two most-picked
// prediction and wish options, plus turnout and deadline status.
func (h *ReportHandler) Stats(user models.User) ([]models.Reply, error) {
	votes, err := store.LoadVotes(h.store)
	if err != nil {
		return nil, err
	}
	completed := CountCompleted(votes)
	if completed == 0 {
		return replyText("No one has voted yet."), nil
	}

	dl, _, err := effectiveDeadline(h.store)
	if err != nil {
		return nil, err
	}
	status := "voting closed"
	if open, info := deadline.Status(dl, h.now()); open {
		status = "closes in: " + info
	}

	lines := []string{fmt.Sprintf("*%d participants*  ·  _%s_\n", completed, status)}
	for _, cs := range ComputeCategoryStats(h.catalog, votes) {
		lines = append(lines, fmt.Sprintf("*%s*\n  ★  %s\n  ✦  %s",
			strings.ToUpper(cs.Title), renderPicks(cs.TopPredictions), renderPicks(cs.TopWishes)))
	}
	return replyText(strings.Join(lines, "\n")), nil
}

func displayTag(s models.Standing) string {
	if s.Username != "" {
		return "@" + s.Username
	}
	if s.Name != "" {
		return s.Name
	}
	return missingMark
}

// renderPicks joins "Label (count)" pairs, truncating labels at the
// " — " separator so "Ryan Coogler — Sinners" reads as "Ryan Coogler".
func renderPicks(picks []models.OptionCount) string {
	if len(picks) == 0 {
		return missingMark
	}
	parts := make([]string, 0, len(picks))
	for _, p := range picks {
		parts = append(parts, fmt.Sprintf("%s (%d)", shortOption(p.Option), p.Count))
	}
	return strings.Join(parts, "  ·  ")
}

func shortOption(s string) string {
	if cut := strings.Index(s, "—"); cut >= 0 {
		s = s[:cut]
	}
	return strings.TrimSpace(s)
}
