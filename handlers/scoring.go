// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/danielhkuo/picture-perfect/models"
)

// normalizeOption canonicalizes option text for scoring equality.
// Option text is identity, compared trimmed and case-insensitive.
func normalizeOption(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ComputeStandings scores every completed ballot against the graded
// results. Returns nil when nothing is graded yet. Order is
// deterministic: correct count descending, then participant id
// ascending, so the leaderboard is reproducible across store reloads.
func ComputeStandings(results models.ResultDoc, votes models.VoteDoc) []models.Standing {
	if len(results) == 0 {
		return nil
	}
	graded := len(results)

	var standings []models.Standing
	for _, uid := range sortedUserIDs(votes) {
		ballot := votes[uid]
		if !ballot.Completed {
			continue
		}

		correct, wishMatches := 0, 0
		for catID, winner := range results {
			want := normalizeOption(winner)
			if want == "" {
				continue
			}
			if normalizeOption(ballot.Predictions[catID]) == want {
				correct++
			}
			if normalizeOption(ballot.Wishes[catID]) == want {
				wishMatches++
			}
		}

		standings = append(standings, models.Standing{
			UserID:      uid,
			Name:        ballot.Name,
			Username:    ballot.Username,
			Correct:     correct,
			WishMatches: wishMatches,
			Graded:      graded,
			Percent:     int(math.Round(100 * float64(correct) / float64(graded))),
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Correct != standings[j].Correct {
			return standings[i].Correct > standings[j].Correct
		}
		return lessUserID(standings[i].UserID, standings[j].UserID)
	})
	return standings
}

// BestWisher returns the ballot with the most fulfilled wishes, ties
// broken by participant id ascending. Reported only when at least one
// wish came true.
func BestWisher(standings []models.Standing) (models.Standing, bool) {
	if len(standings) == 0 {
		return models.Standing{}, false
	}

	ranked := make([]models.Standing, len(standings))
	copy(ranked, standings)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].WishMatches != ranked[j].WishMatches {
			return ranked[i].WishMatches > ranked[j].WishMatches
		}
		return lessUserID(ranked[i].UserID, ranked[j].UserID)
	})

	if ranked[0].WishMatches == 0 {
		return models.Standing{}, false
	}
	return ranked[0], true
}

// CountCompleted counts completed ballots.
func CountCompleted(votes models.VoteDoc) int {
	n := 0
	for _, ballot := range votes {
		if ballot.Completed {
			n++
		}
	}
	return n
}

// ComputeCategoryStats aggregates, per category, the two most-picked
// prediction and wish options among completed ballots. Ties keep
// catalog option order; picks no longer in the catalog sort after
// catalog options of the same count.
func ComputeCategoryStats(catalog models.Catalog, votes models.VoteDoc) []models.CategoryStats {
	ids := sortedUserIDs(votes)

	stats := make([]models.CategoryStats, 0, len(catalog))
	for _, cat := range catalog {
		predictions := make(map[string]int)
		wishes := make(map[string]int)
		var predSeen, wishSeen []string

		for _, uid := range ids {
			ballot := votes[uid]
			if !ballot.Completed {
				continue
			}
			if p := ballot.Predictions[cat.ID]; p != "" {
				if predictions[p] == 0 {
					predSeen = append(predSeen, p)
				}
				predictions[p]++
			}
			if w := ballot.Wishes[cat.ID]; w != "" {
				if wishes[w] == 0 {
					wishSeen = append(wishSeen, w)
				}
				wishes[w]++
			}
		}

		stats = append(stats, models.CategoryStats{
			CategoryID:     cat.ID,
			Title:          cat.Title,
			TopPredictions: topPicks(cat, predictions, predSeen),
			TopWishes:      topPicks(cat, wishes, wishSeen),
		})
	}
	return stats
}

// topPicks orders picked options by count descending, top two. The
// base order is catalog order followed by off-catalog picks in
// first-seen order; the sort is stable over it.
func topPicks(cat models.Category, counts map[string]int, seen []string) []models.OptionCount {
	inCatalog := make(map[string]bool, len(cat.Options))
	var ordered []string
	for _, opt := range cat.Options {
		inCatalog[opt] = true
		if counts[opt] > 0 {
			ordered = append(ordered, opt)
		}
	}
	for _, opt := range seen {
		if !inCatalog[opt] {
			ordered = append(ordered, opt)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return counts[ordered[i]] > counts[ordered[j]]
	})

	if len(ordered) > 2 {
		ordered = ordered[:2]
	}
	picks := make([]models.OptionCount, 0, len(ordered))
	for _, opt := range ordered {
		picks = append(picks, models.OptionCount{Option: opt, Count: counts[opt]})
	}
	return picks
}

// sortedUserIDs returns vote store keys in ascending numeric order
// (ids are decimal strings; non-numeric keys sort after, textually).
func sortedUserIDs(votes models.VoteDoc) []string {
	ids := make([]string, 0, len(votes))
	for uid := range votes {
		ids = append(ids, uid)
	}
	sort.Slice(ids, func(i, j int) bool { return lessUserID(ids[i], ids[j]) })
	return ids
}

func lessUserID(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
