// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/picture-perfect/auth"
	"github.com/danielhkuo/picture-perfect/store"
	"github.com/danielhkuo/picture-perfect/testutil"
)

func newAdminHandler(t *testing.T, admins auth.AdminSet) (*AdminHandler, store.Backend) {
	t.Helper()
	b := testutil.NewBackend(t)
	h := NewAdminHandler(b, testutil.Catalog(), admins, NewSessions())
	h.now = func() time.Time { return beforeDeadline }
	return h, b
}

func adminOnly(id int64) auth.AdminSet {
	return auth.AdminSet{id: {}}
}

func TestAdminAccessDenied(t *testing.T) {
	h, b := newAdminHandler(t, adminOnly(1))
	stranger := testutil.User(99)

	replies, err := h.Open(stranger)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if replies[0].Text != "Access denied." {
		t.Errorf("expected denial, got %q", replies[0].Text)
	}

	// A denied caller gets no session either.
	replies, err = h.PickCategory(stranger, Event{Kind: EventAdminCategory, CategoryID: "p1"})
	if err != nil {
		t.Fatalf("PickCategory failed: %v", err)
	}
	if replies[0].Text != "Access denied." {
		t.Errorf("expected denial, got %q", replies[0].Text)
	}

	results, err := store.LoadResults(b)
	if err != nil {
		t.Fatalf("LoadResults failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("result store must be untouched, got %v", results)
	}
}

func TestAdminGradeFlow(t *testing.T) {
	h, b := newAdminHandler(t, adminOnly(1))
	admin := testutil.User(1)

	replies, err := h.Open(admin)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !strings.Contains(replies[0].Text, "0/2") {
		t.Errorf("expected an ungraded list header, got %q", replies[0].Text)
	}
	rows := replies[0].Keyboard.Rows
	if len(rows) != 3 { // two categories plus the done row
		t.Fatalf("unexpected menu shape %+v", rows)
	}
	if !strings.HasPrefix(rows[0][0].Label, "·  ") {
		t.Errorf("expected ungraded marker, got %q", rows[0][0].Label)
	}

	replies, err = h.PickCategory(admin, Event{Kind: EventAdminCategory, CategoryID: "p1"})
	if err != nil {
		t.Fatalf("PickCategory failed: %v", err)
	}
	if !strings.Contains(replies[0].Text, "Who won?") {
		t.Errorf("expected winner prompt, got %q", replies[0].Text)
	}

	replies, err = h.PickWinner(admin, Event{Kind: EventAdminWinner, CategoryID: "p1", OptionIndex: 0})
	if err != nil {
		t.Fatalf("PickWinner failed: %v", err)
	}
	if !strings.Contains(replies[0].Text, "1/2 graded") {
		t.Errorf("expected grade confirmation, got %q", replies[0].Text)
	}
	if !strings.HasPrefix(replies[0].Keyboard.Rows[0][0].Label, "✓  ") {
		t.Errorf("expected graded marker, got %q", replies[0].Keyboard.Rows[0][0].Label)
	}

	results, err := store.LoadResults(b)
	if err != nil {
		t.Fatalf("LoadResults failed: %v", err)
	}
	if results["p1"] != "A" {
		t.Errorf("expected p1 graded as A, got %v", results)
	}
}

func TestAdminRegradeOverwrites(t *testing.T) {
	h, b := newAdminHandler(t, adminOnly(1))
	admin := testutil.User(1)

	if _, err := h.Open(admin); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	for _, opt := range []int{0, 1} {
		if _, err := h.PickCategory(admin, Event{Kind: EventAdminCategory, CategoryID: "p1"}); err != nil {
			t.Fatalf("PickCategory failed: %v", err)
		}
		if _, err := h.PickWinner(admin, Event{Kind: EventAdminWinner, CategoryID: "p1", OptionIndex: opt}); err != nil {
			t.Fatalf("PickWinner failed: %v", err)
		}
	}

	results, err := store.LoadResults(b)
	if err != nil {
		t.Fatalf("LoadResults failed: %v", err)
	}
	if len(results) != 1 || results["p1"] != "B" {
		t.Errorf("expected the regrade to overwrite, got %v", results)
	}

	// The regrade note shows the recorded winner on re-entry.
	replies, err := h.PickCategory(admin, Event{Kind: EventAdminCategory, CategoryID: "p1"})
	if err != nil {
		t.Fatalf("PickCategory failed: %v", err)
	}
	if !strings.Contains(replies[0].Text, "Current: B") {
		t.Errorf("expected current-winner note, got %q", replies[0].Text)
	}
}

func TestAdminStaleWinnerButton(t *testing.T) {
	h, b := newAdminHandler(t, adminOnly(1))
	admin := testutil.User(1)

	if _, err := h.Open(admin); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := h.PickCategory(admin, Event{Kind: EventAdminCategory, CategoryID: "p1"}); err != nil {
		t.Fatalf("PickCategory failed: %v", err)
	}

	// Winner press for a category that is not the one being awaited.
	replies, err := h.PickWinner(admin, Event{Kind: EventAdminWinner, CategoryID: "p2", OptionIndex: 0})
	if err != nil {
		t.Fatalf("PickWinner failed: %v", err)
	}
	if !strings.Contains(replies[0].Text, "BEST PICTURE") {
		t.Errorf("expected the awaited prompt back, got %q", replies[0].Text)
	}

	results, err := store.LoadResults(b)
	if err != nil {
		t.Fatalf("LoadResults failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("stale press must not grade, got %v", results)
	}
}

func TestAdminBackAndDone(t *testing.T) {
	h, _ := newAdminHandler(t, adminOnly(1))
	admin := testutil.User(1)

	if _, err := h.Open(admin); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := h.PickCategory(admin, Event{Kind: EventAdminCategory, CategoryID: "p2"}); err != nil {
		t.Fatalf("PickCategory failed: %v", err)
	}

	replies, err := h.BackToCategories(admin)
	if err != nil {
		t.Fatalf("BackToCategories failed: %v", err)
	}
	if !strings.Contains(replies[0].Text, "Pick a category") {
		t.Errorf("expected the category list, got %q", replies[0].Text)
	}

	if _, err := h.PickCategory(admin, Event{Kind: EventAdminCategory, CategoryID: "p2"}); err != nil {
		t.Fatalf("PickCategory failed: %v", err)
	}
	if _, err := h.PickWinner(admin, Event{Kind: EventAdminWinner, CategoryID: "p2", OptionIndex: 1}); err != nil {
		t.Fatalf("PickWinner failed: %v", err)
	}

	replies, err = h.Done(admin)
	if err != nil {
		t.Fatalf("Done failed: %v", err)
	}
	text := replies[0].Text
	if !strings.Contains(text, "TOTAL 1/2") || !strings.Contains(text, "Best Director: `D`") {
		t.Errorf("unexpected summary %q", text)
	}

	// Done ends the session.
	replies, err = h.PickCategory(admin, Event{Kind: EventAdminCategory, CategoryID: "p1"})
	if err != nil {
		t.Fatalf("PickCategory failed: %v", err)
	}
	if !strings.Contains(replies[0].Text, "No results session in progress") {
		t.Errorf("expected no-session notice, got %q", replies[0].Text)
	}
}

func TestAdminUnknownCategory(t *testing.T) {
	h, _ := newAdminHandler(t, adminOnly(1))
	admin := testutil.User(1)

	if _, err := h.Open(admin); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	replies, err := h.PickCategory(admin, Event{Kind: EventAdminCategory, CategoryID: "nope"})
	if err != nil {
		t.Fatalf("PickCategory failed: %v", err)
	}
	if replies[0].Text != "Invalid selection." {
		t.Errorf("expected rejection, got %q", replies[0].Text)
	}
}

func TestSetDeadlineShow(t *testing.T) {
	h, _ := newAdminHandler(t, adminOnly(1))

	replies, err := h.SetDeadline(testutil.User(1), nil)
	if err != nil {
		t.Fatalf("SetDeadline failed: %v", err)
	}
	text := replies[0].Text
	if !strings.Contains(text, "14.03.2026, 19:00 MSK") || !strings.Contains(text, "(default)") {
		t.Errorf("expected the default deadline with marker, got %q", text)
	}
}

func TestSetDeadlineSetAndReset(t *testing.T) {
	h, b := newAdminHandler(t, adminOnly(1))
	admin := testutil.User(1)

	replies, err := h.SetDeadline(admin, []string{"14.03.2026", "22:00"})
	if err != nil {
		t.Fatalf("SetDeadline failed: %v", err)
	}
	if !strings.Contains(replies[0].Text, "14.03.2026, 22:00 MSK") {
		t.Errorf("unexpected confirmation %q", replies[0].Text)
	}

	cfg, err := store.LoadConfig(b)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.DeadlineUTC != "2026-03-14T19:00:00Z" {
		t.Errorf("expected UTC override persisted, got %q", cfg.DeadlineUTC)
	}

	// The show form no longer carries the default marker.
	replies, err = h.SetDeadline(admin, nil)
	if err != nil {
		t.Fatalf("SetDeadline failed: %v", err)
	}
	if strings.Contains(replies[0].Text, "(default)") {
		t.Errorf("unexpected default marker after override: %q", replies[0].Text)
	}

	replies, err = h.SetDeadline(admin, []string{"off"})
	if err != nil {
		t.Fatalf("SetDeadline failed: %v", err)
	}
	if !strings.Contains(replies[0].Text, "reset to the default") {
		t.Errorf("unexpected reset reply %q", replies[0].Text)
	}
	cfg, err = store.LoadConfig(b)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.DeadlineUTC != "" {
		t.Errorf("expected override cleared, got %q", cfg.DeadlineUTC)
	}
}

func TestSetDeadlineUsage(t *testing.T) {
	h, b := newAdminHandler(t, adminOnly(1))
	admin := testutil.User(1)

	for _, args := range [][]string{
		{"14.03.2026"},
		{"garbage", "22:00"},
		{"14.03.2026", "25:99"},
	} {
		replies, err := h.SetDeadline(admin, args)
		if err != nil {
			t.Fatalf("SetDeadline(%v) failed: %v", args, err)
		}
		if !strings.Contains(replies[0].Text, "Format:") {
			t.Errorf("SetDeadline(%v): expected usage reply, got %q", args, replies[0].Text)
		}
	}

	cfg, err := store.LoadConfig(b)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.DeadlineUTC != "" {
		t.Errorf("bad input must not persist, got %q", cfg.DeadlineUTC)
	}
}

func TestSetDeadlineDenied(t *testing.T) {
	h, _ := newAdminHandler(t, adminOnly(1))

	replies, err := h.SetDeadline(testutil.User(99), []string{"off"})
	if err != nil {
		t.Fatalf("SetDeadline failed: %v", err)
	}
	if replies[0].Text != "Access denied." {
		t.Errorf("expected denial, got %q", replies[0].Text)
	}
}
