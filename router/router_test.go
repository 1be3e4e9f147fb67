// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/danielhkuo/picture-perfect/auth"
	"github.com/danielhkuo/picture-perfect/models"
	"github.com/danielhkuo/picture-perfect/router"
	"github.com/danielhkuo/picture-perfect/store"
	"github.com/danielhkuo/picture-perfect/testutil"
)

// newDispatcher builds a dispatcher over a fresh store with the
// deadline pushed far into the future, so the wizard is open no matter
// when the tests run.
func newDispatcher(t *testing.T) (*router.Dispatcher, store.Backend) {
	t.Helper()
	b := testutil.NewBackend(t)
	if err := store.SaveConfig(b, models.BotConfig{DeadlineUTC: "2100-01-01T00:00:00Z"}); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	admins := auth.AdminSet{1: {}}
	return router.New(b, testutil.Catalog(), admins), b
}

func TestUnknownCommandIgnored(t *testing.T) {
	d, _ := newDispatcher(t)

	replies, err := d.Command("weather", testutil.User(42), nil)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if replies != nil {
		t.Errorf("expected unknown command to be ignored, got %+v", replies)
	}
}

func TestInvalidCallback(t *testing.T) {
	d, _ := newDispatcher(t)

	replies, err := d.Callback(testutil.User(42), "predict_x_y")
	if err != nil {
		t.Fatalf("Callback failed: %v", err)
	}
	if len(replies) != 1 || replies[0].Text != "Invalid selection." {
		t.Errorf("expected rejection, got %+v", replies)
	}
}

func TestVotingFlowThroughDispatcher(t *testing.T) {
	d, b := newDispatcher(t)
	user := testutil.User(42)

	replies, err := d.Command("start", user, nil)
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if len(replies) != 2 {
		t.Fatalf("expected intro plus prompt, got %d replies", len(replies))
	}

	for i := 0; i < 2; i++ {
		if _, err := d.Callback(user, fmt.Sprintf("predict_%d_0", i)); err != nil {
			t.Fatalf("predict callback failed: %v", err)
		}
		replies, err = d.Callback(user, fmt.Sprintf("wish_%d_1", i))
		if err != nil {
			t.Fatalf("wish callback failed: %v", err)
		}
	}
	if !strings.Contains(replies[0].Text, "PREDICTIONS RECORDED") {
		t.Errorf("expected the commit summary, got %q", replies[0].Text)
	}

	votes, err := store.LoadVotes(b)
	if err != nil {
		t.Fatalf("LoadVotes failed: %v", err)
	}
	ballot := votes["42"]
	if !ballot.Completed || ballot.Predictions["p1"] != "A" || ballot.Wishes["p2"] != "D" {
		t.Errorf("unexpected stored ballot %+v", ballot)
	}

	replies, err = d.Command("my_votes", user, nil)
	if err != nil {
		t.Fatalf("my_votes failed: %v", err)
	}
	if !strings.Contains(replies[0].Text, "YOUR PREDICTIONS") {
		t.Errorf("unexpected my_votes reply %q", replies[0].Text)
	}
}

func TestAdminFlowThroughDispatcher(t *testing.T) {
	d, b := newDispatcher(t)
	admin := testutil.User(1)

	replies, err := d.Command("admin", admin, nil)
	if err != nil {
		t.Fatalf("admin failed: %v", err)
	}
	if !strings.Contains(replies[0].Text, "ENTERING RESULTS") {
		t.Errorf("expected the editor menu, got %q", replies[0].Text)
	}

	if _, err := d.Callback(admin, "acat_p1"); err != nil {
		t.Fatalf("category callback failed: %v", err)
	}
	if _, err := d.Callback(admin, "awin_p1_1"); err != nil {
		t.Fatalf("winner callback failed: %v", err)
	}
	replies, err = d.Callback(admin, "adone")
	if err != nil {
		t.Fatalf("done callback failed: %v", err)
	}
	if !strings.Contains(replies[0].Text, "TOTAL 1/2") {
		t.Errorf("unexpected summary %q", replies[0].Text)
	}

	results, err := store.LoadResults(b)
	if err != nil {
		t.Fatalf("LoadResults failed: %v", err)
	}
	if results["p1"] != "B" {
		t.Errorf("expected p1 graded as B, got %v", results)
	}

	// Non-admin callers never reach the editor.
	replies, err = d.Command("admin", testutil.User(99), nil)
	if err != nil {
		t.Fatalf("admin failed: %v", err)
	}
	if replies[0].Text != "Access denied." {
		t.Errorf("expected denial, got %q", replies[0].Text)
	}
}

func TestSetDeadlineThroughDispatcher(t *testing.T) {
	d, b := newDispatcher(t)

	replies, err := d.Command("set_deadline", testutil.User(1), []string{"14.03.2099", "22:00"})
	if err != nil {
		t.Fatalf("set_deadline failed: %v", err)
	}
	if !strings.Contains(replies[0].Text, "14.03.2099, 22:00 MSK") {
		t.Errorf("unexpected confirmation %q", replies[0].Text)
	}

	cfg, err := store.LoadConfig(b)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.DeadlineUTC != "2099-03-14T19:00:00Z" {
		t.Errorf("unexpected persisted override %q", cfg.DeadlineUTC)
	}
}

func TestMenuCommands(t *testing.T) {
	cmds := router.MenuCommands()
	if len(cmds) != 4 {
		t.Fatalf("expected 4 menu commands, got %d", len(cmds))
	}
	for _, cmd := range cmds {
		if strings.HasPrefix(cmd.Name, "admin") || cmd.Name == "set_deadline" {
			t.Errorf("admin command %q must stay out of the public menu", cmd.Name)
		}
		if cmd.Description == "" {
			t.Errorf("command %q has no description", cmd.Name)
		}
	}
}
