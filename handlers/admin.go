// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/picture-perfect/auth"
	"github.com/danielhkuo/picture-perfect/deadline"
	"github.com/danielhkuo/picture-perfect/models"
	"github.com/danielhkuo/picture-perfect/store"
)

// AdminHandler runs the results editor: pick a category, pick its
// winner, repeat. Each winner pick is an immediate upsert into the
// result store; there is no draft state and no edit history.
type AdminHandler struct {
	store    store.Backend
	catalog  models.Catalog
	admins   auth.AdminSet
	sessions *Sessions
	now      func() time.Time
}

func NewAdminHandler(b store.Backend, catalog models.Catalog, admins auth.AdminSet, sessions *Sessions) *AdminHandler {
	return &AdminHandler{store: b, catalog: catalog, admins: admins, sessions: sessions, now: time.Now}
}

// Open is the /admin entry point.
func (h *AdminHandler) Open(user models.User) ([]models.Reply, error) {
	if !h.admins.Allows(user.ID) {
		return replyText("Access denied."), nil
	}

	results, err := store.LoadResults(h.store)
	if err != nil {
		return nil, err
	}
	h.sessions.StartAdmin(user.ID)
	return []models.Reply{h.categoryList(results, false)}, nil
}

// PickCategory shows the chosen category's options, annotating the
// currently recorded winner if any.
func (h *AdminHandler) PickCategory(user models.User, ev Event) ([]models.Reply, error) {
	sess, replies := h.requireSession(user)
	if sess == nil {
		return replies, nil
	}

	cat, ok := h.catalog.ByID(ev.CategoryID)
	if !ok {
		return invalidSelection(), nil
	}

	results, err := store.LoadResults(h.store)
	if err != nil {
		return nil, err
	}
	sess.AwaitingWinner = cat.ID

	note := ""
	if current, graded := results[cat.ID]; graded {
		note = fmt.Sprintf("\n_Current: %s_", current)
	}
	return []models.Reply{{
		Text:     fmt.Sprintf("*%s*%s\n\nWho won?", strings.ToUpper(cat.Title), note),
		Keyboard: h.winnerKeyboard(cat),
		Edit:     true,
	}}, nil
}

// PickWinner upserts the winner and returns to the category list.
func (h *AdminHandler) PickWinner(user models.User, ev Event) ([]models.Reply, error) {
	sess, replies := h.requireSession(user)
	if sess == nil {
		return replies, nil
	}
	if sess.AwaitingWinner != ev.CategoryID {
		// Stale button; re-render whatever the session is showing.
		return h.currentView(sess)
	}

	cat, ok := h.catalog.ByID(ev.CategoryID)
	if !ok {
		return invalidSelection(), nil
	}
	winner, ok := cat.Option(ev.OptionIndex)
	if !ok {
		return invalidSelection(), nil
	}

	results, err := store.LoadResults(h.store)
	if err != nil {
		return nil, err
	}
	results[cat.ID] = winner
	if err := store.SaveResults(h.store, results); err != nil {
		return nil, err
	}
	sess.AwaitingWinner = ""

	list := h.categoryList(results, true)
	list.Text = fmt.Sprintf("*%s*\n`%s`\n\n%d/%d graded:",
		strings.ToUpper(cat.Title), winner, len(results), len(h.catalog))
	return []models.Reply{list}, nil
}

// BackToCategories leaves the winner prompt without grading.
func (h *AdminHandler) BackToCategories(user models.User) ([]models.Reply, error) {
	sess, replies := h.requireSession(user)
	if sess == nil {
		return replies, nil
	}
	sess.AwaitingWinner = ""

	results, err := store.LoadResults(h.store)
	if err != nil {
		return nil, err
	}
	return []models.Reply{h.categoryList(results, true)}, nil
}

// Done ends the editor with a summary of everything graded so far.
func (h *AdminHandler) Done(user models.User) ([]models.Reply, error) {
	sess, replies := h.requireSession(user)
	if sess == nil {
		return replies, nil
	}

	results, err := store.LoadResults(h.store)
	if err != nil {
		return nil, err
	}
	h.sessions.EndAdmin(user.ID)

	var lines []string
	for _, cat := range h.catalog {
		if winner, graded := results[cat.ID]; graded {
			lines = append(lines, fmt.Sprintf("·  %s: `%s`", cat.Title, winner))
		}
	}
	body := missingMark
	if len(lines) > 0 {
		body = strings.Join(lines, "\n")
	}
	return editText(fmt.Sprintf("*TOTAL %d/%d*\n\n%s\n\n_/leaderboard is open to everyone_",
		len(results), len(h.catalog), body)), nil
}

// Cancel abandons the editor session.
func (h *AdminHandler) Cancel(user models.User) ([]models.Reply, error) {
	h.sessions.EndAdmin(user.ID)
	return replyText("Results entry cancelled."), nil
}

// SetDeadline implements /set_deadline: no arguments shows the
// effective deadline, "off" clears the override, a date and time pair
// in display-offset wall time sets it.
func (h *AdminHandler) SetDeadline(user models.User, args []string) ([]models.Reply, error) {
	if !h.admins.Allows(user.ID) {
		return replyText("Access denied."), nil
	}

	dl, cfg, err := effectiveDeadline(h.store)
	if err != nil {
		return nil, err
	}

	if len(args) == 0 {
		source := ""
		if cfg.DeadlineUTC == "" {
			source = " _(default)_"
		}
		return replyText(fmt.Sprintf(
			"Deadline: *%s*%s\n\nChange: `/set_deadline 14.03.2026 22:00`\nReset: `/set_deadline off`",
			deadline.FormatLocal(dl), source)), nil
	}

	if strings.EqualFold(args[0], "off") {
		cfg.DeadlineUTC = ""
		if err := store.SaveConfig(h.store, cfg); err != nil {
			return nil, err
		}
		return replyText(fmt.Sprintf("Deadline reset to the default: *%s*",
			deadline.FormatLocal(deadline.Default))), nil
	}

	if len(args) < 2 {
		return replyText("Format: `/set_deadline 14.03.2026 22:00`"), nil
	}
	t, err := deadline.ParseLocal(args[0], args[1])
	if err != nil {
		return replyText("Format: `/set_deadline 14.03.2026 22:00`"), nil
	}

	cfg.DeadlineUTC = t.Format(time.RFC3339)
	if err := store.SaveConfig(h.store, cfg); err != nil {
		return nil, err
	}
	return replyText(fmt.Sprintf("Deadline: *%s*", deadline.FormatLocal(t))), nil
}

// requireSession checks access and an open editor session. On failure
// it returns nil and the replies to send instead.
func (h *AdminHandler) requireSession(user models.User) (*adminSession, []models.Reply) {
	if !h.admins.Allows(user.ID) {
		return nil, replyText("Access denied.")
	}
	sess, ok := h.sessions.Admin(user.ID)
	if !ok {
		return nil, replyText("No results session in progress. /admin to begin.")
	}
	return sess, nil
}

func (h *AdminHandler) currentView(sess *adminSession) ([]models.Reply, error) {
	results, err := store.LoadResults(h.store)
	if err != nil {
		return nil, err
	}
	if sess.AwaitingWinner == "" {
		return []models.Reply{h.categoryList(results, true)}, nil
	}
	cat, ok := h.catalog.ByID(sess.AwaitingWinner)
	if !ok {
		sess.AwaitingWinner = ""
		return []models.Reply{h.categoryList(results, true)}, nil
	}
	return []models.Reply{{
		Text:     fmt.Sprintf("*%s*\n\nWho won?", strings.ToUpper(cat.Title)),
		Keyboard: h.winnerKeyboard(cat),
		Edit:     true,
	}}, nil
}

// categoryList renders the category menu with graded markers.
func (h *AdminHandler) categoryList(results models.ResultDoc, edit bool) models.Reply {
	rows := make([][]models.Button, 0, len(h.catalog)+1)
	for _, cat := range h.catalog {
		mark := "·  "
		if _, graded := results[cat.ID]; graded {
			mark = "✓  "
		}
		rows = append(rows, []models.Button{{Label: mark + cat.Title, Data: adminCatData(cat.ID)}})
	}
	rows = append(rows, []models.Button{{Label: "— Done —", Data: dataAdminDone}})

	return models.Reply{
		Text:     fmt.Sprintf("*ENTERING RESULTS*  ·  %d/%d\n\nPick a category:", len(results), len(h.catalog)),
		Keyboard: &models.Keyboard{Rows: rows},
		Edit:     edit,
	}
}

func (h *AdminHandler) winnerKeyboard(cat models.Category) *models.Keyboard {
	rows := make([][]models.Button, 0, len(cat.Options)+1)
	for i, opt := range cat.Options {
		rows = append(rows, []models.Button{{Label: opt, Data: adminWinData(cat.ID, i)}})
	}
	rows = append(rows, []models.Button{{Label: "← Back", Data: dataAdminBack}})
	return &models.Keyboard{Rows: rows}
}
