// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"

	"github.com/danielhkuo/picture-perfect/auth"
	"github.com/danielhkuo/picture-perfect/handlers"
	"github.com/danielhkuo/picture-perfect/middleware"
	"github.com/danielhkuo/picture-perfect/models"
	"github.com/danielhkuo/picture-perfect/store"
)

type callbackFunc func(user models.User, ev handlers.Event) ([]models.Reply, error)

// Dispatcher routes incoming interactions: command names to command
// handlers, callback payloads (decoded once into typed events) to
// wizard transitions.
type Dispatcher struct {
	vote     *handlers.VoteHandler
	admin    *handlers.AdminHandler
	reports  *handlers.ReportHandler
	commands map[string]middleware.HandlerFunc
}

func New(backend store.Backend, catalog models.Catalog, admins auth.AdminSet) *Dispatcher {
	sessions := handlers.NewSessions()

	d := &Dispatcher{
		vote:    handlers.NewVoteHandler(backend, catalog, sessions),
		admin:   handlers.NewAdminHandler(backend, catalog, admins, sessions),
		reports: handlers.NewReportHandler(backend, catalog),
	}

	d.commands = map[string]middleware.HandlerFunc{
		"start":        wrap("start", func(u models.User, _ []string) ([]models.Reply, error) { return d.vote.Start(u) }),
		"cancel":       wrap("cancel", func(u models.User, _ []string) ([]models.Reply, error) { return d.vote.Cancel(u) }),
		"my_votes":     wrap("my_votes", func(u models.User, _ []string) ([]models.Reply, error) { return d.reports.MyVotes(u) }),
		"leaderboard":  wrap("leaderboard", func(u models.User, _ []string) ([]models.Reply, error) { return d.reports.Leaderboard(u) }),
		"stats":        wrap("stats", func(u models.User, _ []string) ([]models.Reply, error) { return d.reports.Stats(u) }),
		"admin":        wrap("admin", func(u models.User, _ []string) ([]models.Reply, error) { return d.admin.Open(u) }),
		"admin_cancel": wrap("admin_cancel", func(u models.User, _ []string) ([]models.Reply, error) { return d.admin.Cancel(u) }),
		"set_deadline": wrap("set_deadline", d.admin.SetDeadline),
	}

	return d
}

// Command dispatches a slash command. Unknown commands are ignored,
// matching the usual bot convention of not answering chatter.
func (d *Dispatcher) Command(name string, user models.User, args []string) ([]models.Reply, error) {
	h, ok := d.commands[name]
	if !ok {
		return nil, nil
	}
	return h(user, args)
}

// Callback dispatches a button press. Payloads that do not decode get
// an "invalid selection" reply and are otherwise ignored.
func (d *Dispatcher) Callback(user models.User, data string) ([]models.Reply, error) {
	ev, err := handlers.ParseCallback(data)
	if err != nil {
		slog.Warn("invalid callback payload", "user_id", user.ID, "data", data)
		return []models.Reply{{Text: "Invalid selection."}}, nil
	}

	op, fn := d.route(ev)
	h := wrap(op, func(u models.User, _ []string) ([]models.Reply, error) {
		return fn(u, ev)
	})
	return h(user, nil)
}

func (d *Dispatcher) route(ev handlers.Event) (string, callbackFunc) {
	switch ev.Kind {
	case handlers.EventPredict:
		return "predict", d.vote.Predict
	case handlers.EventWish:
		return "wish", d.vote.Wish
	case handlers.EventBack:
		return "back", d.vote.Back
	case handlers.EventRevote:
		return "revote", func(u models.User, _ handlers.Event) ([]models.Reply, error) { return d.vote.Revote(u) }
	case handlers.EventShowVotes:
		return "showvotes", func(u models.User, _ handlers.Event) ([]models.Reply, error) { return d.vote.ShowVotes(u) }
	case handlers.EventAdminCategory:
		return "admin_category", d.admin.PickCategory
	case handlers.EventAdminWinner:
		return "admin_winner", d.admin.PickWinner
	case handlers.EventAdminBack:
		return "admin_back", func(u models.User, _ handlers.Event) ([]models.Reply, error) { return d.admin.BackToCategories(u) }
	default: // EventAdminDone
		return "admin_done", func(u models.User, _ handlers.Event) ([]models.Reply, error) { return d.admin.Done(u) }
	}
}

func wrap(op string, h middleware.HandlerFunc) middleware.HandlerFunc {
	return middleware.WithLogging(op, middleware.WithRecovery(op, h))
}

// MenuCommands lists the commands surfaced in the client's "/" menu.
// Admin commands stay out of the public menu on purpose.
func MenuCommands() []models.BotCommand {
	return []models.BotCommand{
		{Name: "start", Description: "Take part in the predictions"},
		{Name: "my_votes", Description: "My predictions"},
		{Name: "leaderboard", Description: "Standings"},
		{Name: "stats", Description: "Voting statistics"},
	}
}
