// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package telegram

import (
	"context"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/danielhkuo/picture-perfect/models"
	"github.com/danielhkuo/picture-perfect/router"
)

// Bot is the transport edge: it pulls updates from the Telegram API,
// feeds them through the dispatcher and renders the returned replies.
// All domain behavior lives behind the dispatcher; this package only
// translates.
type Bot struct {
	api        *tgbotapi.BotAPI
	dispatcher *router.Dispatcher
}

func New(token string, dispatcher *router.Dispatcher) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{api: api, dispatcher: dispatcher}, nil
}

// Run registers the command menu and processes updates until the
// context is cancelled. Updates are handled sequentially; the store's
// last-write-wins contract relies on that.
func (b *Bot) Run(ctx context.Context) error {
	b.registerCommands()

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	slog.Info("listening for updates", "bot", b.api.Self.UserName)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handle(update)
		}
	}
}

func (b *Bot) registerCommands() {
	menu := router.MenuCommands()
	commands := make([]tgbotapi.BotCommand, 0, len(menu))
	for _, c := range menu {
		commands = append(commands, tgbotapi.BotCommand{Command: c.Name, Description: c.Description})
	}
	if _, err := b.api.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		slog.Warn("failed to register command menu", "error", err)
	}
}

func (b *Bot) handle(update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		q := update.CallbackQuery
		if q.Message == nil {
			return
		}
		// Ack first so the client stops the button spinner.
		if _, err := b.api.Request(tgbotapi.NewCallback(q.ID, "")); err != nil {
			slog.Warn("callback ack failed", "error", err)
		}
		user := models.User{ID: q.From.ID, Name: q.From.FirstName, Username: q.From.UserName}
		replies, err := b.dispatcher.Callback(user, q.Data)
		b.render(q.Message.Chat.ID, q.Message.MessageID, replies, err)

	case update.Message != nil && update.Message.IsCommand():
		m := update.Message
		if m.From == nil {
			return
		}
		user := models.User{ID: m.From.ID, Name: m.From.FirstName, Username: m.From.UserName}
		args := strings.Fields(m.CommandArguments())
		replies, err := b.dispatcher.Command(m.Command(), user, args)
		b.render(m.Chat.ID, 0, replies, err)
	}
}

// render sends or edits messages for each reply. Handler errors were
// already logged by the middleware; the participant gets silence
// rather than a stack trace.
func (b *Bot) render(chatID int64, messageID int, replies []models.Reply, err error) {
	if err != nil {
		return
	}
	for _, r := range replies {
		if r.Edit && messageID != 0 {
			b.edit(chatID, messageID, r)
			continue
		}
		msg := tgbotapi.NewMessage(chatID, r.Text)
		msg.ParseMode = tgbotapi.ModeMarkdown
		if r.Keyboard != nil {
			msg.ReplyMarkup = markup(r.Keyboard)
		}
		if _, err := b.api.Send(msg); err != nil {
			slog.Warn("send failed", "chat_id", chatID, "error", err)
		}
	}
}

func (b *Bot) edit(chatID int64, messageID int, r models.Reply) {
	var edit tgbotapi.EditMessageTextConfig
	if r.Keyboard != nil {
		edit = tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, r.Text, markup(r.Keyboard))
	} else {
		edit = tgbotapi.NewEditMessageText(chatID, messageID, r.Text)
	}
	edit.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(edit); err != nil {
		// "message is not modified" is routine when a stale button
		// re-renders the same prompt.
		slog.Warn("edit failed", "chat_id", chatID, "error", err)
	}
}

func markup(k *models.Keyboard) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(k.Rows))
	for _, row := range k.Rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(btn.Label, btn.Data))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
