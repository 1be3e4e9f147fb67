// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package telegram connects the dispatcher to the Telegram Bot API.

It long-polls for updates, converts messages and button presses into
models.User plus command/callback inputs, and renders models.Reply
values back as sent or edited messages with inline keyboards. The
command menu is registered once at startup.

Nothing outside this package imports the Telegram library.
*/
package telegram
