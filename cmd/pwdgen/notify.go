package main

import (
	"log/slog"
)

const (
	MsgCopySuccess = "Password successfully copied to clipboard"
	MsgNoClass     = "You must select at least one character class"
	MsgCopyLocked  = "Copy is locked for a moment, try again shortly"
)

// Notifier emits the toast-style notices shown to the user.
type Notifier struct {
	Logger *slog.Logger
}

func (n Notifier) Success(msg string, args ...any) {
	n.Logger.Info(msg, args...)
}

func (n Notifier) Alert(msg string, err error) {
	n.Logger.Error(msg, "err", err)
}
