package ui

import (
	"context"

	"github.com/atotto/clipboard"

	"cadastrobot/pkg/logger"
)

const (
	MsgCopied     = "Texto copiado para a área de transferência!"
	MsgCopyFailed = "Erro ao copiar texto"
)

// Clipboard writes text to the system clipboard.
type Clipboard struct {
	write    func(string) error
	notifier *Notifier
	log      logger.ILogger
}

func NewClipboard(notifier *Notifier, log logger.ILogger) *Clipboard {
	return &Clipboard{write: clipboard.WriteAll, notifier: notifier, log: log}
}

// Copy copies text and reports the outcome as a notification.
func (c *Clipboard) Copy(ctx context.Context, target int64, text string) error {
	if err := c.write(text); err != nil {
		c.log.Error("Erro ao copiar texto", logger.Error(err))
		if nerr := c.notifier.Notify(ctx, target, MsgCopyFailed, LevelDanger); nerr != nil {
			c.log.Warning("failed to notify", logger.Error(nerr))
		}
		return err
	}
	return c.notifier.Notify(ctx, target, MsgCopied, LevelSuccess)
}
