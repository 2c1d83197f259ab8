package bot

import (
	"context"

	tele "gopkg.in/telebot.v3"

	"cadastrobot/pkg/ui"
)

// chatDisplay shows notifications as chat messages.
type chatDisplay struct {
	bot *tele.Bot
}

func (d *chatDisplay) Show(_ context.Context, target int64, text string) (ui.Banner, error) {
	m, err := d.bot.Send(tele.ChatID(target), text)
	if err != nil {
		return nil, err
	}
	return &chatBanner{bot: d.bot, message: m}, nil
}

type chatBanner struct {
	bot     *tele.Bot
	message *tele.Message
}

func (b *chatBanner) Remove() error {
	return b.bot.Delete(b.message)
}
