// Package ui holds the small presentation helpers shared by the chat and
// console front ends.
package ui

import (
	"context"
	"sync"
	"time"

	"cadastrobot/pkg/logger"
)

// DefaultNotificationTTL is how long a notification stays up.
const DefaultNotificationTTL = 5 * time.Second

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelDanger  Level = "danger"
)

var levelIcons = map[Level]string{
	LevelInfo:    "ℹ️",
	LevelSuccess: "✅",
	LevelWarning: "⚠️",
	LevelDanger:  "❌",
}

// Decorate prefixes message with the icon of its level.
func Decorate(message string, level Level) string {
	icon, ok := levelIcons[level]
	if !ok {
		icon = levelIcons[LevelInfo]
	}
	return icon + " " + message
}

// Banner is a displayed notification that can be taken down.
type Banner interface {
	Remove() error
}

// Display puts a notification on a surface (a chat, a terminal).
type Display interface {
	Show(ctx context.Context, target int64, text string) (Banner, error)
}

// Notifier shows transient notifications and removes them after a TTL.
type Notifier struct {
	display Display
	ttl     time.Duration
	log     logger.ILogger

	mu      sync.Mutex
	pending map[*time.Timer]struct{}
}

func NewNotifier(display Display, ttl time.Duration, log logger.ILogger) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Notifier{
		display: display,
		ttl:     ttl,
		log:     log,
		pending: make(map[*time.Timer]struct{}),
	}
}

// Notify shows message to target and schedules its removal.
func (n *Notifier) Notify(ctx context.Context, target int64, message string, level Level) error {
	banner, err := n.display.Show(ctx, target, Decorate(message, level))
	if err != nil {
		return err
	}

	var t *time.Timer
	n.mu.Lock()
	t = time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		delete(n.pending, t)
		n.mu.Unlock()

		if err := banner.Remove(); err != nil {
			n.log.Warning("failed to remove notification", logger.Int64("target", target), logger.Error(err))
		}
	})
	n.pending[t] = struct{}{}
	n.mu.Unlock()
	return nil
}

// Pending is the number of notifications still on display.
func (n *Notifier) Pending() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.pending)
}

// Stop cancels outstanding removals, leaving those banners in place.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for t := range n.pending {
		t.Stop()
		delete(n.pending, t)
	}
}
