package ui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cadastrobot/pkg/logger"
)

type fakeBanner struct {
	mu      sync.Mutex
	removed bool
}

func (b *fakeBanner) Remove() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.removed = true
	return nil
}

func (b *fakeBanner) isRemoved() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.removed
}

type fakeDisplay struct {
	mu      sync.Mutex
	shown   []string
	banners []*fakeBanner
	err     error
}

func (d *fakeDisplay) Show(_ context.Context, _ int64, text string) (Banner, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return nil, d.err
	}
	b := &fakeBanner{}
	d.shown = append(d.shown, text)
	d.banners = append(d.banners, b)
	return b, nil
}

func TestNotifyRemovesAfterTTL(t *testing.T) {
	d := &fakeDisplay{}
	n := NewNotifier(d, 20*time.Millisecond, logger.Nop())

	require.NoError(t, n.Notify(context.Background(), 1, "Motorista cadastrado com sucesso!", LevelSuccess))
	require.Len(t, d.shown, 1)
	assert.Equal(t, "✅ Motorista cadastrado com sucesso!", d.shown[0])
	assert.Equal(t, 1, n.Pending())

	assert.Eventually(t, d.banners[0].isRemoved, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return n.Pending() == 0 }, time.Second, 5*time.Millisecond)
}

func TestNotifyStopKeepsBanners(t *testing.T) {
	d := &fakeDisplay{}
	n := NewNotifier(d, time.Hour, logger.Nop())

	require.NoError(t, n.Notify(context.Background(), 1, "a", LevelInfo))
	n.Stop()
	assert.Equal(t, 0, n.Pending())
	assert.False(t, d.banners[0].isRemoved())
}

func TestNotifyDisplayError(t *testing.T) {
	n := NewNotifier(&fakeDisplay{err: errors.New("chat not found")}, 0, logger.Nop())
	assert.Error(t, n.Notify(context.Background(), 1, "x", LevelInfo))
	assert.Equal(t, 0, n.Pending())
}

func TestDecorateUnknownLevel(t *testing.T) {
	assert.Equal(t, "ℹ️ oi", Decorate("oi", Level("primary")))
}

func TestClipboardCopy(t *testing.T) {
	d := &fakeDisplay{}
	n := NewNotifier(d, time.Hour, logger.Nop())
	defer n.Stop()

	var copied string
	c := NewClipboard(n, logger.Nop())
	c.write = func(s string) error { copied = s; return nil }

	require.NoError(t, c.Copy(context.Background(), 1, "111.444.777-35"))
	assert.Equal(t, "111.444.777-35", copied)
	assert.Equal(t, []string{"✅ " + MsgCopied}, d.shown)

	c.write = func(string) error { return errors.New("no clipboard utility") }
	assert.Error(t, c.Copy(context.Background(), 1, "x"))
	assert.Equal(t, "❌ "+MsgCopyFailed, d.shown[1])
}

func TestScrollTopVisible(t *testing.T) {
	assert.False(t, ScrollTopVisible(0))
	assert.False(t, ScrollTopVisible(300))
	assert.True(t, ScrollTopVisible(301))
}
