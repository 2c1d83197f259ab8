package bot

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	tele "gopkg.in/telebot.v3"

	"cadastrobot/pkg/logger"
	"cadastrobot/pkg/models"
	"cadastrobot/pkg/search"
	"cadastrobot/pkg/ui"
)

func (b *Bot) handleSearchStart(c tele.Context) error {
	b.setSearching(c.Sender().ID, true)
	return c.Send(msg("ask_search"))
}

// handleSearchCommand runs "/buscar <termo>" directly, or waits for the
// term when none was given.
func (b *Bot) handleSearchCommand(c tele.Context) error {
	if strings.TrimSpace(c.Message().Payload) == "" {
		return b.handleSearchStart(c)
	}
	return b.runSearch(c, c.Message().Payload)
}

// runSearch replaces the chat's previous result list. A blank query only
// clears it; otherwise a loading placeholder is shown and edited into the
// first page of results.
func (b *Bot) runSearch(c tele.Context, query string) error {
	chatID := c.Chat().ID
	b.clearResults(chatID)

	if strings.TrimSpace(query) == "" {
		return nil
	}

	placeholder, err := b.Bot.Send(c.Recipient(), "⏳ "+search.MsgLoading)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.Cfg.HTTPTimeout)
	defer cancel()
	result := b.Svc.Search().Search(ctx, query)

	view := &searchView{result: result, message: placeholder}
	b.mu.Lock()
	b.results[chatID] = view
	b.mu.Unlock()

	return b.showPage(view, 0)
}

func (b *Bot) clearResults(chatID int64) {
	b.mu.Lock()
	view, ok := b.results[chatID]
	delete(b.results, chatID)
	b.mu.Unlock()

	if ok && view.message != nil {
		if err := b.Bot.Delete(view.message); err != nil {
			b.Log.Debug("failed to clear results", logger.Error(err))
		}
	}
}

func (b *Bot) showPage(view *searchView, page int) error {
	text := search.RenderHTML(view.result, page, b.Svc.Search().DriverURL)
	markup := b.pageMarkup(view.result, page)
	_, err := b.Bot.Edit(view.message, text, markup, tele.ModeHTML, tele.NoPreview)
	return err
}

// pageMarkup lists the drivers of page as buttons, plus paging and, once
// the reader is far enough down the list, a button back to the top.
func (b *Bot) pageMarkup(r search.Result, page int) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	if r.Kind != search.ResultFound {
		return menu
	}

	from, to := search.PageBounds(len(r.Drivers), page)
	page = from / search.PageSize

	var rows []tele.Row
	for _, d := range r.Drivers[from:to] {
		rows = append(rows, menu.Row(menu.Data("👤 "+d.Nome, btnDriver.Unique, d.ID)))
	}

	var nav []tele.Btn
	if page > 0 {
		nav = append(nav, menu.Data(msg("btn_prev"), btnPage.Unique, strconv.Itoa(page-1)))
	}
	if page < search.Pages(len(r.Drivers))-1 {
		nav = append(nav, menu.Data(msg("btn_next"), btnPage.Unique, strconv.Itoa(page+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, menu.Row(nav...))
	}
	if ui.ScrollTopVisible(pageOffset(r, page, b.Svc.Search().DriverURL)) {
		rows = append(rows, menu.Row(menu.Data(msg("btn_top"), btnPage.Unique, "0")))
	}

	menu.Inline(rows...)
	return menu
}

// pageOffset is how far page sits in the full result transcript, counted
// in characters of the pages before it.
func pageOffset(r search.Result, page int, link search.LinkFunc) int {
	offset := 0
	for p := 0; p < page; p++ {
		offset += utf8.RuneCountInString(search.RenderHTML(r, p, link))
	}
	return offset
}

func (b *Bot) currentView(chatID int64) *searchView {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.results[chatID]
}

func (b *Bot) handlePage(c tele.Context) error {
	_ = c.Respond()
	view := b.currentView(c.Chat().ID)
	if view == nil {
		return c.Send(msg("search_expired"))
	}
	page, err := strconv.Atoi(c.Data())
	if err != nil {
		return nil
	}
	return b.showPage(view, page)
}

// findDriver copies driver id out of the chat's last result list. On a miss
// it returns the message key to answer with.
func (b *Bot) findDriver(chatID int64, id string) (models.Driver, string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	view := b.results[chatID]
	if view == nil {
		return models.Driver{}, "search_expired"
	}
	for _, d := range view.result.Drivers {
		if d.ID == id {
			return d, ""
		}
	}
	return models.Driver{}, "driver_missing"
}

// setDriverStatus records a status change in the cached result list and
// returns the updated copy.
func (b *Bot) setDriverStatus(chatID int64, id, status string) (models.Driver, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	view := b.results[chatID]
	if view == nil {
		return models.Driver{}, false
	}
	for i := range view.result.Drivers {
		if view.result.Drivers[i].ID == id {
			view.result.Drivers[i].Status = status
			return view.result.Drivers[i], true
		}
	}
	return models.Driver{}, false
}

func (b *Bot) handleDriver(c tele.Context) error {
	_ = c.Respond()
	d, miss := b.findDriver(c.Chat().ID, c.Data())
	if miss != "" {
		return c.Send(msg(miss))
	}
	return c.Send(driverCard(d, time.Now()), b.cardMarkup(d), tele.ModeHTML)
}

func (b *Bot) cardMarkup(d models.Driver) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}

	toggle := menu.Data(msg("btn_deactivate"), btnStatus.Unique, d.ID, models.StatusInativo)
	if d.Status == models.StatusInativo {
		toggle = menu.Data(msg("btn_activate"), btnStatus.Unique, d.ID, models.StatusAtivo)
	}

	menu.Inline(
		menu.Row(menu.URL(msg("btn_open"), b.Svc.Search().DriverURL(d.ID))),
		menu.Row(menu.Data(msg("btn_print"), btnPrint.Unique, d.ID), toggle),
	)
	return menu
}

// handlePrint sends the driver sheet as a text document to print or keep.
func (b *Bot) handlePrint(c tele.Context) error {
	_ = c.Respond()
	d, miss := b.findDriver(c.Chat().ID, c.Data())
	if miss != "" {
		return c.Send(msg(miss))
	}

	doc := &tele.Document{
		File:     tele.FromReader(bytes.NewReader([]byte(driverSheet(d, time.Now())))),
		FileName: fmt.Sprintf("motorista_%s.txt", d.ID),
		MIME:     "text/plain",
		Caption:  d.Nome,
	}
	return c.Send(doc)
}

func (b *Bot) handleStatus(c tele.Context) error {
	_ = c.Respond()
	args := c.Args()
	if len(args) != 2 {
		return nil
	}
	id, status := args[0], args[1]

	ctx, cancel := context.WithTimeout(context.Background(), b.Cfg.HTTPTimeout)
	defer cancel()

	message, err := b.Svc.Search().SetStatus(ctx, id, status)
	if err != nil {
		b.Log.Error("failed to set status", logger.String("driver_id", id), logger.Error(err))
		return b.Notifier.Notify(context.Background(), c.Chat().ID, msg("error"), ui.LevelDanger)
	}

	if d, ok := b.setDriverStatus(c.Chat().ID, id, status); ok {
		if err := c.Edit(driverCard(d, time.Now()), b.cardMarkup(d), tele.ModeHTML); err != nil {
			b.Log.Debug("failed to refresh card", logger.Error(err))
		}
	}
	if message == "" {
		message = "Status atualizado."
	}
	return b.Notifier.Notify(context.Background(), c.Chat().ID, message, ui.LevelSuccess)
}
