package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	tele "gopkg.in/telebot.v3"

	"cadastrobot/config"
	"cadastrobot/pkg/logger"
	"cadastrobot/pkg/models"
	"cadastrobot/pkg/search"
	"cadastrobot/pkg/ui"
	"cadastrobot/service"
)

// Inline button endpoints. Payloads travel in the callback data.
var (
	btnSkip      = tele.Btn{Unique: "skip"}
	btnVinculo   = tele.Btn{Unique: "vinculo"}
	btnSubmit    = tele.Btn{Unique: "submit"}
	btnAbort     = tele.Btn{Unique: "abort"}
	btnFix       = tele.Btn{Unique: "fix"}
	btnRmPreview = tele.Btn{Unique: "rm_preview"}
	btnPage      = tele.Btn{Unique: "page"}
	btnDriver    = tele.Btn{Unique: "driver"}
	btnPrint     = tele.Btn{Unique: "print"}
	btnStatus    = tele.Btn{Unique: "status"}
)

type Bot struct {
	Bot      *tele.Bot
	Log      logger.ILogger
	Cfg      *config.Config
	Svc      service.IServiceManager
	Notifier *ui.Notifier

	fetcher service.FileFetcher

	mu        sync.Mutex
	searching map[int64]bool
	results   map[int64]*searchView
}

// searchView is the last result list shown in a chat.
type searchView struct {
	result  search.Result
	message *tele.Message
}

func New(cfg *config.Config, svc service.IServiceManager, log logger.ILogger) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.TelegramBotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			log.Error("handler failed", logger.Error(err))
		},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		Bot:       b,
		Log:       log,
		Cfg:       cfg,
		Svc:       svc,
		Notifier:  ui.NewNotifier(&chatDisplay{bot: b}, cfg.NotificationTTL, log),
		fetcher:   &telegramFetcher{bot: b},
		searching: make(map[int64]bool),
		results:   make(map[int64]*searchView),
	}
	bot.registerHandlers()
	return bot, nil
}

func (b *Bot) Start() {
	b.Log.Info(fmt.Sprintf("🤖 %s started as @%s", b.Cfg.ServiceName, b.Bot.Me.Username))
	b.Bot.Start()
}

func (b *Bot) Stop() {
	b.Bot.Stop()
	b.Notifier.Stop()
}

func (b *Bot) registerHandlers() {
	b.Bot.Handle("/start", b.handleStart)
	b.Bot.Handle("/cadastrar", b.handleRegisterStart)
	b.Bot.Handle("/buscar", b.handleSearchCommand)
	b.Bot.Handle("/cancelar", b.handleCancel)

	b.Bot.Handle(msg("btn_register"), b.handleRegisterStart)
	b.Bot.Handle(msg("btn_search"), b.handleSearchStart)
	b.Bot.Handle(msg("btn_cancel"), b.handleCancel)

	b.Bot.Handle(&btnSkip, b.handleSkip)
	b.Bot.Handle(&btnVinculo, b.handleVinculo)
	b.Bot.Handle(&btnSubmit, b.handleSubmit)
	b.Bot.Handle(&btnAbort, b.handleCancel)
	b.Bot.Handle(&btnFix, b.handleFix)
	b.Bot.Handle(&btnRmPreview, b.handleRemovePreview)
	b.Bot.Handle(&btnPage, b.handlePage)
	b.Bot.Handle(&btnDriver, b.handleDriver)
	b.Bot.Handle(&btnPrint, b.handlePrint)
	b.Bot.Handle(&btnStatus, b.handleStatus)

	b.Bot.Handle(tele.OnPhoto, b.handlePhoto)
	b.Bot.Handle(tele.OnDocument, b.handleDocument)
	b.Bot.Handle(tele.OnText, b.handleText)
}

func (b *Bot) handleStart(c tele.Context) error {
	b.setSearching(c.Sender().ID, false)
	if err := c.Send(msg("welcome")); err != nil {
		return err
	}
	return b.showMenu(c)
}

func (b *Bot) showMenu(c tele.Context) error {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(msg("btn_register")), menu.Text(msg("btn_search"))),
		menu.Row(menu.Text(msg("btn_cancel"))),
	)
	return c.Send(msg("menu"), menu)
}

// handleText routes free text to a pending search or to the current form
// step.
func (b *Bot) handleText(c tele.Context) error {
	if b.takeSearching(c.Sender().ID) {
		return b.runSearch(c, c.Text())
	}

	ctx := context.Background()
	draft, err := b.Svc.Registration().Get(ctx, c.Sender().ID)
	if err != nil {
		b.Log.Error("failed to load draft", logger.Error(err), logger.Int64("telegram_id", c.Sender().ID))
		return c.Send(msg("error"))
	}
	if draft == nil || draft.State == StateIdle {
		return b.showMenu(c)
	}
	return b.handleFormInput(ctx, c, draft)
}

func (b *Bot) setSearching(id int64, on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if on {
		b.searching[id] = true
		return
	}
	delete(b.searching, id)
}

func (b *Bot) takeSearching(id int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	on := b.searching[id]
	delete(b.searching, id)
	return on
}

func (b *Bot) loadDraft(c tele.Context) (*models.Draft, error) {
	draft, err := b.Svc.Registration().Get(context.Background(), c.Sender().ID)
	if err != nil {
		b.Log.Error("failed to load draft", logger.Error(err), logger.Int64("telegram_id", c.Sender().ID))
		return nil, err
	}
	return draft, nil
}
