package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	tele "gopkg.in/telebot.v3"

	"cadastrobot/pkg/api"
	"cadastrobot/pkg/logger"
	"cadastrobot/pkg/models"
	"cadastrobot/pkg/ui"
	"cadastrobot/pkg/validation"
	"cadastrobot/service"
)

func (b *Bot) handleRegisterStart(c tele.Context) error {
	b.setSearching(c.Sender().ID, false)
	draft, err := b.Svc.Registration().Start(context.Background(), c.Sender().ID, StateNome)
	if err != nil {
		b.Log.Error("failed to start draft", logger.Error(err))
		return c.Send(msg("error"))
	}
	b.Log.Info("registration started", logger.String("draft_id", draft.ID), logger.Int64("telegram_id", c.Sender().ID))
	return b.prompt(c, draft)
}

func (b *Bot) handleCancel(c tele.Context) error {
	if c.Callback() != nil {
		_ = c.Respond()
	}
	ctx := context.Background()
	draft, err := b.loadDraft(c)
	if err != nil {
		return c.Send(msg("error"))
	}
	if draft == nil {
		return c.Send(msg("no_draft"))
	}
	if err := b.Svc.Registration().Cancel(ctx, c.Sender().ID); err != nil {
		b.Log.Error("failed to cancel draft", logger.Error(err))
		return c.Send(msg("error"))
	}
	if err := b.Notifier.Notify(ctx, c.Chat().ID, msg("cancelled"), ui.LevelInfo); err != nil {
		b.Log.Warning("failed to notify", logger.Error(err))
	}
	return b.showMenu(c)
}

// prompt asks for the value of the draft's current step.
func (b *Bot) prompt(c tele.Context, d *models.Draft) error {
	menu := &tele.ReplyMarkup{}
	if skippable(d.State) {
		menu.Inline(menu.Row(menu.Data(msg("btn_skip"), btnSkip.Unique, d.State)))
	}

	switch d.State {
	case StateNome:
		return c.Send(msg("ask_nome"), tele.RemoveKeyboard)
	case StateCPF:
		return c.Send(msg("ask_cpf"))
	case StateCelular:
		return c.Send(msg("ask_celular"))
	case StateNascimento:
		return c.Send(msg("ask_nascimento"), menu)
	case StateVinculo:
		menu.Inline(menu.Row(
			menu.Data("Registrado", btnVinculo.Unique, models.VinculoRegistrado),
			menu.Data("Terceirizado", btnVinculo.Unique, models.VinculoTerceirizado),
		))
		return c.Send(msg("ask_vinculo"), menu)
	case StateValidadeCNH:
		return c.Send(msg("ask_validade_cnh"), menu)
	case StateValidadeCurso:
		return c.Send(msg("ask_validade_cur"), menu)
	case StateConfirm:
		return b.showSummary(c, d)
	}

	if slot, ok := slotOf(d.State); ok {
		return c.Send(fmt.Sprintf(msg("ask_file"), fieldLabels[slot]), menu)
	}
	return b.showMenu(c)
}

// advance stores the draft on its next step and prompts for it.
func (b *Bot) advance(ctx context.Context, c tele.Context, d *models.Draft) error {
	d.State = nextState(d)
	if d.State == StateConfirm {
		d.ReturnToConfirm = false
	}
	if err := b.Svc.Registration().Save(ctx, d); err != nil {
		b.Log.Error("failed to save draft", logger.Error(err), logger.String("draft_id", d.ID))
		return c.Send(msg("error"))
	}
	return b.prompt(c, d)
}

// handleFormInput applies one typed message to the current step. The CPF is
// masked and checked as it is typed; the step only completes on a valid
// number. Everything else is masked, kept and checked again on submission.
func (b *Bot) handleFormInput(ctx context.Context, c tele.Context, d *models.Draft) error {
	text := strings.TrimSpace(c.Text())

	switch d.State {
	case StateNome:
		d.Form.Nome = text
	case StateCPF:
		masked, state := validation.LiveCPF(text)
		switch state {
		case validation.FieldNeutral:
			return c.Send(fmt.Sprintf(msg("cpf_partial"), masked))
		case validation.FieldInvalid:
			return c.Send(fmt.Sprintf(msg("cpf_invalid"), masked))
		}
		d.Form.CPF = masked
		if err := c.Send(fmt.Sprintf(msg("cpf_valid"), masked)); err != nil {
			return err
		}
	case StateCelular:
		d.Form.Celular = validation.MaskPhone(text)
		if err := c.Send(fmt.Sprintf(msg("phone_masked"), d.Form.Celular)); err != nil {
			return err
		}
	case StateNascimento:
		d.Form.DataNascimento = text
	case StateValidadeCNH:
		d.Form.ValidadeCNH = text
	case StateValidadeCurso:
		d.Form.ValidadeCurso = text
	case StateVinculo, StateConfirm:
		return b.prompt(c, d)
	default:
		if _, ok := slotOf(d.State); ok {
			return c.Send(msg("send_file"))
		}
		return b.showMenu(c)
	}

	return b.advance(ctx, c, d)
}

func (b *Bot) handleSkip(c tele.Context) error {
	_ = c.Respond()
	draft, err := b.loadDraft(c)
	if err != nil || !canSkip(draft, c.Data()) {
		return nil
	}
	_ = c.Edit(c.Message().Text)
	return b.advance(context.Background(), c, draft)
}

func (b *Bot) handleVinculo(c tele.Context) error {
	_ = c.Respond()
	draft, err := b.loadDraft(c)
	if err != nil || draft == nil || draft.State != StateVinculo {
		return nil
	}

	switch v := c.Data(); v {
	case models.VinculoRegistrado, models.VinculoTerceirizado:
		draft.Form.TipoVinculo = v
	default:
		return nil
	}
	_ = c.Edit(msg("ask_vinculo") + " " + draft.Form.TipoVinculo)
	return b.advance(context.Background(), c, draft)
}

// showSummary lists the form with every field error at once. Submission is
// only offered when there are none.
func (b *Bot) showSummary(c tele.Context, d *models.Draft) error {
	errs := b.Svc.Registration().Validate(d)

	var sb strings.Builder
	rows := []struct{ field, value string }{
		{models.FieldNome, d.Form.Nome},
		{models.FieldCPF, d.Form.CPF},
		{models.FieldCelular, d.Form.Celular},
		{models.FieldDataNascimento, d.Form.DataNascimento},
		{models.FieldTipoVinculo, d.Form.TipoVinculo},
		{models.FieldValidadeCNH, d.Form.ValidadeCNH},
		{models.FieldValidadeCurso, d.Form.ValidadeCurso},
	}
	for _, r := range rows {
		value := r.value
		if value == "" {
			value = "—"
		}
		fmt.Fprintf(&sb, "<b>%s:</b> %s\n", fieldLabels[r.field], html.EscapeString(value))
		if e, ok := errs[r.field]; ok {
			fmt.Fprintf(&sb, "   ⚠️ <i>%s</i>\n", html.EscapeString(e))
		}
	}
	for _, slot := range models.UploadSlots {
		if f, ok := d.Files[slot]; ok {
			fmt.Fprintf(&sb, "📎 %s: %s (%s)\n", slot, html.EscapeString(f.Name), validation.FormatSize(f.Size))
		}
	}

	menu := &tele.ReplyMarkup{}
	var btns []tele.Row
	if errs.OK() {
		btns = append(btns, menu.Row(
			menu.Data(msg("btn_send"), btnSubmit.Unique),
			menu.Data(msg("btn_abort"), btnAbort.Unique),
		))
	} else {
		sb.WriteString("\n" + html.EscapeString(validation.MsgCorrigirErros))
		for _, field := range errs.Fields() {
			btns = append(btns, menu.Row(menu.Data(fmt.Sprintf(msg("fix_field"), fieldLabels[field]), btnFix.Unique, field)))
		}
		btns = append(btns, menu.Row(menu.Data(msg("btn_abort"), btnAbort.Unique)))
	}
	menu.Inline(btns...)

	return c.Send(fmt.Sprintf(msg("summary"), sb.String()), menu, tele.ModeHTML)
}

func (b *Bot) handleFix(c tele.Context) error {
	_ = c.Respond()
	draft, err := b.loadDraft(c)
	if err != nil || draft == nil {
		return nil
	}
	state, ok := fieldStates[c.Data()]
	if !ok {
		return nil
	}

	draft.State = state
	draft.ReturnToConfirm = true
	if err := b.Svc.Registration().Save(context.Background(), draft); err != nil {
		return c.Send(msg("error"))
	}
	return b.prompt(c, draft)
}

func (b *Bot) handleSubmit(c tele.Context) error {
	_ = c.Respond()
	ctx := context.Background()
	draft, err := b.loadDraft(c)
	if err != nil || draft == nil || draft.State != StateConfirm {
		return nil
	}

	_ = c.Edit(msg("submitting"))

	id, _, err := b.Svc.Registration().Submit(ctx, draft, b.fetcher)
	switch {
	case errors.Is(err, service.ErrInvalidForm):
		return b.showSummary(c, draft)
	case errors.Is(err, api.ErrRejected):
		return c.Send("⚠️ " + msg("register_bounced"))
	case err != nil:
		return c.Send("⚠️ " + msg("register_failed"))
	}

	if err := b.Notifier.Notify(ctx, c.Chat().ID, msg("registered"), ui.LevelSuccess); err != nil {
		b.Log.Warning("failed to notify", logger.Error(err))
	}

	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(menu.URL(msg("btn_open"), b.Svc.Search().DriverURL(id))))
	if err := c.Send(fmt.Sprintf("🆔 %s\n👤 %s", id, draft.Form.Nome), menu); err != nil {
		return err
	}
	return b.showMenu(c)
}
