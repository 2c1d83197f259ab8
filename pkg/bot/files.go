package bot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	tele "gopkg.in/telebot.v3"

	"cadastrobot/pkg/logger"
	"cadastrobot/pkg/models"
	"cadastrobot/pkg/ui"
	"cadastrobot/pkg/validation"
)

// telegramFetcher streams draft files back from Telegram on submission.
type telegramFetcher struct {
	bot *tele.Bot
}

func (f *telegramFetcher) Open(_ context.Context, file models.StoredFile) (io.ReadCloser, error) {
	return f.bot.File(&tele.File{FileID: file.RemoteID})
}

func (b *Bot) handlePhoto(c tele.Context) error {
	photo := c.Message().Photo
	if photo == nil {
		return nil
	}
	return b.receiveFile(c, photo.File, func(slot string) models.FileInfo {
		return models.FileInfo{Name: slot + ".jpg", MIME: "image/jpeg", Size: int64(photo.FileSize)}
	})
}

func (b *Bot) handleDocument(c tele.Context) error {
	doc := c.Message().Document
	if doc == nil {
		return nil
	}
	return b.receiveFile(c, doc.File, func(string) models.FileInfo {
		return models.FileInfo{Name: doc.FileName, MIME: doc.MIME, Size: int64(doc.FileSize)}
	})
}

// receiveFile attaches an upload to the slot the draft is waiting on. A
// rejected file gets a blocking alert and the slot is emptied; an accepted
// one gets a preview with a remove button.
func (b *Bot) receiveFile(c tele.Context, file tele.File, info func(slot string) models.FileInfo) error {
	ctx := context.Background()
	draft, err := b.loadDraft(c)
	if err != nil {
		return c.Send(msg("error"))
	}
	if draft == nil {
		return b.showMenu(c)
	}
	slot, ok := slotOf(draft.State)
	if !ok {
		return b.prompt(c, draft)
	}

	stored := models.StoredFile{FileInfo: info(slot), RemoteID: file.FileID}
	if old, ok := draft.Files[slot]; ok {
		b.deletePreview(old)
	}

	if err := b.Svc.Registration().AttachFile(ctx, draft, slot, stored); err != nil {
		b.Log.Info("file rejected", logger.String("slot", slot), logger.Error(err))
		if err := c.Send("🚫 " + validation.AlertMessage(err)); err != nil {
			return err
		}
		return b.prompt(c, draft)
	}

	preview, err := b.sendPreview(c, slot, stored, file)
	if err != nil {
		b.Log.Warning("failed to send preview", logger.String("slot", slot), logger.Error(err))
	} else {
		stored.PreviewMessageID = preview.ID
		stored.PreviewChatID = preview.Chat.ID
		draft.SetFile(slot, stored)
	}

	return b.advance(ctx, c, draft)
}

// sendPreview shows a thumbnail for images and a name/size card for other
// files, both with a button that removes the file again.
func (b *Bot) sendPreview(c tele.Context, slot string, f models.StoredFile, file tele.File) (*tele.Message, error) {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(menu.Data(msg("btn_remove"), btnRmPreview.Unique, slot)))

	caption := fmt.Sprintf("Arquivo: %s\nTamanho: %s", f.Name, validation.FormatSize(f.Size))
	if !validation.IsImage(f.FileInfo) {
		return b.Bot.Send(c.Recipient(), "📄 "+caption, menu)
	}

	rc, err := b.Bot.File(&file)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	p, err := validation.BuildPreview(f.FileInfo, rc)
	if err != nil {
		return nil, err
	}
	photo := &tele.Photo{File: tele.FromReader(bytes.NewReader(p.PNG)), Caption: p.Caption()}
	return b.Bot.Send(c.Recipient(), photo, menu)
}

// handleRemovePreview drops the previewed file and asks for that slot again.
// Buttons that no longer match the draft only take their message down.
func (b *Bot) handleRemovePreview(c tele.Context) error {
	_ = c.Respond()
	ctx := context.Background()
	slot := c.Data()

	draft, err := b.loadDraft(c)
	if err != nil || draft == nil || !reopenSlot(draft, slot, c.Message().ID) {
		_ = c.Delete()
		return nil
	}

	if _, _, err := b.Svc.Registration().RemoveFile(ctx, draft, slot); err != nil {
		b.Log.Error("failed to remove file", logger.String("slot", slot), logger.Error(err))
		return c.Send(msg("error"))
	}
	if err := c.Delete(); err != nil {
		b.Log.Warning("failed to delete preview", logger.Error(err))
	}
	if err := b.Notifier.Notify(ctx, c.Chat().ID, msg("file_removed"), ui.LevelInfo); err != nil {
		b.Log.Warning("failed to notify", logger.Error(err))
	}
	return b.prompt(c, draft)
}

func (b *Bot) deletePreview(f models.StoredFile) {
	if f.PreviewMessageID == 0 {
		return
	}
	err := b.Bot.Delete(&tele.StoredMessage{MessageID: strconv.Itoa(f.PreviewMessageID), ChatID: f.PreviewChatID})
	if err != nil {
		b.Log.Debug("failed to delete old preview", logger.Error(err))
	}
}
