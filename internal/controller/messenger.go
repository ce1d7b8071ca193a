package controller

import (
	"context"
	"strings"

	"github.com/Freeeeeet/route_order_bot/internal/controller/keyboard"
	"github.com/Freeeeeet/route_order_bot/internal/dialogue"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Messenger отправляет сообщения диалога через Telegram Bot API
type Messenger struct {
	bot *bot.Bot
}

func NewMessenger(b *bot.Bot) *Messenger {
	return &Messenger{bot: b}
}

func (m *Messenger) SendText(ctx context.Context, chatID int64, text string, kb *dialogue.Keyboard) (dialogue.MessageRef, error) {
	disabled := true
	msg, err := m.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:             chatID,
		Text:               text,
		ParseMode:          models.ParseModeHTML,
		ReplyMarkup:        keyboard.Markup(kb),
		LinkPreviewOptions: &models.LinkPreviewOptions{IsDisabled: &disabled},
	})
	if err != nil {
		return dialogue.MessageRef{}, err
	}
	return dialogue.MessageRef{ChatID: msg.Chat.ID, MessageID: msg.ID}, nil
}

// EditText меняет текст; без inline кнопок у сообщения не остаётся кнопок
func (m *Messenger) EditText(ctx context.Context, ref dialogue.MessageRef, text string, kb *dialogue.Keyboard) error {
	params := &bot.EditMessageTextParams{
		ChatID:    ref.ChatID,
		MessageID: ref.MessageID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if inline := keyboard.Inline(kb); inline != nil {
		params.ReplyMarkup = inline
	}
	_, err := m.bot.EditMessageText(ctx, params)
	if isMessageNotModified(err) {
		return nil
	}
	return err
}

func (m *Messenger) EditButtons(ctx context.Context, ref dialogue.MessageRef, kb *dialogue.Keyboard) error {
	markup := keyboard.Inline(kb)
	if markup == nil {
		markup = keyboard.Empty()
	}
	_, err := m.bot.EditMessageReplyMarkup(ctx, &bot.EditMessageReplyMarkupParams{
		ChatID:      ref.ChatID,
		MessageID:   ref.MessageID,
		ReplyMarkup: markup,
	})
	if isMessageNotModified(err) {
		return nil
	}
	return err
}

func (m *Messenger) AnswerCallback(ctx context.Context, callbackID, text string, alert bool) error {
	_, err := m.bot.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       alert,
	})
	return err
}

// SetCommands меню команд для одного чата
func (m *Messenger) SetCommands(ctx context.Context, chatID int64, commands []dialogue.Command) error {
	_, err := m.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: botCommands(commands),
		Scope:    &models.BotCommandScopeChat{ChatID: chatID},
	})
	return err
}

func botCommands(commands []dialogue.Command) []models.BotCommand {
	out := make([]models.BotCommand, 0, len(commands))
	for _, c := range commands {
		out = append(out, models.BotCommand{Command: c.Name, Description: c.Description})
	}
	return out
}

// Telegram отвечает ошибкой, если текст и кнопки не изменились
func isMessageNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
