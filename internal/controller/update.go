package controller

import (
	"strings"

	"github.com/Freeeeeet/route_order_bot/internal/dialogue"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
)

// toEvent переводит update Telegram в событие диалога.
// false, если update не относится к диалогу (нет текста, не личный чат и т.п.)
func toEvent(update *models.Update) (dialogue.Event, bool) {
	switch {
	case update.Message != nil:
		return messageEvent(update.Message)
	case update.CallbackQuery != nil:
		return callbackEvent(update.CallbackQuery)
	default:
		return dialogue.Event{}, false
	}
}

func messageEvent(msg *models.Message) (dialogue.Event, bool) {
	if msg.From == nil || msg.Text == "" || msg.Chat.Type != models.ChatTypePrivate {
		return dialogue.Event{}, false
	}
	ev := dialogue.Event{
		ID:       uuid.NewString(),
		Kind:     dialogue.EventText,
		UserID:   msg.From.ID,
		ChatID:   msg.Chat.ID,
		Username: msg.From.Username,
		FullName: fullName(msg.From),
		Text:     msg.Text,
	}
	if cmd, ok := parseCommand(msg.Text); ok {
		ev.Kind = dialogue.EventCommand
		ev.Command = cmd
	}
	return ev, true
}

func callbackEvent(cb *models.CallbackQuery) (dialogue.Event, bool) {
	ev := dialogue.Event{
		ID:         uuid.NewString(),
		Kind:       dialogue.EventCallback,
		UserID:     cb.From.ID,
		ChatID:     cb.From.ID,
		Username:   cb.From.Username,
		FullName:   fullName(&cb.From),
		CallbackID: cb.ID,
		Data:       cb.Data,
	}
	switch {
	case cb.Message.Message != nil:
		ev.ChatID = cb.Message.Message.Chat.ID
		ev.Message = &dialogue.MessageRef{ChatID: cb.Message.Message.Chat.ID, MessageID: cb.Message.Message.ID}
	case cb.Message.InaccessibleMessage != nil:
		// сообщение слишком старое, редактировать его нельзя
		ev.ChatID = cb.Message.InaccessibleMessage.Chat.ID
	}
	return ev, true
}

// parseCommand "/start@my_bot arg" -> "start"
func parseCommand(text string) (string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", false
	}
	word, _, _ := strings.Cut(text[1:], " ")
	word, _, _ = strings.Cut(word, "@")
	if word == "" {
		return "", false
	}
	return strings.ToLower(word), true
}

func fullName(u *models.User) string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
