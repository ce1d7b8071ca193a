package keyboard

import (
	"github.com/Freeeeeet/route_order_bot/internal/dialogue"
	"github.com/go-telegram/bot/models"
)

// Builder собирает inline клавиатуру
type Builder struct {
	rows [][]models.InlineKeyboardButton
}

func NewBuilder() *Builder {
	return &Builder{
		rows: make([][]models.InlineKeyboardButton, 0),
	}
}

// Row добавляет ряд кнопок, пустой ряд пропускается
func (b *Builder) Row(buttons ...models.InlineKeyboardButton) *Builder {
	if len(buttons) > 0 {
		b.rows = append(b.rows, buttons)
	}
	return b
}

// Button создаёт кнопку с callback data
func Button(btn dialogue.Button) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{Text: btn.Text, CallbackData: btn.Data}
}

func (b *Builder) Build() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: b.rows,
	}
}

// Empty клавиатура без кнопок, убирает кнопки у сообщения
func Empty() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{},
	}
}

// Inline переводит inline кнопки диалога в разметку Telegram, nil если кнопок нет
func Inline(kb *dialogue.Keyboard) *models.InlineKeyboardMarkup {
	if kb == nil || len(kb.Inline) == 0 {
		return nil
	}
	b := NewBuilder()
	for _, row := range kb.Inline {
		buttons := make([]models.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			buttons = append(buttons, Button(btn))
		}
		b.Row(buttons...)
	}
	return b.Build()
}

// Markup разметка для нового сообщения.
// Возвращает nil-интерфейс, если кнопок нет: типизированный nil ломает запрос.
func Markup(kb *dialogue.Keyboard) models.ReplyMarkup {
	if inline := Inline(kb); inline != nil {
		return inline
	}
	return nil
}
