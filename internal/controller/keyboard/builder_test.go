package keyboard

import (
	"testing"

	"github.com/Freeeeeet/route_order_bot/internal/dialogue"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkupInline(t *testing.T) {
	kb := &dialogue.Keyboard{Inline: [][]dialogue.Button{
		{{Text: "Odam", Data: "person"}, {Text: "Pochta", Data: "cargo"}},
		{{Text: "✅ Tasdiqlash", Data: "confirm"}},
	}}

	markup, ok := Markup(kb).(*models.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, markup.InlineKeyboard, 2)
	assert.Equal(t, models.InlineKeyboardButton{Text: "Pochta", CallbackData: "cargo"}, markup.InlineKeyboard[0][1])
	assert.Equal(t, models.InlineKeyboardButton{Text: "✅ Tasdiqlash", CallbackData: "confirm"}, markup.InlineKeyboard[1][0])
}

func TestMarkupNil(t *testing.T) {
	assert.Nil(t, Markup(nil))
	assert.Nil(t, Markup(&dialogue.Keyboard{}))
	assert.Nil(t, Inline(&dialogue.Keyboard{Inline: [][]dialogue.Button{}}))
}

func TestBuilderSkipsEmptyRows(t *testing.T) {
	markup := NewBuilder().Row().Row(Button(dialogue.Button{Text: "a", Data: "b"})).Build()

	assert.Len(t, markup.InlineKeyboard, 1)
	assert.NotNil(t, Empty().InlineKeyboard)
}
