package controller

import (
	"testing"

	"github.com/Freeeeeet/route_order_bot/internal/dialogue"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func privateMessage(text string) *models.Update {
	return &models.Update{Message: &models.Message{
		ID:   10,
		From: &models.User{ID: 42, FirstName: "Ali", LastName: "Valiyev", Username: "ali"},
		Chat: models.Chat{ID: 42, Type: models.ChatTypePrivate},
		Text: text,
	}}
}

func TestToEventText(t *testing.T) {
	ev, ok := toEvent(privateMessage("Tashkent, street 5"))

	require.True(t, ok)
	assert.Equal(t, dialogue.EventText, ev.Kind)
	assert.Equal(t, int64(42), ev.UserID)
	assert.Equal(t, int64(42), ev.ChatID)
	assert.Equal(t, "Ali Valiyev", ev.FullName)
	assert.Equal(t, "ali", ev.Username)
	assert.Equal(t, "Tashkent, street 5", ev.Text)
	assert.NotEmpty(t, ev.ID)
}

func TestToEventCommand(t *testing.T) {
	ev, ok := toEvent(privateMessage("/Start@route_order_bot payload"))

	require.True(t, ok)
	assert.Equal(t, dialogue.EventCommand, ev.Kind)
	assert.Equal(t, dialogue.CmdStart, ev.Command)
}

func TestToEventIgnoresGroupsAndEmpty(t *testing.T) {
	group := privateMessage("/start")
	group.Message.Chat.Type = models.ChatTypeGroup
	_, ok := toEvent(group)
	assert.False(t, ok)

	_, ok = toEvent(privateMessage(""))
	assert.False(t, ok)

	_, ok = toEvent(&models.Update{})
	assert.False(t, ok)
}

func TestToEventCallback(t *testing.T) {
	update := &models.Update{CallbackQuery: &models.CallbackQuery{
		ID:   "cb-1",
		From: models.User{ID: 42, FirstName: "Ali"},
		Data: "year_2025",
		Message: models.MaybeInaccessibleMessage{
			Message: &models.Message{ID: 77, Chat: models.Chat{ID: 42}},
		},
	}}

	ev, ok := toEvent(update)

	require.True(t, ok)
	assert.Equal(t, dialogue.EventCallback, ev.Kind)
	assert.Equal(t, "cb-1", ev.CallbackID)
	assert.Equal(t, "year_2025", ev.Data)
	require.NotNil(t, ev.Message)
	assert.Equal(t, dialogue.MessageRef{ChatID: 42, MessageID: 77}, *ev.Message)
}

func TestToEventCallbackWithoutMessage(t *testing.T) {
	update := &models.Update{CallbackQuery: &models.CallbackQuery{
		ID:   "cb-2",
		From: models.User{ID: 42},
		Data: "confirm",
	}}

	ev, ok := toEvent(update)

	require.True(t, ok)
	assert.Nil(t, ev.Message)
	assert.Equal(t, int64(42), ev.ChatID)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"/start", "start", true},
		{"/adminhelp extra", "adminhelp", true},
		{"/stats@bot", "stats", true},
		{"/", "", false},
		{"start", "", false},
	}
	for _, tt := range tests {
		got, ok := parseCommand(tt.text)
		assert.Equal(t, tt.ok, ok, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}
}
