package controller

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Freeeeeet/route_order_bot/internal/dialogue"
	"github.com/Freeeeeet/route_order_bot/internal/session"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingHandler struct {
	mu     sync.Mutex
	events []dialogue.Event
	err    error
}

func (h *recordingHandler) Handle(_ context.Context, ev dialogue.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, ev)
	return h.err
}

func TestDispatchRunsEveryEvent(t *testing.T) {
	handler := &recordingHandler{err: errors.New("boom")}
	c := NewBotController(nil, handler, session.NewSerializer(), zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.dispatch(context.Background(), dialogue.Event{Kind: dialogue.EventText, UserID: int64(i % 3)})
		}(i)
	}
	wg.Wait()

	assert.Len(t, handler.events, 20)
}
