package dialogue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Freeeeeet/route_order_bot/internal/conversation"
	"github.com/Freeeeeet/route_order_bot/internal/model"
	"github.com/Freeeeeet/route_order_bot/internal/session"
	"go.uber.org/zap"
)

type sentMessage struct {
	ChatID int64
	Text   string
	KB     *Keyboard
}

type editedMessage struct {
	Ref         MessageRef
	Text        string
	KB          *Keyboard
	ButtonsOnly bool
}

type callbackAnswer struct {
	ID    string
	Text  string
	Alert bool
}

type fakeMessenger struct {
	mu       sync.Mutex
	nextID   int
	sent     []sentMessage
	edits    []editedMessage
	answers  []callbackAnswer
	commands map[int64][]Command
	failChat map[int64]error
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{commands: map[int64][]Command{}, failChat: map[int64]error{}}
}

func (m *fakeMessenger) SendText(_ context.Context, chatID int64, text string, kb *Keyboard) (MessageRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failChat[chatID]; err != nil {
		return MessageRef{}, err
	}
	m.nextID++
	m.sent = append(m.sent, sentMessage{ChatID: chatID, Text: text, KB: kb})
	return MessageRef{ChatID: chatID, MessageID: m.nextID}, nil
}

func (m *fakeMessenger) EditText(_ context.Context, ref MessageRef, text string, kb *Keyboard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.edits = append(m.edits, editedMessage{Ref: ref, Text: text, KB: kb})
	return nil
}

func (m *fakeMessenger) EditButtons(_ context.Context, ref MessageRef, kb *Keyboard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.edits = append(m.edits, editedMessage{Ref: ref, KB: kb, ButtonsOnly: true})
	return nil
}

func (m *fakeMessenger) AnswerCallback(_ context.Context, callbackID, text string, alert bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answers = append(m.answers, callbackAnswer{ID: callbackID, Text: text, Alert: alert})
	return nil
}

func (m *fakeMessenger) SetCommands(_ context.Context, chatID int64, commands []Command) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands[chatID] = commands
	return nil
}

func (m *fakeMessenger) sentTo(chatID int64) []sentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []sentMessage
	for _, s := range m.sent {
		if s.ChatID == chatID {
			out = append(out, s)
		}
	}
	return out
}

func (m *fakeMessenger) lastSent(chatID int64) sentMessage {
	msgs := m.sentTo(chatID)
	if len(msgs) == 0 {
		return sentMessage{}
	}
	return msgs[len(msgs)-1]
}

func (m *fakeMessenger) lastEdit() editedMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.edits) == 0 {
		return editedMessage{}
	}
	return m.edits[len(m.edits)-1]
}

func (m *fakeMessenger) lastAnswer() callbackAnswer {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.answers) == 0 {
		return callbackAnswer{}
	}
	return m.answers[len(m.answers)-1]
}

type fakeUsers struct {
	mu    sync.Mutex
	users map[int64]*model.User
}

func (r *fakeUsers) GetOrCreate(_ context.Context, telegramID int64, username, fullName string) (*model.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[telegramID]; ok {
		return u, false, nil
	}
	u := &model.User{ID: int64(len(r.users) + 1), TelegramID: telegramID, Username: username, FullName: fullName}
	r.users[telegramID] = u
	return u, true, nil
}

func (r *fakeUsers) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

type fakeOrders struct {
	mu     sync.Mutex
	orders []*model.Order
	err    error
}

func (r *fakeOrders) Create(_ context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	order.ID = int64(len(r.orders) + 1)
	order.CreatedAt = time.Now()
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakeOrders) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.orders)), nil
}

type fakeCatalog struct {
	mu      sync.Mutex
	nextID  int64
	entries []*model.CatalogEntry
}

func (r *fakeCatalog) List(context.Context) ([]*model.CatalogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*model.CatalogEntry(nil), r.entries...), nil
}

func (r *fakeCatalog) GetOrCreate(_ context.Context, name string) (*model.CatalogEntry, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.Name == name {
			return e, false, nil
		}
	}
	r.nextID++
	e := &model.CatalogEntry{ID: r.nextID, Name: name}
	r.entries = append(r.entries, e)
	return e, true, nil
}

func (r *fakeCatalog) GetByExactName(_ context.Context, name string) (*model.CatalogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.Name == name {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeCatalog) Delete(_ context.Context, entry *model.CatalogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.ID == entry.ID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCatalog) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Name)
	}
	return out
}

type fakeSettings struct {
	settings *model.Settings
}

func (p *fakeSettings) Current(context.Context) (*model.Settings, error) {
	return p.settings, nil
}

// failingStore хранилище сессий, которое не может писать
type failingStore struct {
	*session.MemoryStore
}

var errStoreDown = errors.New("store down")

func (failingStore) Set(context.Context, int64, conversation.State) error {
	return errStoreDown
}

const (
	testAdminID = int64(1)
	testUserID  = int64(100)
)

type harness struct {
	t        *testing.T
	engine   *Engine
	store    *session.MemoryStore
	msg      *fakeMessenger
	users    *fakeUsers
	orders   *fakeOrders
	cars     *fakeCatalog
	routes   *fakeCatalog
	settings *fakeSettings
	now      time.Time
	callback int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		t:        t,
		store:    session.NewMemoryStore(),
		msg:      newFakeMessenger(),
		users:    &fakeUsers{users: map[int64]*model.User{}},
		orders:   &fakeOrders{},
		cars:     &fakeCatalog{},
		routes:   &fakeCatalog{},
		settings: &fakeSettings{settings: &model.Settings{AdminID: testAdminID}},
		now:      time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC),
	}
	h.engine = h.build(h.store)
	return h
}

func (h *harness) build(store session.Store) *Engine {
	return NewEngine(Deps{
		Sessions:  store,
		Users:     h.users,
		Orders:    h.orders,
		Cars:      h.cars,
		Routes:    h.routes,
		Settings:  h.settings,
		Messenger: h.msg,
		Logger:    zap.NewNop(),
		Now:       func() time.Time { return h.now },
		Location:  time.UTC,
	})
}

func (h *harness) handle(ev Event) error {
	ev.ID = "test"
	if ev.ChatID == 0 {
		ev.ChatID = ev.UserID
	}
	return h.engine.Handle(context.Background(), ev)
}

func (h *harness) commandAs(userID int64, cmd string) error {
	return h.handle(Event{Kind: EventCommand, UserID: userID, Command: cmd, FullName: "Ali Valiyev", Username: "ali"})
}

func (h *harness) textAs(userID int64, text string) error {
	return h.handle(Event{Kind: EventText, UserID: userID, Text: text, FullName: "Ali Valiyev", Username: "ali"})
}

func (h *harness) pressAs(userID int64, data string) error {
	h.callback++
	ref := MessageRef{ChatID: userID, MessageID: h.msg.nextID}
	return h.handle(Event{
		Kind:       EventCallback,
		UserID:     userID,
		Data:       data,
		CallbackID: fmt.Sprintf("cb%d", h.callback),
		Message:    &ref,
		FullName:   "Ali Valiyev",
		Username:   "ali",
	})
}

func (h *harness) command(cmd string) error { return h.commandAs(testUserID, cmd) }
func (h *harness) text(s string) error      { return h.textAs(testUserID, s) }
func (h *harness) press(data string) error  { return h.pressAs(testUserID, data) }

func (h *harness) state() conversation.State {
	st, _, err := h.store.Get(context.Background(), testUserID)
	if err != nil {
		h.t.Fatalf("get state: %v", err)
	}
	return st
}

func buttonData(kb *Keyboard) []string {
	if kb == nil {
		return nil
	}
	var out []string
	for _, row := range kb.Inline {
		for _, b := range row {
			out = append(out, b.Data)
		}
	}
	return out
}
