package dialogue

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/route_order_bot/internal/conversation"
	"github.com/Freeeeeet/route_order_bot/internal/model"
	"github.com/Freeeeeet/route_order_bot/internal/session"
	"go.uber.org/zap"
)

// Deps зависимости движка диалога
type Deps struct {
	Sessions  session.Store
	Users     UserRepository
	Orders    OrderRepository
	Cars      CatalogRepository
	Routes    CatalogRepository
	Settings  SettingsProvider
	Messenger Messenger
	Logger    *zap.Logger

	// Now по умолчанию time.Now, Location по умолчанию Asia/Tashkent (UTC, если зоны нет)
	Now      func() time.Time
	Location *time.Location
}

// Engine обрабатывает события пользователей: оформление заказа и админку.
// Вызывающий обязан не обрабатывать параллельно два события одного пользователя.
type Engine struct {
	sessions session.Store
	users    UserRepository
	orders   OrderRepository
	cars     CatalogRepository
	routes   CatalogRepository
	settings SettingsProvider
	msg      Messenger
	logger   *zap.Logger
	now      func() time.Time
	loc      *time.Location
}

func NewEngine(d Deps) *Engine {
	e := &Engine{
		sessions: d.Sessions,
		users:    d.Users,
		orders:   d.Orders,
		cars:     d.Cars,
		routes:   d.Routes,
		settings: d.Settings,
		msg:      d.Messenger,
		logger:   d.Logger,
		now:      d.Now,
		loc:      d.Location,
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.loc == nil {
		loc, err := time.LoadLocation("Asia/Tashkent")
		if err != nil {
			loc = time.UTC
		}
		e.loc = loc
	}
	return e
}

// turn обработка одного события
type turn struct {
	ev     Event
	log    *zap.Logger
	answer string
	alert  bool
}

func (t *turn) alertf(text string) {
	t.answer = text
	t.alert = true
}

// Handle обрабатывает одно событие пользователя
func (e *Engine) Handle(ctx context.Context, ev Event) error {
	t := &turn{
		ev: ev,
		log: e.logger.With(
			zap.String("event_id", ev.ID),
			zap.Int64("telegram_id", ev.UserID),
			zap.Stringer("kind", ev.Kind),
		),
	}

	switch ev.Kind {
	case EventCommand:
		return e.handleCommand(ctx, t)
	case EventText:
		return e.handleText(ctx, t)
	case EventCallback:
		// на callback отвечаем ровно один раз, иначе у кнопки висят "часики"
		defer e.answerCallback(ctx, t)
		return e.handleCallback(ctx, t)
	default:
		return fmt.Errorf("unknown event kind %d", ev.Kind)
	}
}

func (e *Engine) answerCallback(ctx context.Context, t *turn) {
	if t.ev.CallbackID == "" {
		return
	}
	if err := e.msg.AnswerCallback(ctx, t.ev.CallbackID, t.answer, t.alert); err != nil {
		t.log.Warn("Failed to answer callback", zap.Error(err))
	}
}

func (e *Engine) handleCommand(ctx context.Context, t *turn) error {
	t.log.Info("Command received", zap.String("command", t.ev.Command))

	switch t.ev.Command {
	case CmdStart:
		return e.start(ctx, t)
	case CmdHelp:
		return e.reply(ctx, t, textHelp, nil)
	case CmdCancel:
		if err := e.sessions.Clear(ctx, t.ev.UserID); err != nil {
			return e.fail(ctx, t, fmt.Errorf("clear session: %w", err))
		}
		return e.reply(ctx, t, textCancelled, nil)
	case CmdAdmin:
		return e.adminPanel(ctx, t)
	case CmdAdminHelp:
		return e.adminHelp(ctx, t)
	case CmdStats:
		return e.stats(ctx, t)
	case CmdUsers:
		return e.usersCount(ctx, t)
	default:
		return e.reply(ctx, t, textUnknownCommand, nil)
	}
}

func (e *Engine) handleText(ctx context.Context, t *turn) error {
	state, err := e.load(ctx, t)
	if err != nil {
		return err
	}

	switch state.Flow() {
	case conversation.FlowOrdering:
		o, _ := state.Ordering()
		return e.orderingText(ctx, t, o)
	case conversation.FlowAdmin:
		a, _ := state.Admin()
		return e.adminText(ctx, t, a)
	default:
		t.log.Debug("Text without active dialog ignored")
		return nil
	}
}

func (e *Engine) handleCallback(ctx context.Context, t *turn) error {
	t.log.Info("Callback received", zap.String("data", t.ev.Data))

	if isAdminAction(t.ev.Data) {
		return e.adminAction(ctx, t)
	}

	state, err := e.load(ctx, t)
	if err != nil {
		return err
	}

	switch state.Flow() {
	case conversation.FlowOrdering:
		o, _ := state.Ordering()
		return e.orderingCallback(ctx, t, o)
	case conversation.FlowAdmin:
		t.alertf(textStaleButton)
		return nil
	default:
		t.alertf(textSessionExpired)
		return nil
	}
}

// start начинает новый заказ, всё прежнее состояние сбрасывается
func (e *Engine) start(ctx context.Context, t *turn) error {
	if _, _, err := e.users.GetOrCreate(ctx, t.ev.UserID, t.ev.Username, t.ev.FullName); err != nil {
		return e.fail(ctx, t, fmt.Errorf("get or create user: %w", err))
	}

	_, err := e.authorize(ctx, t.ev.UserID)
	isAdmin := err == nil
	if err := e.msg.SetCommands(ctx, t.ev.ChatID, userCommands(isAdmin)); err != nil {
		t.log.Warn("Failed to set chat commands", zap.Error(err))
	}

	routes, err := e.catalog(ctx, e.routes, model.DefaultRoutes)
	if err != nil {
		return e.fail(ctx, t, fmt.Errorf("list routes: %w", err))
	}

	if err := e.save(ctx, t, conversation.NewOrdering()); err != nil {
		return err
	}
	return e.reply(ctx, t, textWelcome, routesKeyboard(routes))
}

// catalog список справочника; пустой заполняется значениями по умолчанию
func (e *Engine) catalog(ctx context.Context, repo CatalogRepository, defaults []string) ([]*model.CatalogEntry, error) {
	entries, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		return entries, nil
	}
	for _, name := range defaults {
		if _, _, err := repo.GetOrCreate(ctx, name); err != nil {
			return nil, err
		}
	}
	return repo.List(ctx)
}

func (e *Engine) load(ctx context.Context, t *turn) (conversation.State, error) {
	state, _, err := e.sessions.Get(ctx, t.ev.UserID)
	if err != nil {
		return conversation.Idle(), e.fail(ctx, t, fmt.Errorf("get session: %w", err))
	}
	t.log = t.log.With(zap.String("step", state.StepName()))
	return state, nil
}

func (e *Engine) save(ctx context.Context, t *turn, state conversation.State) error {
	if err := e.sessions.Set(ctx, t.ev.UserID, state); err != nil {
		return e.fail(ctx, t, fmt.Errorf("set session: %w", err))
	}
	return nil
}

func (e *Engine) saveOrdering(ctx context.Context, t *turn, o conversation.Ordering) error {
	return e.save(ctx, t, conversation.WithOrdering(o))
}

// fail сообщает пользователю об ошибке и сбрасывает сессию
func (e *Engine) fail(ctx context.Context, t *turn, err error) error {
	t.log.Error("Dialog failed",
		zap.Error(err),
		zap.String("text", t.ev.Text),
		zap.String("data", t.ev.Data),
	)
	if clearErr := e.sessions.Clear(ctx, t.ev.UserID); clearErr != nil {
		t.log.Error("Failed to clear session", zap.Error(clearErr))
	}
	if _, sendErr := e.msg.SendText(ctx, t.ev.ChatID, userMessage(err), nil); sendErr != nil {
		t.log.Error("Failed to send failure message", zap.Error(sendErr))
	}
	return err
}

func (e *Engine) reply(ctx context.Context, t *turn, text string, kb *Keyboard) error {
	if _, err := e.msg.SendText(ctx, t.ev.ChatID, text, kb); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// replace редактирует сообщение с кнопкой, если оно доступно, иначе шлёт новое
func (e *Engine) replace(ctx context.Context, t *turn, text string, kb *Keyboard) error {
	if t.ev.Message == nil {
		return e.reply(ctx, t, text, kb)
	}
	if err := e.msg.EditText(ctx, *t.ev.Message, text, kb); err != nil {
		return fmt.Errorf("edit message: %w", err)
	}
	return nil
}

func (e *Engine) clock() time.Time {
	return e.now().In(e.loc)
}
