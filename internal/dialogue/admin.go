package dialogue

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/route_order_bot/internal/conversation"
	"go.uber.org/zap"
)

// adminToken подтверждение, что пользователь админ. Получается только через authorize.
type adminToken struct {
	adminID int64
}

// authorize единственная проверка прав админа
func (e *Engine) authorize(ctx context.Context, userID int64) (adminToken, error) {
	settings, err := e.settings.Current(ctx)
	if err != nil {
		return adminToken{}, fmt.Errorf("load settings: %w", err)
	}
	if settings == nil || settings.AdminID == 0 || settings.AdminID != userID {
		return adminToken{}, ErrPermission
	}
	return adminToken{adminID: userID}, nil
}

// catalogKind описание справочника для админских действий
type catalogKind struct {
	name    string
	repo    CatalogRepository
	texts   catalogTexts
	addStep conversation.AdminStep
	delStep conversation.AdminStep
}

func (e *Engine) carKind() catalogKind {
	return catalogKind{name: "car", repo: e.cars, texts: carTexts, addStep: conversation.AdminAddCar, delStep: conversation.AdminDelCar}
}

func (e *Engine) routeKind() catalogKind {
	return catalogKind{name: "route", repo: e.routes, texts: routeTexts, addStep: conversation.AdminAddRoute, delStep: conversation.AdminDelRoute}
}

func (e *Engine) kindForStep(step conversation.AdminStep) (catalogKind, bool) {
	switch step {
	case conversation.AdminAddCar, conversation.AdminDelCar:
		return e.carKind(), true
	case conversation.AdminAddRoute, conversation.AdminDelRoute:
		return e.routeKind(), true
	default:
		return catalogKind{}, false
	}
}

var adminActions = map[string]bool{
	dataAdminAddCar:    true,
	dataAdminDelCar:    true,
	dataAdminListCar:   true,
	dataAdminAddRoute:  true,
	dataAdminDelRoute:  true,
	dataAdminListRoute: true,
}

func isAdminAction(data string) bool {
	return adminActions[data]
}

// denied логирует отказ; ошибки загрузки настроек тоже считаются отказом
func (t *turn) denied(err error) {
	t.log.Warn("Admin access denied", zap.Error(err))
}

func (e *Engine) adminPanel(ctx context.Context, t *turn) error {
	if _, err := e.authorize(ctx, t.ev.UserID); err != nil {
		t.denied(err)
		return e.reply(ctx, t, textAdminOnly, nil)
	}
	return e.reply(ctx, t, textAdminWelcome, adminKeyboard())
}

func (e *Engine) adminHelp(ctx context.Context, t *turn) error {
	if _, err := e.authorize(ctx, t.ev.UserID); err != nil {
		t.denied(err)
		return e.reply(ctx, t, textAdminCommandOnly, nil)
	}
	return e.reply(ctx, t, textAdminHelp, nil)
}

func (e *Engine) stats(ctx context.Context, t *turn) error {
	if _, err := e.authorize(ctx, t.ev.UserID); err != nil {
		t.denied(err)
		return e.reply(ctx, t, textAdminCommandOnly, nil)
	}
	count, err := e.orders.Count(ctx)
	if err != nil {
		t.log.Error("Failed to count orders", zap.Error(err))
		return e.reply(ctx, t, textGenericFailure, nil)
	}
	return e.reply(ctx, t, fmt.Sprintf(textStats, count), nil)
}

func (e *Engine) usersCount(ctx context.Context, t *turn) error {
	if _, err := e.authorize(ctx, t.ev.UserID); err != nil {
		t.denied(err)
		return e.reply(ctx, t, textAdminCommandOnly, nil)
	}
	count, err := e.users.Count(ctx)
	if err != nil {
		t.log.Error("Failed to count users", zap.Error(err))
		return e.reply(ctx, t, textGenericFailure, nil)
	}
	return e.reply(ctx, t, fmt.Sprintf(textUsers, count), nil)
}

// adminAction нажатие кнопки админ-панели
func (e *Engine) adminAction(ctx context.Context, t *turn) error {
	token, err := e.authorize(ctx, t.ev.UserID)
	if err != nil {
		t.denied(err)
		t.alertf(textAdminAlert)
		return nil
	}

	switch t.ev.Data {
	case dataAdminAddCar:
		return e.beginAdd(ctx, t, token, e.carKind())
	case dataAdminDelCar:
		return e.beginDelete(ctx, t, token, e.carKind())
	case dataAdminListCar:
		return e.listCatalog(ctx, t, token, e.carKind())
	case dataAdminAddRoute:
		return e.beginAdd(ctx, t, token, e.routeKind())
	case dataAdminDelRoute:
		return e.beginDelete(ctx, t, token, e.routeKind())
	case dataAdminListRoute:
		return e.listCatalog(ctx, t, token, e.routeKind())
	}
	return nil
}

func (e *Engine) beginAdd(ctx context.Context, t *turn, _ adminToken, kind catalogKind) error {
	if err := e.save(ctx, t, conversation.NewAdmin(kind.addStep)); err != nil {
		return err
	}
	return e.reply(ctx, t, kind.texts.addPrompt, nil)
}

func (e *Engine) beginDelete(ctx context.Context, t *turn, _ adminToken, kind catalogKind) error {
	entries, err := kind.repo.List(ctx)
	if err != nil {
		return e.fail(ctx, t, fmt.Errorf("list %s: %w", kind.name, err))
	}
	if len(entries) == 0 {
		return e.reply(ctx, t, kind.texts.empty, nil)
	}
	if err := e.save(ctx, t, conversation.NewAdmin(kind.delStep)); err != nil {
		return err
	}
	return e.reply(ctx, t, kind.texts.delPrompt+joinNames(entries), nil)
}

func (e *Engine) listCatalog(ctx context.Context, t *turn, _ adminToken, kind catalogKind) error {
	entries, err := kind.repo.List(ctx)
	if err != nil {
		t.log.Error("Failed to list catalog", zap.String("catalog", kind.name), zap.Error(err))
		return e.reply(ctx, t, textGenericFailure, nil)
	}
	if len(entries) == 0 {
		return e.reply(ctx, t, kind.texts.empty, nil)
	}
	return e.reply(ctx, t, kind.texts.listTitle+joinNames(entries), nil)
}

// adminText ввод имени на шаге добавления или удаления
func (e *Engine) adminText(ctx context.Context, t *turn, a conversation.Admin) error {
	token, err := e.authorize(ctx, t.ev.UserID)
	if err != nil {
		t.denied(err)
		if clearErr := e.sessions.Clear(ctx, t.ev.UserID); clearErr != nil {
			t.log.Error("Failed to clear session", zap.Error(clearErr))
		}
		return e.reply(ctx, t, textAdminOnly, nil)
	}

	kind, ok := e.kindForStep(a.Step)
	if !ok {
		return e.fail(ctx, t, fmt.Errorf("unknown admin step %s", a.Step))
	}

	name := strings.TrimSpace(t.ev.Text)
	switch a.Step {
	case kind.addStep:
		return e.addEntry(ctx, t, token, kind, name)
	default:
		return e.deleteEntry(ctx, t, token, kind, name)
	}
}

func (e *Engine) addEntry(ctx context.Context, t *turn, _ adminToken, kind catalogKind, name string) error {
	// имя уходит в callback data кнопки, шаг не меняется
	switch {
	case name == "":
		return e.reply(ctx, t, kind.texts.blankName, nil)
	case len(name) > maxCallbackData:
		return e.reply(ctx, t, kind.texts.tooLong, nil)
	case reservedData(name):
		return e.reply(ctx, t, kind.texts.reserved, nil)
	}
	_, created, err := kind.repo.GetOrCreate(ctx, name)
	if err != nil {
		return e.fail(ctx, t, fmt.Errorf("create %s: %w", kind.name, err))
	}
	if err := e.sessions.Clear(ctx, t.ev.UserID); err != nil {
		return e.fail(ctx, t, fmt.Errorf("clear session: %w", err))
	}
	text := kind.texts.exists
	if created {
		text = kind.texts.added
	}
	return e.reply(ctx, t, fmt.Sprintf(text, html.EscapeString(name)), nil)
}

func (e *Engine) deleteEntry(ctx context.Context, t *turn, _ adminToken, kind catalogKind, name string) error {
	entry, err := kind.repo.GetByExactName(ctx, name)
	if err != nil {
		return e.fail(ctx, t, fmt.Errorf("get %s: %w", kind.name, err))
	}
	text := kind.texts.notFound
	if entry != nil {
		if err := kind.repo.Delete(ctx, entry); err != nil {
			return e.fail(ctx, t, fmt.Errorf("delete %s: %w", kind.name, err))
		}
		text = kind.texts.deleted
	}
	if err := e.sessions.Clear(ctx, t.ev.UserID); err != nil {
		return e.fail(ctx, t, fmt.Errorf("clear session: %w", err))
	}
	return e.reply(ctx, t, fmt.Sprintf(text, html.EscapeString(name)), nil)
}
