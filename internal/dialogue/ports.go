package dialogue

import (
	"context"

	"github.com/Freeeeeet/route_order_bot/internal/model"
)

// Button inline кнопка. Data приходит обратно в callback.
type Button struct {
	Text string
	Data string
}

// Keyboard inline кнопки сообщения по рядам
type Keyboard struct {
	Inline [][]Button
}

// MessageRef ссылка на отправленное сообщение для редактирования на месте
type MessageRef struct {
	ChatID    int64
	MessageID int
}

// Command пункт меню команд бота
type Command struct {
	Name        string
	Description string
}

// Messenger исходящие сообщения в чат
type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string, kb *Keyboard) (MessageRef, error)
	EditText(ctx context.Context, ref MessageRef, text string, kb *Keyboard) error
	// EditButtons заменяет кнопки сообщения, nil убирает их
	EditButtons(ctx context.Context, ref MessageRef, kb *Keyboard) error
	AnswerCallback(ctx context.Context, callbackID, text string, alert bool) error
	SetCommands(ctx context.Context, chatID int64, commands []Command) error
}

type UserRepository interface {
	GetOrCreate(ctx context.Context, telegramID int64, username, fullName string) (*model.User, bool, error)
	Count(ctx context.Context) (int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	Count(ctx context.Context) (int64, error)
}

// CatalogRepository машины или маршруты
type CatalogRepository interface {
	List(ctx context.Context) ([]*model.CatalogEntry, error)
	GetOrCreate(ctx context.Context, name string) (*model.CatalogEntry, bool, error)
	GetByExactName(ctx context.Context, name string) (*model.CatalogEntry, error)
	Delete(ctx context.Context, entry *model.CatalogEntry) error
}

// SettingsProvider возвращает nil, если админ не настроен
type SettingsProvider interface {
	Current(ctx context.Context) (*model.Settings, error)
}
