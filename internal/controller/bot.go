package controller

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Freeeeeet/route_order_bot/internal/dialogue"
	"github.com/Freeeeeet/route_order_bot/internal/session"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Handler обработчик событий диалога
type Handler interface {
	Handle(ctx context.Context, ev dialogue.Event) error
}

type BotController struct {
	bot        *bot.Bot
	engine     Handler
	serializer *session.Serializer
	logger     *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	engine Handler,
	serializer *session.Serializer,
	logger *zap.Logger,
) *BotController {
	return &BotController{
		bot:        botInstance,
		engine:     engine,
		serializer: serializer,
		logger:     logger,
	}
}

// RegisterHandlers регистрирует обработчики. Команды разбираются в диалоге.
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handleUpdate)
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.handleUpdate)

	return c.setCommands(ctx)
}

// setCommands меню команд по умолчанию; админ получает своё меню при /start
func (c *BotController) setCommands(ctx context.Context) error {
	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: botCommands(dialogue.DefaultCommands()),
	})
	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

func (c *BotController) handleUpdate(ctx context.Context, _ *bot.Bot, update *models.Update) {
	ev, ok := toEvent(update)
	if !ok {
		return
	}
	c.dispatch(ctx, ev)
}

// dispatch события одного пользователя обрабатываются строго по очереди
func (c *BotController) dispatch(ctx context.Context, ev dialogue.Event) {
	c.serializer.Do(ev.UserID, func() {
		if err := c.engine.Handle(ctx, ev); err != nil {
			c.logger.Error("Failed to handle event",
				zap.String("event_id", ev.ID),
				zap.Int64("telegram_id", ev.UserID),
				zap.Stringer("kind", ev.Kind),
				zap.Error(err),
			)
		}
	})
}

// StartPolling запускает long polling и блокируется до отмены ctx
func (c *BotController) StartPolling(ctx context.Context) error {
	if _, err := c.bot.DeleteWebhook(ctx, &bot.DeleteWebhookParams{}); err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}
	c.logger.Info("Starting bot (long polling)...")
	c.bot.Start(ctx)
	return nil
}

// StartWebhook регистрирует webhook и возвращает HTTP обработчик для него
func (c *BotController) StartWebhook(ctx context.Context, url, secret string) (http.Handler, error) {
	_, err := c.bot.SetWebhook(ctx, &bot.SetWebhookParams{
		URL:         url,
		SecretToken: secret,
	})
	if err != nil {
		return nil, fmt.Errorf("set webhook: %w", err)
	}
	c.logger.Info("Starting bot (webhook)...", zap.String("url", url))
	go c.bot.StartWebhook(ctx)
	return c.bot.WebhookHandler(), nil
}

// Shutdown снимает webhook при остановке
func (c *BotController) Shutdown(ctx context.Context) {
	if _, err := c.bot.DeleteWebhook(ctx, &bot.DeleteWebhookParams{}); err != nil {
		c.logger.Warn("Failed to delete webhook", zap.Error(err))
		return
	}
	c.logger.Info("Webhook deleted")
}
