package dialogue

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/route_order_bot/internal/conversation"
	"github.com/Freeeeeet/route_order_bot/internal/model"
	"github.com/Freeeeeet/route_order_bot/internal/validation"
	"go.uber.org/zap"
)

func (e *Engine) orderingText(ctx context.Context, t *turn, o conversation.Ordering) error {
	text := strings.TrimSpace(t.ev.Text)

	switch o.Step {
	case conversation.StepPhone:
		if !validation.IsValidPhone(text) {
			t.log.Info("Invalid phone", zap.String("text", text))
			return e.reply(ctx, t, textInvalidPhone, nil)
		}
		if err := o.EnterPhone(ctx, text); err != nil {
			return e.fail(ctx, t, err)
		}
		if err := e.saveOrdering(ctx, t, o); err != nil {
			return err
		}
		return e.reply(ctx, t, textChooseTrip, tripTypeKeyboard())

	case conversation.StepAddress:
		if text == "" {
			return e.reply(ctx, t, textEmptyAddress, nil)
		}
		if err := o.EnterAddress(ctx, text); err != nil {
			return e.fail(ctx, t, err)
		}
		if err := e.saveOrdering(ctx, t, o); err != nil {
			return err
		}
		return e.reply(ctx, t, textAskComment, noCommentKeyboard())

	case conversation.StepComment:
		if err := o.SetComment(ctx, text); err != nil {
			return e.fail(ctx, t, err)
		}
		if err := e.saveOrdering(ctx, t, o); err != nil {
			return err
		}
		return e.reply(ctx, t, renderSummary(o.Answers), confirmKeyboard())

	default:
		// остальные шаги принимают только кнопки
		return e.reply(ctx, t, textUseButtons, nil)
	}
}

func (e *Engine) orderingCallback(ctx context.Context, t *turn, o conversation.Ordering) error {
	switch o.Step {
	case conversation.StepDirection:
		return e.chooseDirection(ctx, t, o)
	case conversation.StepYear:
		return e.chooseYear(ctx, t, o)
	case conversation.StepMonth:
		return e.chooseMonth(ctx, t, o)
	case conversation.StepDay:
		return e.chooseDay(ctx, t, o)
	case conversation.StepTripType:
		return e.chooseTripType(ctx, t, o)
	case conversation.StepCar:
		return e.chooseCar(ctx, t, o)
	case conversation.StepComment:
		if t.ev.Data != dataNoComment {
			t.alertf(textStaleButton)
			return nil
		}
		if err := o.SetComment(ctx, ""); err != nil {
			return e.fail(ctx, t, err)
		}
		if err := e.saveOrdering(ctx, t, o); err != nil {
			return err
		}
		return e.replace(ctx, t, renderSummary(o.Answers), confirmKeyboard())
	case conversation.StepConfirm:
		switch t.ev.Data {
		case dataConfirm:
			return e.confirm(ctx, t, o)
		case dataCancel:
			return e.cancelOrder(ctx, t)
		}
	}
	t.alertf(textStaleButton)
	return nil
}

func (e *Engine) chooseDirection(ctx context.Context, t *turn, o conversation.Ordering) error {
	route, err := e.routes.GetByExactName(ctx, t.ev.Data)
	if err != nil {
		return e.fail(ctx, t, fmt.Errorf("get route: %w", err))
	}
	if route == nil {
		t.alertf(textNotAvailable)
		return nil
	}
	if err := o.ChooseDirection(ctx, route.Name); err != nil {
		return e.fail(ctx, t, err)
	}
	if err := e.saveOrdering(ctx, t, o); err != nil {
		return err
	}
	return e.replace(ctx, t, textChooseYear, yearKeyboard(e.clock()))
}

func (e *Engine) chooseYear(ctx context.Context, t *turn, o conversation.Ordering) error {
	now := e.clock()
	year, ok := parseNumbered(t.ev.Data, prefixYear)
	if !ok || !contains(yearOptions(now), year) {
		t.alertf(textStaleButton)
		return nil
	}
	if err := o.ChooseYear(ctx, year); err != nil {
		return e.fail(ctx, t, err)
	}
	if err := e.saveOrdering(ctx, t, o); err != nil {
		return err
	}
	return e.replace(ctx, t, fmt.Sprintf(textChooseMonth, year), monthKeyboard(now, year))
}

func (e *Engine) chooseMonth(ctx context.Context, t *turn, o conversation.Ordering) error {
	if o.Answers.Year == nil {
		return e.fail(ctx, t, fmt.Errorf("choose month: %w", conversation.ErrMissingAnswer))
	}
	now := e.clock()
	year := *o.Answers.Year
	month, ok := parseNumbered(t.ev.Data, prefixMonth)
	if !ok || !contains(monthOptions(now, year), month) {
		t.alertf(textStaleButton)
		return nil
	}
	if err := o.ChooseMonth(ctx, month); err != nil {
		return e.fail(ctx, t, err)
	}
	if err := e.saveOrdering(ctx, t, o); err != nil {
		return err
	}
	return e.replace(ctx, t, fmt.Sprintf(textChooseDay, year, month), dayKeyboard(now, year, month))
}

func (e *Engine) chooseDay(ctx context.Context, t *turn, o conversation.Ordering) error {
	if o.Answers.Year == nil || o.Answers.Month == nil {
		return e.fail(ctx, t, fmt.Errorf("choose day: %w", conversation.ErrMissingAnswer))
	}
	now := e.clock()
	year, month := *o.Answers.Year, *o.Answers.Month
	day, ok := parseNumbered(t.ev.Data, prefixDay)
	if !ok || !contains(dayOptions(now, year, month), day) {
		t.alertf(textStaleButton)
		return nil
	}
	if err := o.ChooseDay(ctx, day); err != nil {
		return e.fail(ctx, t, err)
	}
	if err := e.saveOrdering(ctx, t, o); err != nil {
		return err
	}
	if err := e.replace(ctx, t, fmt.Sprintf(textDateChosen, *o.Answers.Date), nil); err != nil {
		return err
	}
	return e.reply(ctx, t, textAskPhone, nil)
}

func (e *Engine) chooseTripType(ctx context.Context, t *turn, o conversation.Ordering) error {
	tripType, ok := conversation.ParseTripType(t.ev.Data)
	if !ok {
		t.alertf(textStaleButton)
		return nil
	}
	cars, err := e.catalog(ctx, e.cars, model.DefaultCars)
	if err != nil {
		return e.fail(ctx, t, fmt.Errorf("list cars: %w", err))
	}
	if err := o.ChooseTripType(ctx, tripType); err != nil {
		return e.fail(ctx, t, err)
	}
	if err := e.saveOrdering(ctx, t, o); err != nil {
		return err
	}
	if err := e.replace(ctx, t, fmt.Sprintf(textTripChosen, tripTypeText(tripType)), nil); err != nil {
		return err
	}
	return e.reply(ctx, t, textChooseCar, carsKeyboard(cars))
}

func (e *Engine) chooseCar(ctx context.Context, t *turn, o conversation.Ordering) error {
	car, err := e.cars.GetByExactName(ctx, t.ev.Data)
	if err != nil {
		return e.fail(ctx, t, fmt.Errorf("get car: %w", err))
	}
	if car == nil {
		t.alertf(textNotAvailable)
		return nil
	}
	if err := o.ChooseCar(ctx, car.Name); err != nil {
		return e.fail(ctx, t, err)
	}
	if err := e.saveOrdering(ctx, t, o); err != nil {
		return err
	}
	if err := e.replace(ctx, t, fmt.Sprintf(textCarChosen, html.EscapeString(car.Name)), nil); err != nil {
		return err
	}
	return e.reply(ctx, t, textAskAddress, nil)
}

// confirm создаёт заказ. Сессия очищается до создания, чтобы повторное нажатие не создало второй заказ.
func (e *Engine) confirm(ctx context.Context, t *turn, o conversation.Ordering) error {
	if !o.Answers.Complete() {
		return e.fail(ctx, t, fmt.Errorf("confirm: %w", conversation.ErrMissingAnswer))
	}
	e.removeButtons(ctx, t)

	if err := e.sessions.Clear(ctx, t.ev.UserID); err != nil {
		return e.fail(ctx, t, fmt.Errorf("clear session: %w", err))
	}

	user, _, err := e.users.GetOrCreate(ctx, t.ev.UserID, t.ev.Username, t.ev.FullName)
	if err != nil {
		return e.fail(ctx, t, fmt.Errorf("get or create user: %w", err))
	}

	a := o.Answers
	date, err := validation.ParseDate(*a.Date)
	if err != nil {
		return e.fail(ctx, t, err)
	}
	order := &model.Order{
		UserID:    user.ID,
		Direction: *a.Direction,
		Date:      date,
		Phone:     *a.Phone,
		TripType:  model.TripType(*a.TripType),
		Car:       *a.Car,
		Address:   *a.Address,
		Comment:   *a.Comment,
	}
	if err := e.orders.Create(ctx, order); err != nil {
		return e.fail(ctx, t, fmt.Errorf("create order: %w", err))
	}
	t.log.Info("Order created", zap.Int64("order_id", order.ID))

	if err := e.reply(ctx, t, renderUserAck(), nil); err != nil {
		t.log.Warn("Failed to send order acknowledgement", zap.Error(err))
	}
	e.notifyAdmin(ctx, t, user, a, order.ID)
	return nil
}

// notifyAdmin уведомление админу; ошибки только логируются
func (e *Engine) notifyAdmin(ctx context.Context, t *turn, user *model.User, a conversation.Answers, orderID int64) {
	log := t.log.With(zap.Int64("order_id", orderID))

	settings, err := e.settings.Current(ctx)
	if err != nil {
		log.Error("Failed to load settings for admin notification", zap.Error(err))
		return
	}
	if settings == nil || settings.AdminID == 0 {
		log.Warn("No admin configured, notification skipped")
		return
	}

	text := renderAdminNotification(user, t.ev.Username, a, orderID)
	if _, err := e.msg.SendText(ctx, settings.AdminID, text, nil); err != nil {
		log.Error("Failed to send admin notification", zap.Error(err))
	}
}

func (e *Engine) cancelOrder(ctx context.Context, t *turn) error {
	e.removeButtons(ctx, t)
	if err := e.sessions.Clear(ctx, t.ev.UserID); err != nil {
		return e.fail(ctx, t, fmt.Errorf("clear session: %w", err))
	}
	return e.reply(ctx, t, textCancelled, nil)
}

func (e *Engine) removeButtons(ctx context.Context, t *turn) {
	if t.ev.Message == nil {
		return
	}
	if err := e.msg.EditButtons(ctx, *t.ev.Message, nil); err != nil {
		t.log.Warn("Failed to remove buttons", zap.Error(err))
	}
}
