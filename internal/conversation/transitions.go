package conversation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/route_order_bot/internal/validation"
	"github.com/looplab/fsm"
)

// События диалога заказа
const (
	EventDirectionChosen = "direction_chosen"
	EventYearChosen      = "year_chosen"
	EventMonthChosen     = "month_chosen"
	EventDayChosen       = "day_chosen"
	EventPhoneEntered    = "phone_entered"
	EventTripTypeChosen  = "trip_type_chosen"
	EventCarChosen       = "car_chosen"
	EventAddressEntered  = "address_entered"
	EventCommentGiven    = "comment_given"
)

// Диалог заказа идёт только вперёд, назад можно только через /start или /cancel
var orderingEvents = fsm.Events{
	{Name: EventDirectionChosen, Src: []string{StepDirection.String()}, Dst: StepYear.String()},
	{Name: EventYearChosen, Src: []string{StepYear.String()}, Dst: StepMonth.String()},
	{Name: EventMonthChosen, Src: []string{StepMonth.String()}, Dst: StepDay.String()},
	{Name: EventDayChosen, Src: []string{StepDay.String()}, Dst: StepPhone.String()},
	{Name: EventPhoneEntered, Src: []string{StepPhone.String()}, Dst: StepTripType.String()},
	{Name: EventTripTypeChosen, Src: []string{StepTripType.String()}, Dst: StepCar.String()},
	{Name: EventCarChosen, Src: []string{StepCar.String()}, Dst: StepAddress.String()},
	{Name: EventAddressEntered, Src: []string{StepAddress.String()}, Dst: StepComment.String()},
	{Name: EventCommentGiven, Src: []string{StepComment.String()}, Dst: StepConfirm.String()},
}

var ErrMissingAnswer = errors.New("previous answer is missing")

// ErrInvalidDate год, месяц и день не складываются в существующую дату
var ErrInvalidDate = errors.New("invalid calendar date")

func (o *Ordering) advance(ctx context.Context, event string) error {
	machine := fsm.NewFSM(o.Step.String(), orderingEvents, fsm.Callbacks{})
	if err := machine.Event(ctx, event); err != nil {
		return fmt.Errorf("%s at step %s: %w", event, o.Step, err)
	}
	next, err := parseOrderStep(machine.Current())
	if err != nil {
		return err
	}
	o.Step = next
	return nil
}

// ChooseDirection сохраняет направление
func (o *Ordering) ChooseDirection(ctx context.Context, route string) error {
	if err := o.advance(ctx, EventDirectionChosen); err != nil {
		return err
	}
	o.Answers.Direction = &route
	return nil
}

// ChooseYear сохраняет год
func (o *Ordering) ChooseYear(ctx context.Context, year int) error {
	if err := o.advance(ctx, EventYearChosen); err != nil {
		return err
	}
	o.Answers.Year = &year
	return nil
}

// ChooseMonth сохраняет месяц
func (o *Ordering) ChooseMonth(ctx context.Context, month int) error {
	if o.Answers.Year == nil {
		return fmt.Errorf("choose month: year: %w", ErrMissingAnswer)
	}
	if err := o.advance(ctx, EventMonthChosen); err != nil {
		return err
	}
	o.Answers.Month = &month
	return nil
}

// ChooseDay сохраняет день и сразу собирает дату целиком
func (o *Ordering) ChooseDay(ctx context.Context, day int) error {
	if o.Answers.Year == nil || o.Answers.Month == nil {
		return fmt.Errorf("choose day: year/month: %w", ErrMissingAnswer)
	}
	date := validation.ComposeDate(*o.Answers.Year, *o.Answers.Month, day)
	if !validation.IsValidDate(date) {
		return fmt.Errorf("choose day %s: %w", date, ErrInvalidDate)
	}
	if err := o.advance(ctx, EventDayChosen); err != nil {
		return err
	}
	o.Answers.Day = &day
	o.Answers.Date = &date
	return nil
}

// EnterPhone сохраняет уже проверенный телефон
func (o *Ordering) EnterPhone(ctx context.Context, phone string) error {
	if err := o.advance(ctx, EventPhoneEntered); err != nil {
		return err
	}
	o.Answers.Phone = &phone
	return nil
}

// ChooseTripType сохраняет тип поездки
func (o *Ordering) ChooseTripType(ctx context.Context, tripType TripType) error {
	if err := o.advance(ctx, EventTripTypeChosen); err != nil {
		return err
	}
	o.Answers.TripType = &tripType
	return nil
}

// ChooseCar сохраняет машину
func (o *Ordering) ChooseCar(ctx context.Context, car string) error {
	if err := o.advance(ctx, EventCarChosen); err != nil {
		return err
	}
	o.Answers.Car = &car
	return nil
}

// EnterAddress сохраняет адрес
func (o *Ordering) EnterAddress(ctx context.Context, address string) error {
	if err := o.advance(ctx, EventAddressEntered); err != nil {
		return err
	}
	o.Answers.Address = &address
	return nil
}

// SetComment сохраняет комментарий, пустая строка - без комментария
func (o *Ordering) SetComment(ctx context.Context, comment string) error {
	if err := o.advance(ctx, EventCommentGiven); err != nil {
		return err
	}
	o.Answers.Comment = &comment
	return nil
}

// Complete true если собраны все поля заказа
func (a Answers) Complete() bool {
	return a.Direction != nil && a.Date != nil && a.Phone != nil && a.TripType != nil &&
		a.Car != nil && a.Address != nil && a.Comment != nil
}
