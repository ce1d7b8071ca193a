package conversation

import (
	"encoding/json"
	"errors"
)

// Flow какой диалог сейчас активен у пользователя
type Flow int

const (
	FlowIdle Flow = iota
	FlowOrdering
	FlowAdmin
)

func (f Flow) String() string {
	switch f {
	case FlowOrdering:
		return "ordering"
	case FlowAdmin:
		return "admin"
	default:
		return "idle"
	}
}

// Answers данные, накопленные в ходе оформления заказа.
// Поле заполняется только после завершения соответствующего шага.
type Answers struct {
	Direction *string   `json:"direction,omitempty"`
	Year      *int      `json:"year,omitempty"`
	Month     *int      `json:"month,omitempty"`
	Day       *int      `json:"day,omitempty"`
	Date      *string   `json:"date,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	TripType  *TripType `json:"trip_type,omitempty"`
	Car       *string   `json:"car,omitempty"`
	Address   *string   `json:"address,omitempty"`
	// Пустая строка означает "без комментария", nil - шаг ещё не пройден
	Comment *string `json:"comment,omitempty"`
}

// Ordering состояние диалога оформления заказа
type Ordering struct {
	Step    OrderStep `json:"step"`
	Answers Answers   `json:"answers"`
}

// Admin состояние админского диалога
type Admin struct {
	Step AdminStep `json:"step"`
}

// State состояние пользователя: либо ничего, либо заказ, либо админский диалог.
// Создавайте через Idle, NewOrdering, NewAdmin.
type State struct {
	ordering *Ordering
	admin    *Admin
}

var ErrDualFlow = errors.New("state has both ordering and admin flows")

// Idle пустое состояние
func Idle() State {
	return State{}
}

// NewOrdering начинает оформление заказа с выбора направления
func NewOrdering() State {
	return State{ordering: &Ordering{Step: StepDirection}}
}

// NewAdmin начинает админский диалог
func NewAdmin(step AdminStep) State {
	return State{admin: &Admin{Step: step}}
}

// Flow возвращает активный диалог
func (s State) Flow() Flow {
	switch {
	case s.ordering != nil:
		return FlowOrdering
	case s.admin != nil:
		return FlowAdmin
	default:
		return FlowIdle
	}
}

// IsIdle true если диалога нет
func (s State) IsIdle() bool {
	return s.Flow() == FlowIdle
}

// Ordering возвращает копию состояния заказа
func (s State) Ordering() (Ordering, bool) {
	if s.ordering == nil {
		return Ordering{}, false
	}
	return s.ordering.clone(), true
}

// Admin возвращает состояние админского диалога
func (s State) Admin() (Admin, bool) {
	if s.admin == nil {
		return Admin{}, false
	}
	return *s.admin, true
}

// WithOrdering возвращает состояние с обновлённым заказом
func WithOrdering(o Ordering) State {
	c := o.clone()
	return State{ordering: &c}
}

// StepName имя текущего шага для логов
func (s State) StepName() string {
	switch {
	case s.ordering != nil:
		return s.ordering.Step.String()
	case s.admin != nil:
		return s.admin.Step.String()
	default:
		return "none"
	}
}

// Clone глубокая копия состояния
func (s State) Clone() State {
	var c State
	if s.ordering != nil {
		o := s.ordering.clone()
		c.ordering = &o
	}
	if s.admin != nil {
		a := *s.admin
		c.admin = &a
	}
	return c
}

type stateJSON struct {
	Ordering *Ordering `json:"ordering,omitempty"`
	Admin    *Admin    `json:"admin,omitempty"`
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateJSON{Ordering: s.ordering, Admin: s.admin})
}

func (s *State) UnmarshalJSON(data []byte) error {
	var raw stateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Ordering != nil && raw.Admin != nil {
		return ErrDualFlow
	}
	s.ordering = raw.Ordering
	s.admin = raw.Admin
	return nil
}

func (o Ordering) clone() Ordering {
	a := o.Answers
	return Ordering{
		Step: o.Step,
		Answers: Answers{
			Direction: clonePtr(a.Direction),
			Year:      clonePtr(a.Year),
			Month:     clonePtr(a.Month),
			Day:       clonePtr(a.Day),
			Date:      clonePtr(a.Date),
			Phone:     clonePtr(a.Phone),
			TripType:  clonePtr(a.TripType),
			Car:       clonePtr(a.Car),
			Address:   clonePtr(a.Address),
			Comment:   clonePtr(a.Comment),
		},
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
