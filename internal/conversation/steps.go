package conversation

import "fmt"

// OrderStep шаг диалога оформления заказа
type OrderStep int

const (
	StepDirection OrderStep = iota + 1
	StepYear
	StepMonth
	StepDay
	StepPhone
	StepTripType
	StepCar
	StepAddress
	StepComment
	StepConfirm
)

var orderStepNames = map[OrderStep]string{
	StepDirection: "direction",
	StepYear:      "year",
	StepMonth:     "month",
	StepDay:       "day",
	StepPhone:     "phone",
	StepTripType:  "trip_type",
	StepCar:       "car",
	StepAddress:   "address",
	StepComment:   "comment",
	StepConfirm:   "confirm",
}

func (s OrderStep) String() string {
	if name, ok := orderStepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("order_step(%d)", int(s))
}

// MarshalText сохраняет шаг по имени, чтобы состояние в redis/bolt было читаемым
func (s OrderStep) MarshalText() ([]byte, error) {
	name, ok := orderStepNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown order step %d", int(s))
	}
	return []byte(name), nil
}

func (s *OrderStep) UnmarshalText(text []byte) error {
	step, err := parseOrderStep(string(text))
	if err != nil {
		return err
	}
	*s = step
	return nil
}

func parseOrderStep(name string) (OrderStep, error) {
	for step, n := range orderStepNames {
		if n == name {
			return step, nil
		}
	}
	return 0, fmt.Errorf("unknown order step %q", name)
}

// AdminStep шаг админского диалога
type AdminStep int

const (
	AdminAddCar AdminStep = iota + 1
	AdminDelCar
	AdminAddRoute
	AdminDelRoute
)

var adminStepNames = map[AdminStep]string{
	AdminAddCar:   "add_car",
	AdminDelCar:   "del_car",
	AdminAddRoute: "add_route",
	AdminDelRoute: "del_route",
}

func (s AdminStep) String() string {
	if name, ok := adminStepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("admin_step(%d)", int(s))
}

func (s AdminStep) MarshalText() ([]byte, error) {
	name, ok := adminStepNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown admin step %d", int(s))
	}
	return []byte(name), nil
}

func (s *AdminStep) UnmarshalText(text []byte) error {
	for step, name := range adminStepNames {
		if name == string(text) {
			*s = step
			return nil
		}
	}
	return fmt.Errorf("unknown admin step %q", string(text))
}

// TripType тип поездки
type TripType string

const (
	TripPerson TripType = "person"
	TripCargo  TripType = "cargo"
)

// ParseTripType принимает только известные типы поездки
func ParseTripType(s string) (TripType, bool) {
	switch TripType(s) {
	case TripPerson, TripCargo:
		return TripType(s), true
	default:
		return "", false
	}
}
