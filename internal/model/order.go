package model

import "time"

type TripType string

const (
	TripTypePerson TripType = "person" // Odam
	TripTypeCargo  TripType = "cargo"  // Pochta
)

// Order оформленный заказ, после создания не меняется
type Order struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Direction string    `json:"direction"`
	Date      time.Time `json:"date"`
	Phone     string    `json:"phone"`
	TripType  TripType  `json:"trip_type"`
	Car       string    `json:"car"`
	Address   string    `json:"address"`
	Comment   string    `json:"comment"` // пустая строка - без комментария
	CreatedAt time.Time `json:"created_at"`
}
