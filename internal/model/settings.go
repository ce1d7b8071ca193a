package model

import "time"

type Settings struct {
	AdminID   int64     `json:"admin_id"`
	UpdatedAt time.Time `json:"updated_at"`
}
