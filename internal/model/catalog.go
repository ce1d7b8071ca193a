package model

import "time"

// Catalog справочник, которым управляет админ
type Catalog string

const (
	CatalogCars   Catalog = "cars"
	CatalogRoutes Catalog = "routes"
)

// CatalogEntry машина или маршрут. Имя уникально, сравнение с учётом регистра.
type CatalogEntry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Значения по умолчанию, если справочник пуст
var (
	DefaultCars   = []string{"Kaptiva", "Malibu", "Cobalt", "Gentra", "Largus", "Lasetti"}
	DefaultRoutes = []string{"Xorazmdan Buxoroga", "Buxorodan Xorazmga"}
)
