package entity

import "time"

// Property is a listing. Optional fields are pointers so that values omitted
// at creation round-trip as JSON null rather than zero values.
// Properties are immutable once created.
type Property struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Location    *string   `json:"location"`
	Image       *string   `json:"image"`
	Address     *string   `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
}
