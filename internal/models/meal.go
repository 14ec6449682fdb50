package models

import "time"

// Meal is a cafeteria dish offered on a specific day. A meal can be the
// day's special, a surplus offer, both or neither; the two flags are
// independent. CO2KgPerPortion and PortionsAvailable are optional.
type Meal struct {
	UID               string    `json:"id"`
	Name              string    `json:"name"`
	Description       *string   `json:"description,omitempty"`
	Price             float64   `json:"price"`
	Day               time.Time `json:"day"`
	IsTodaySpecial    bool      `json:"is_today_special"`
	IsSurplusOffer    bool      `json:"is_surplus_offer"`
	CO2KgPerPortion   *float64  `json:"co2_kg_per_portion,omitempty"`
	PortionsAvailable *int      `json:"portions_available,omitempty"`
}

// DummyMeal carries the JSON payload of an admin meal creation request.
// The day arrives as a string so it can be validated and parsed by hand.
type DummyMeal struct {
	Name              string   `json:"name" validate:"required,min=1,max=200"`
	Description       *string  `json:"description,omitempty"`
	Price             *float64 `json:"price" validate:"required,gte=0"`
	Day               string   `json:"day" validate:"required"`
	IsTodaySpecial    bool     `json:"is_today_special"`
	IsSurplusOffer    bool     `json:"is_surplus_offer"`
	CO2KgPerPortion   *float64 `json:"co2_kg_per_portion,omitempty" validate:"omitempty,gte=0"`
	PortionsAvailable *int     `json:"portions_available,omitempty" validate:"omitempty,gte=0"`
}
