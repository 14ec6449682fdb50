package models

// Stats holds the portal's sustainability overview: total portions sold,
// CO2 saved across all listed meals and waste saved over completed orders.
// All three values are rounded to two decimals before serialization.
type Stats struct {
	PortionsSold int     `json:"portions_sold"`
	CO2SavedKg   float64 `json:"co2_saved_kg"`
	WasteSavedKg float64 `json:"waste_saved_kg"`
}
