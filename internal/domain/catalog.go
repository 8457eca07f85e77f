package domain

// ServiceItem represents a bookable service from the shop catalog
// Duration drives the slot length; multiple services may be attached to one appointment
type ServiceItem struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Notes           *string `json:"notes,omitempty"`
}

// Professional represents a barber whose calendar is queried for availability
// Availability is scoped per professional, there is no shared pool
type Professional struct {
	ID        int64
	Name      string
	Specialty string
	ImageURL  *string
}
