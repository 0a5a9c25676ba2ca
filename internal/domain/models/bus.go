package models

import "backend/internal/domain"

type Bus struct {
	ID         int64            `json:"id"`
	BusNumber  string           `json:"busNumber"`
	BusName    string           `json:"busName"`
	BusType    string           `json:"busType"`
	TotalSeats int              `json:"totalSeats"`
	SeatLayout string           `json:"seatLayout"` // e.g. "2x2"
	OperatorID int64            `json:"operatorId"`
	Status     domain.BusStatus `json:"status"`
	CreatedAt  string           `json:"createdAt,omitempty"`

	// join fields for listings
	OperatorName    string `json:"operatorName,omitempty"`
	ActiveSchedules int    `json:"activeSchedules,omitempty"`
}

// Seat rows are owned by their bus and never outlive it.
type Seat struct {
	ID       int64  `json:"id"`
	BusID    int64  `json:"busId"`
	SeatCode string `json:"seatCode"`
}
