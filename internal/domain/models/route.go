package models

import "backend/internal/domain"

type Route struct {
	ID          int64              `json:"id"`
	RouteName   string             `json:"routeName"`
	Origin      string             `json:"origin"`
	Destination string             `json:"destination"`
	DistanceKM  float64            `json:"distanceKm"`
	Duration    string             `json:"duration,omitempty"`
	Description string             `json:"description,omitempty"`
	Status      domain.RouteStatus `json:"status"`
}
