package models

import "backend/internal/domain"

type Parcel struct {
	ID             int64               `json:"id"`
	TrackingNumber string              `json:"trackingNumber"`
	SenderName     string              `json:"senderName"`
	SenderPhone    string              `json:"senderPhone"`
	ReceiverName   string              `json:"receiverName"`
	ReceiverPhone  string              `json:"receiverPhone"`
	RouteID        int64               `json:"routeId"`
	WeightKG       float64             `json:"weightKg"`
	DeliveryCost   float64             `json:"deliveryCost"`
	TravelDate     string              `json:"travelDate"`
	Status         domain.ParcelStatus `json:"status"`
	CreatedAt      string              `json:"createdAt,omitempty"`
	UpdatedAt      string              `json:"updatedAt,omitempty"`

	// join fields for listings
	RouteName  string `json:"routeName,omitempty"`
	OperatorID int64  `json:"operatorId,omitempty"`
}
