package domain

import "strings"

// Status values are closed enums per entity; unknown values are rejected at
// the boundary instead of being passed through to SQL.

type BusStatus string

const (
	BusActive      BusStatus = "active"
	BusMaintenance BusStatus = "maintenance"
	BusInactive    BusStatus = "inactive"
)

func ParseBusStatus(s string) (BusStatus, bool) {
	switch BusStatus(strings.ToLower(strings.TrimSpace(s))) {
	case BusActive:
		return BusActive, true
	case BusMaintenance:
		return BusMaintenance, true
	case BusInactive:
		return BusInactive, true
	}
	return "", false
}

type RouteStatus string

const (
	RouteActive   RouteStatus = "active"
	RouteInactive RouteStatus = "inactive"
)

func ParseRouteStatus(s string) (RouteStatus, bool) {
	switch RouteStatus(strings.ToLower(strings.TrimSpace(s))) {
	case RouteActive:
		return RouteActive, true
	case RouteInactive:
		return RouteInactive, true
	}
	return "", false
}

type ParcelStatus string

const (
	ParcelPending   ParcelStatus = "pending"
	ParcelInTransit ParcelStatus = "in_transit"
	ParcelDelivered ParcelStatus = "delivered"
	ParcelCancelled ParcelStatus = "cancelled"
)

// ParcelStatuses is the fixed display order used by stats panels.
var ParcelStatuses = []ParcelStatus{ParcelPending, ParcelInTransit, ParcelDelivered, ParcelCancelled}

func ParseParcelStatus(s string) (ParcelStatus, bool) {
	switch ParcelStatus(strings.ToLower(strings.TrimSpace(s))) {
	case ParcelPending:
		return ParcelPending, true
	case ParcelInTransit:
		return ParcelInTransit, true
	case ParcelDelivered:
		return ParcelDelivered, true
	case ParcelCancelled:
		return ParcelCancelled, true
	}
	return "", false
}

type UserType string

const (
	UserAdmin     UserType = "admin"
	UserOperator  UserType = "operator"
	UserPassenger UserType = "passenger"
)

func ParseUserType(s string) (UserType, bool) {
	switch UserType(strings.ToLower(strings.TrimSpace(s))) {
	case UserAdmin:
		return UserAdmin, true
	case UserOperator:
		return UserOperator, true
	case UserPassenger:
		return UserPassenger, true
	}
	return "", false
}

// Schedule/booking statuses belong to collaborators; only the values the
// integrity guard reads are named here.
const (
	ScheduleActive   = "active"
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
)
