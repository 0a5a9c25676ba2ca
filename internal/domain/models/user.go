package models

import "backend/internal/domain"

type User struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone,omitempty"`
	Type      domain.UserType `json:"type"`
	CreatedAt string          `json:"createdAt,omitempty"`
}
