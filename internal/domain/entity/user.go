// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is the core identity entity. For the ordering core only the identity
// and the loyalty balance matter; registration and credentials live with the
// identity provider.
type User struct {
	ID            uuid.UUID       `json:"id"`             // The Global Unique Identifier (GUID) for the user.
	Email         string          `json:"email"`          // The user's primary contact email.
	Name          string          `json:"name"`           // The user's display name.
	LoyaltyPoints decimal.Decimal `json:"loyalty_points"` // Running loyalty balance; never negative.
	CreatedAt     time.Time       `json:"created_at"`     // Timestamp of when this account was created.
	UpdatedAt     time.Time       `json:"updated_at"`     // Timestamp of the last modification.
}
