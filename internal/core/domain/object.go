package domain

import (
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("object not found")
var ErrForbidden = errors.New("access forbidden")
var ErrClientNotFound = errors.New("assigned client does not exist")

// ConstructionObject is the core aggregate: a construction site tracked
// with a budget and the amount spent so far.
type ConstructionObject struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address,omitempty"`
	Budget  float64 `json:"budget"`
	Spent   float64 `json:"spent"`
	// ClientID is a weak reference to the assigned client;
	// nil when the object is unassigned.
	ClientID *int64 `json:"client_id"`
	// ClientName is the assigned client's username, joined at read time.
	ClientName string    `json:"client_name,omitempty"`
	Photo      string    `json:"photo,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Remaining returns the budget left to spend. Derived, never stored.
func (o ConstructionObject) Remaining() float64 {
	return o.Budget - o.Spent
}
