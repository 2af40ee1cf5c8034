package models

import "github.com/google/uuid"

// User is a participant as handed to the engine by the identity layer.
// Users arrive already authenticated; the engine never issues credentials.
type User struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
