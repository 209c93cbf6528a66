package models

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the server-assigned fields shared by every record.
// id is a uuid4 string and never changes after creation; updated_at
// is refreshed on every successful write.
type Base struct {
	ID        string    `json:"id" bson:"id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func NewBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *Base) Touch() {
	b.UpdatedAt = time.Now().UTC()
}
