package model

import (
	"time"

	"github.com/google/uuid"
)

type Track struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	GroupID   *uuid.UUID `db:"group_id" json:"group_id,omitempty"`
	Position  int        `db:"position" json:"position"`
	Visible   bool       `db:"visible" json:"visible"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

type TrackGroup struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Color     string    `db:"color" json:"color"`
	Visible   bool      `db:"visible" json:"visible"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
