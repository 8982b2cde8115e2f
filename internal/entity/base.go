package entity

import "time"

// Base carries the surrogate id and bookkeeping timestamps shared by every
// table. Ids are assigned by the database on insert.
type Base struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
