// Package models holds the persistent entities shared by repositories,
// services and the HTTP layer.
package models

import (
	"encoding/json"
	"time"
)

// Task is a single to-do item owned by one user.
type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Text        string    `json:"text"`
	Completed   bool      `json:"completed"`
	IsEditing   bool      `json:"isEditing"`
	CreatedDate time.Time `json:"createdDate"`
	UpdatedDate time.Time `json:"updatedDate"`
}

// TaskUpdate is the full replacement state submitted for a task. All three
// fields are written; there is no partial update and no version check.
type TaskUpdate struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	IsEditing bool   `json:"isEditing"`
}

// TimestampLayout is the wire form of task timestamps: UTC, millisecond
// precision, always three fractional digits.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func (t Task) MarshalJSON() ([]byte, error) {
	type alias Task
	return json.Marshal(struct {
		alias
		CreatedDate string `json:"createdDate"`
		UpdatedDate string `json:"updatedDate"`
	}{
		alias:       alias(t),
		CreatedDate: t.CreatedDate.UTC().Format(TimestampLayout),
		UpdatedDate: t.UpdatedDate.UTC().Format(TimestampLayout),
	})
}
