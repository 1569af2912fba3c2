package domain

import "time"

// Task is a single to-do item owned by a user. Status is a plain completed
// flag: true means completed, false means pending.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Status      bool
	CreatedAt   time.Time
}
