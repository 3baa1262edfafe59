package models

import "time"

// User is an account able to own tasks.
type User struct {
	ID           string
	UserName     string
	PasswordHash string `json:"-"`
	CreatedAt    time.Time
}
