package model

import "time"

// User is a user-account record managed by the store. The extraction
// pipeline itself is single-tenant and does not consult it.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
