package domain

import "time"

// AdminUser is an operator account. Rows are created or updated only by the
// startup bootstrap from configured credentials, never by the web surface.
type AdminUser struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
