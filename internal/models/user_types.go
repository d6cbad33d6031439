package models

import "github.com/tonycharles1/Trackz/internal/sheetstore"

// Roles a user row may carry. Only admins may delete reference data.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User maps one row of the Users tab. Username is the unique key.
type User struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // never serialized
	Role         string `json:"role"`
}

func UserFromRecord(rec sheetstore.Record) User {
	return User{
		Username:     rec["Username"],
		Email:        rec["Email"],
		PasswordHash: rec["Password"],
		Role:         rec["Role"],
	}
}

func (u User) ToRecord() sheetstore.Record {
	return sheetstore.Record{
		"Username": u.Username,
		"Email":    u.Email,
		"Password": u.PasswordHash,
		"Role":     u.Role,
	}
}
