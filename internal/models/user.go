package models

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusBlocked  UserStatus = "blocked"
)

// User is the platform's account record as the front-end sees it.
type User struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	City    string       `json:"city"`
	Role    UserRole     `json:"role"`
	Status  UserStatus   `json:"status"`
	CNIC    string       `json:"cnic,omitempty"`
	Gender  string       `json:"gender,omitempty"`
	Profile *UserProfile `json:"profile,omitempty"`
}

type UserProfile struct {
	DOB          string `json:"dob,omitempty"`
	Gender       string `json:"gender,omitempty"`
	CNIC         string `json:"cnic,omitempty"`
	Province     string `json:"province,omitempty"`
	City         string `json:"city,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// UserUpdate carries a partial profile edit. Nil fields are left untouched
// when merged into the session's user record.
type UserUpdate struct {
	Name   *string `json:"name,omitempty"`
	City   *string `json:"city,omitempty"`
	CNIC   *string `json:"cnic,omitempty"`
	Gender *string `json:"gender,omitempty"`
}
