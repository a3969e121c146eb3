package types

import (
	"strings"
	"time"
)

// User represents a registered account. The password field holds whatever the
// caller stored (the API layer stores a bcrypt hash) and is never serialized.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserCredentials is the request body for both registration and login.
type UserCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

const (
	maxUsernameLength = 50
	minPasswordLength = 6
)

// Validate applies the account credential rules shared by registration and
// login, returning a field -> message map of violations.
func (u *UserCredentials) Validate() map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(u.Username) == "" {
		fields["username"] = "must not be blank"
	} else if len(u.Username) > maxUsernameLength {
		fields["username"] = "must be at most 50 characters"
	}

	if u.Password == "" {
		fields["password"] = "must not be blank"
	} else if len(u.Password) < minPasswordLength {
		fields["password"] = "must be at least 6 characters"
	}

	return fields
}
