package entities

import (
	"errors"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID        uint
	CreatedAt time.Time
	Username  string
	Email     string
	Password  string
	Role      Role
}

func NewUser(username, email, passwordDigest string, role Role) *User {
	return &User{
		CreatedAt: time.Now().UTC(),
		Username:  username,
		Email:     email,
		Password:  passwordDigest,
		Role:      role,
	}
}

func (u *User) Validate() error {
	if u.Username == "" {
		return errors.New("username must not be empty")
	}
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if u.Password == "" {
		return errors.New("password must not be empty")
	}
	if !u.Role.Valid() {
		return errors.New("role must be user or admin")
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
