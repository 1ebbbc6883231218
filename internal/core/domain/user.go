package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidFriend = errors.New("invalid friend operation")

// User models a registered member of the network.
// PasswordHash is never serialized; every JSON rendering of a User is
// already the public projection.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	PicturePath  string    `json:"picturePath"`
	Friends      []string  `json:"friends"`
	Location     string    `json:"location,omitempty"`
	Occupation   string    `json:"occupation,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HasFriend reports whether friendID is present in the user's friend list.
func (u *User) HasFriend(friendID string) bool {
	for _, id := range u.Friends {
		if id == friendID {
			return true
		}
	}
	return false
}
