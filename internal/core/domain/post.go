package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")

// Post is a single feed entry. Author identity and display fields are
// denormalized at creation time; Likes maps liker user id to true and is
// mutated only by the like toggle.
type Post struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Description     string          `json:"description"`
	PicturePath     string          `json:"picturePath,omitempty"`
	UserPicturePath string          `json:"userPicturePath,omitempty"`
	Likes           map[string]bool `json:"likes"`
	CreatedAt       time.Time       `json:"createdAt"`
}
