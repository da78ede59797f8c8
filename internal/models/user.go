// Package models defines the data types persisted by the PhotoStudio core:
// the durable user record, its credential-free session projection, and
// gallery items.
package models

import "github.com/dmitrijs2005/photostudio/internal/plans"

// User is the full durable record kept in the user directory. It is the only
// place credential material (Salt, Verifier) lives; everything handed to the
// presentation layer goes through Session().
type User struct {
	// Email is the unique identifier, immutable after creation.
	Email string `json:"email"`

	// Name is the display name.
	Name string `json:"name"`

	// Salt and Verifier are the stored credential material.
	Salt     []byte `json:"salt"`
	Verifier []byte `json:"verifier"`

	// Picture is a derived display image URL, optional.
	Picture string `json:"picture,omitempty"`

	// Plan is the current service tier.
	Plan plans.Tier `json:"plan"`

	// ImagesUsed and VideoSecondsUsed count consumption within the current
	// billing period (reset on plan switch).
	ImagesUsed       int `json:"imagesUsed"`
	VideoSecondsUsed int `json:"videoSecondsUsed"`

	// Gallery is the catalog of saved artifacts. Insertion order is not the
	// display order; listings sort by item id, most recent first.
	Gallery []GalleryItem `json:"gallery"`
}

// SessionUser is the projection of User exposed to the presentation layer.
// It never carries credential material.
type SessionUser struct {
	Email            string        `json:"email"`
	Name             string        `json:"name"`
	Picture          string        `json:"picture,omitempty"`
	Plan             plans.Tier    `json:"plan"`
	ImagesUsed       int           `json:"imagesUsed"`
	VideoSecondsUsed int           `json:"videoSecondsUsed"`
	Gallery          []GalleryItem `json:"gallery"`
}

// Session maps the durable record to its session view. The mapping is
// explicit, field by field, so credential material can never leak through a
// serialize-the-whole-record bug.
func (u *User) Session() *SessionUser {
	return &SessionUser{
		Email:            u.Email,
		Name:             u.Name,
		Picture:          u.Picture,
		Plan:             u.Plan,
		ImagesUsed:       u.ImagesUsed,
		VideoSecondsUsed: u.VideoSecondsUsed,
		Gallery:          append([]GalleryItem(nil), u.Gallery...),
	}
}
