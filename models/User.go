package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	Email          string         `json:"email" gorm:"uniqueIndex"`
	Password       string         `json:"password"`
	SocialLogin    bool           `json:"socialLogin"`
	SocialProvider string         `json:"socialProvider"`
	AvatarURL      string         `json:"avatarURL"`
	SavedListings  datatypes.JSON `json:"savedListings"`
	Listings       []Listing      `json:"listings" gorm:"foreignKey:UserID;references:ID"`
}

// Custom JSON marshaling so SavedListings always serializes as an array
// and the password hash never leaves the server.
func (u *User) MarshalJSON() ([]byte, error) {
	type Alias User
	aux := &struct {
		Password      string `json:"password,omitempty"`
		SavedListings []uint `json:"savedListings"`
		*Alias
	}{
		SavedListings: []uint{},
		Alias:         (*Alias)(u),
	}

	if u.SavedListings != nil {
		var saved []uint
		if err := json.Unmarshal(u.SavedListings, &saved); err == nil {
			aux.SavedListings = saved
		}
	}

	return json.Marshal(aux)
}
