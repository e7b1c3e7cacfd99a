package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

type Listing struct {
	gorm.Model
	UserID        uint          `json:"userID" gorm:"index;not null"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	ImageSrc      string        `json:"imageSrc"`
	Category      string        `json:"category" gorm:"index"`
	RoomCount     int           `json:"roomCount"`
	BathroomCount int           `json:"bathroomCount"`
	GuestCount    int           `json:"guestCount"`
	LocationValue string        `json:"locationValue" gorm:"index"`
	Price         int           `json:"price"` // per night
	Reservations  []Reservation `json:"reservations"`
	User          User          `json:"user" gorm:"foreignKey:UserID;references:ID"`
}

// Custom JSON marshaling to only include the owner when it is actually
// loaded and to avoid the circular listing -> user -> listings reference.
func (l *Listing) MarshalJSON() ([]byte, error) {
	type Alias Listing
	aux := &struct {
		User *User `json:"user,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(l),
	}

	if l.User.ID > 0 {
		userCopy := l.User
		userCopy.Listings = nil
		aux.User = &userCopy
	}

	return json.Marshal(aux)
}
