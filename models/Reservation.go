package models

import (
	"time"

	"gorm.io/gorm"
)

type Reservation struct {
	gorm.Model
	ListingID  uint      `json:"listingID" gorm:"index;not null"`
	UserID     uint      `json:"userID" gorm:"index;not null"`
	StartDate  time.Time `json:"startDate" gorm:"not null"`
	EndDate    time.Time `json:"endDate" gorm:"not null"` // invariant: StartDate <= EndDate
	TotalPrice int       `json:"totalPrice"`
	Listing    Listing   `json:"listing" gorm:"foreignKey:ListingID"`
}

// SafeReservation is the wire form of a reservation: every date is an
// ISO-8601 string rather than a raw time value.
type SafeReservation struct {
	ID         uint         `json:"id"`
	ListingID  uint         `json:"listingID"`
	UserID     uint         `json:"userID"`
	StartDate  string       `json:"startDate"`
	EndDate    string       `json:"endDate"`
	TotalPrice int          `json:"totalPrice"`
	CreatedAt  string       `json:"createdAt"`
	Listing    *SafeListing `json:"listing,omitempty"`
}

// SafeListing mirrors Listing with its creation time as an ISO-8601 string.
type SafeListing struct {
	ID            uint   `json:"id"`
	UserID        uint   `json:"userID"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ImageSrc      string `json:"imageSrc"`
	Category      string `json:"category"`
	RoomCount     int    `json:"roomCount"`
	BathroomCount int    `json:"bathroomCount"`
	GuestCount    int    `json:"guestCount"`
	LocationValue string `json:"locationValue"`
	Price         int    `json:"price"`
	CreatedAt     string `json:"createdAt"`
}

func (r *Reservation) Safe() SafeReservation {
	safe := SafeReservation{
		ID:         r.ID,
		ListingID:  r.ListingID,
		UserID:     r.UserID,
		StartDate:  r.StartDate.UTC().Format(time.RFC3339),
		EndDate:    r.EndDate.UTC().Format(time.RFC3339),
		TotalPrice: r.TotalPrice,
		CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
	}

	if r.Listing.ID > 0 {
		listing := r.Listing.Safe()
		safe.Listing = &listing
	}

	return safe
}

func (l *Listing) Safe() SafeListing {
	return SafeListing{
		ID:            l.ID,
		UserID:        l.UserID,
		Title:         l.Title,
		Description:   l.Description,
		ImageSrc:      l.ImageSrc,
		Category:      l.Category,
		RoomCount:     l.RoomCount,
		BathroomCount: l.BathroomCount,
		GuestCount:    l.GuestCount,
		LocationValue: l.LocationValue,
		Price:         l.Price,
		CreatedAt:     l.CreatedAt.UTC().Format(time.RFC3339),
	}
}
