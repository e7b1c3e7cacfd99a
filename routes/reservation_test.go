package routes

import (
	"testing"
	"time"

	"rentals-clone-server/models"
)

func TestParseReservationQueryModes(t *testing.T) {
	cases := []struct {
		name                        string
		listingID, userID, authorID string
		wantMode                    reservationQueryMode
		wantID                      string
	}{
		{"by listing", "7", "", "", reservationsByListing, "7"},
		{"by renter", "", "3", "", reservationsByUser, "3"},
		{"by owner", "", "", "5", reservationsByOwner, "5"},
	}

	for _, tc := range cases {
		query, err := parseReservationQuery(tc.listingID, tc.userID, tc.authorID)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if query.mode != tc.wantMode || query.id != tc.wantID {
			t.Fatalf("%s: expected mode %d id %q, got mode %d id %q",
				tc.name, tc.wantMode, tc.wantID, query.mode, query.id)
		}
	}
}

func TestParseReservationQueryRequiresExactlyOne(t *testing.T) {
	if _, err := parseReservationQuery("", "", ""); err == nil {
		t.Fatal("expected an error with no lookup mode")
	}
	if _, err := parseReservationQuery("7", "3", ""); err == nil {
		t.Fatal("expected an error with two lookup modes")
	}
	if _, err := parseReservationQuery("7", "3", "5"); err == nil {
		t.Fatal("expected an error with three lookup modes")
	}
}

func TestSafeReservationSerializesISODates(t *testing.T) {
	reservation := models.Reservation{
		ListingID:  7,
		UserID:     3,
		StartDate:  time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, time.January, 12, 0, 0, 0, 0, time.UTC),
		TotalPrice: 200,
	}
	reservation.ID = 42
	reservation.CreatedAt = time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)

	safe := reservation.Safe()

	if safe.StartDate != "2024-01-10T00:00:00Z" {
		t.Fatalf("unexpected startDate wire format: %q", safe.StartDate)
	}
	if safe.EndDate != "2024-01-12T00:00:00Z" {
		t.Fatalf("unexpected endDate wire format: %q", safe.EndDate)
	}
	if safe.CreatedAt != "2024-01-02T15:04:05Z" {
		t.Fatalf("unexpected createdAt wire format: %q", safe.CreatedAt)
	}
	if safe.Listing != nil {
		t.Fatal("expected no listing when the association is not loaded")
	}

	reservation.Listing = models.Listing{
		Title:    "Sea view flat",
		Category: "Beach",
		Price:    100,
	}
	reservation.Listing.ID = 7
	reservation.Listing.CreatedAt = time.Date(2023, time.December, 24, 8, 0, 0, 0, time.UTC)

	safe = reservation.Safe()
	if safe.Listing == nil {
		t.Fatal("expected the loaded listing on the wire form")
	}
	if safe.Listing.CreatedAt != "2023-12-24T08:00:00Z" {
		t.Fatalf("unexpected listing createdAt wire format: %q", safe.Listing.CreatedAt)
	}
}

func TestParseDateRange(t *testing.T) {
	start, end, err := parseDateRange("2024-01-10", "2024-01-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)) ||
		!end.Equal(time.Date(2024, time.January, 12, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected range: %v .. %v", start, end)
	}

	if _, _, err := parseDateRange("", "2024-01-12"); err == nil {
		t.Fatal("expected an error for a missing startDate")
	}
	if _, _, err := parseDateRange("01/10/2024", "2024-01-12"); err == nil {
		t.Fatal("expected an error for a malformed startDate")
	}
	if _, _, err := parseDateRange("2024-01-12", "2024-01-10"); err == nil {
		t.Fatal("expected an error for an inverted range")
	}
}
