package services

import (
	"sort"
	"time"

	"rentals-clone-server/models"
)

// Availability and pricing derivation for a listing's calendar.

// DisabledDates returns every calendar day covered by any of the given
// reservations, from each start date through its end date inclusive.
// The result is deduplicated and sorted; overlapping reservations
// contribute each day once.
func DisabledDates(reservations []models.Reservation) []time.Time {
	seen := map[time.Time]bool{}
	for _, reservation := range reservations {
		for day := dateOnly(reservation.StartDate); !day.After(dateOnly(reservation.EndDate)); day = day.AddDate(0, 0, 1) {
			seen[day] = true
		}
	}

	dates := make([]time.Time, 0, len(seen))
	for day := range seen {
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Nights is the whole-day difference between the two dates. A same-day
// or inverted range yields zero or a negative count.
func Nights(startDate, endDate time.Time) int {
	return int(dateOnly(endDate).Sub(dateOnly(startDate)).Hours() / 24)
}

// ReservationTotal prices a candidate range: nights times the nightly
// price, with a minimum of one night charged for empty or same-day
// ranges.
func ReservationTotal(startDate, endDate time.Time, nightlyPrice int) int {
	nights := Nights(startDate, endDate)
	if nights > 0 {
		return nights * nightlyPrice
	}
	return nightlyPrice
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
