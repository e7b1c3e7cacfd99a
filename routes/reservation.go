package routes

import (
	"fmt"
	"time"

	"rentals-clone-server/models"
	"rentals-clone-server/storage"
	"rentals-clone-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

func CreateReservation(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input CreateReservationInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.EndDate.Before(input.StartDate) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "endDate must not be before startDate", ctx)
		return
	}

	var listing models.Listing
	listingExists := storage.DB.Find(&listing, input.ListingID)
	if listingExists.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if listingExists.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	reservation := models.Reservation{
		ListingID:  input.ListingID,
		UserID:     userID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		TotalPrice: input.TotalPrice,
	}

	result := storage.DB.Create(&reservation)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "create", "reservation", reservation.ID, nil, reservation)

	// Mirror of the create contract: the listing comes back with the
	// fresh reservation attached.
	reservation.Listing = listing
	ctx.JSON(iris.Map{
		"listing":     &listing,
		"reservation": reservation.Safe(),
	})
}

// DeleteReservation removes a reservation when the caller is either the
// renter who made it or the owner of the listing it was made on. A
// mismatch deletes zero rows and is still reported as success with the
// affected count.
func DeleteReservation(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)
	params := ctx.Params()
	id := params.Get("id")

	var before models.Reservation
	haveBefore := storage.DB.Find(&before, "id = ?", id).Error == nil

	ownedListings := storage.DB.Model(&models.Listing{}).Select("id").Where("user_id = ?", userID)
	result := storage.DB.
		Where("id = ? AND (user_id = ? OR listing_id IN (?))", id, userID, ownedListings).
		Delete(&models.Reservation{})

	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if haveBefore && result.RowsAffected > 0 {
		utils.Audit(ctx, "delete", "reservation", before.ID, before, nil)
	}

	ctx.JSON(iris.Map{"deleted": result.RowsAffected})
}

// GetReservations serves the three orthogonal lookup modes: by listing,
// by the renter who made them, or by the owner of the listings they
// were made on.
func GetReservations(ctx iris.Context) {
	query, queryErr := parseReservationQuery(
		ctx.URLParam("listingId"),
		ctx.URLParam("userId"),
		ctx.URLParam("authorId"),
	)
	if queryErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", queryErr.Error(), ctx)
		return
	}

	var reservations []models.Reservation
	reservationsExist := query.apply(storage.DB).
		Preload("Listing").
		Order("reservations.created_at DESC").
		Find(&reservations)
	if reservationsExist.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	safeReservations := make([]models.SafeReservation, 0, len(reservations))
	for i := range reservations {
		safeReservations = append(safeReservations, reservations[i].Safe())
	}

	ctx.JSON(safeReservations)
}

type reservationQueryMode int

const (
	reservationsByListing reservationQueryMode = iota
	reservationsByUser
	reservationsByOwner
)

// reservationQuery is a tagged lookup specification: exactly one mode
// with its subject ID.
type reservationQuery struct {
	mode reservationQueryMode
	id   string
}

func parseReservationQuery(listingID, userID, authorID string) (reservationQuery, error) {
	set := 0
	query := reservationQuery{}

	if listingID != "" {
		query = reservationQuery{mode: reservationsByListing, id: listingID}
		set++
	}
	if userID != "" {
		query = reservationQuery{mode: reservationsByUser, id: userID}
		set++
	}
	if authorID != "" {
		query = reservationQuery{mode: reservationsByOwner, id: authorID}
		set++
	}

	if set != 1 {
		return reservationQuery{}, fmt.Errorf("exactly one of listingId, userId or authorId is required")
	}

	return query, nil
}

func (q reservationQuery) apply(db *gorm.DB) *gorm.DB {
	switch q.mode {
	case reservationsByListing:
		return db.Where("reservations.listing_id = ?", q.id)
	case reservationsByUser:
		return db.Where("reservations.user_id = ?", q.id)
	case reservationsByOwner:
		// Owner lookup joins through listing ownership.
		return db.
			Joins("JOIN listings ON listings.id = reservations.listing_id").
			Where("listings.user_id = ?", q.id)
	}
	return db
}

type CreateReservationInput struct {
	ListingID  uint      `json:"listingID" validate:"required"`
	StartDate  time.Time `json:"startDate" validate:"required"`
	EndDate    time.Time `json:"endDate" validate:"required"`
	TotalPrice int       `json:"totalPrice" validate:"required,min=1"`
}
