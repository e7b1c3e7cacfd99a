package routes

import (
	"fmt"
	"strings"
	"time"

	"rentals-clone-server/models"
	"rentals-clone-server/services"
	"rentals-clone-server/storage"
	"rentals-clone-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm/clause"
)

func CreateListing(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input CreateListingInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !models.ValidCategory(input.Category) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Unknown category: "+input.Category, ctx)
		return
	}

	listing := models.Listing{
		UserID:        userID,
		Title:         input.Title,
		Description:   input.Description,
		ImageSrc:      resolveImageSrc(input.ImageSrc),
		Category:      input.Category,
		RoomCount:     input.RoomCount,
		BathroomCount: input.BathroomCount,
		GuestCount:    input.GuestCount,
		LocationValue: input.LocationValue,
		Price:         input.Price,
	}

	result := storage.DB.Create(&listing)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "create", "listing", listing.ID, nil, listing)

	ctx.JSON(&listing)
}

func GetListings(ctx iris.Context) {
	db := storage.DB.Order("created_at DESC")

	if category := ctx.URLParam("category"); category != "" {
		db = db.Where("category = ?", category)
	}
	if userID := ctx.URLParam("userId"); userID != "" {
		db = db.Where("user_id = ?", userID)
	}
	if locationValue := ctx.URLParam("locationValue"); locationValue != "" {
		db = db.Where("location_value = ?", locationValue)
	}

	var listings []models.Listing
	listingsExist := db.Find(&listings)
	if listingsExist.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(listings)
}

func GetListing(ctx iris.Context) {
	params := ctx.Params()
	id := params.Get("id")

	listing := getListingAndAssociationsByID(id, ctx)
	if listing == nil {
		return
	}

	ctx.JSON(listing)
}

func DeleteListing(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)
	params := ctx.Params()
	id := params.Get("id")

	var listing models.Listing
	listingExists := storage.DB.Find(&listing, id)
	if listingExists.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if listingExists.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	if listing.UserID != userID {
		ctx.StatusCode(iris.StatusForbidden)
		return
	}

	deleteResult := storage.DB.Delete(&listing)
	if deleteResult.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "delete", "listing", listing.ID, listing, nil)

	ctx.StatusCode(iris.StatusNoContent)
}

// GetListingDisabledDates returns every calendar day already covered by
// a reservation on the listing, as YYYY-MM-DD strings for the client's
// date picker.
func GetListingDisabledDates(ctx iris.Context) {
	params := ctx.Params()
	id := params.Get("id")

	var reservations []models.Reservation
	reservationsExist := storage.DB.Where("listing_id = ?", id).Find(&reservations)
	if reservationsExist.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	disabledDates := services.DisabledDates(reservations)

	dates := make([]string, 0, len(disabledDates))
	for _, date := range disabledDates {
		dates = append(dates, date.Format("2006-01-02"))
	}

	ctx.JSON(iris.Map{"disabledDates": dates})
}

// GetListingQuote prices a candidate date range against the listing's
// nightly price.
func GetListingQuote(ctx iris.Context) {
	params := ctx.Params()
	id := params.Get("id")

	var listing models.Listing
	listingExists := storage.DB.Find(&listing, id)
	if listingExists.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if listingExists.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	startDate, endDate, rangeErr := parseDateRange(ctx.URLParam("startDate"), ctx.URLParam("endDate"))
	if rangeErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", rangeErr.Error(), ctx)
		return
	}

	ctx.JSON(iris.Map{
		"listingID":  listing.ID,
		"nights":     services.Nights(startDate, endDate),
		"totalPrice": services.ReservationTotal(startDate, endDate, listing.Price),
	})
}

func getListingAndAssociationsByID(id string, ctx iris.Context) *models.Listing {
	var listing models.Listing
	listingExists := storage.DB.Preload(clause.Associations).Find(&listing, id)

	if listingExists.Error != nil {
		utils.CreateInternalServerError(ctx)
		return nil
	}
	if listingExists.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return nil
	}

	return &listing
}

// resolveImageSrc uploads inline base64 images to the image host and
// passes already-hosted URLs through untouched.
func resolveImageSrc(imageSrc string) string {
	if imageSrc == "" {
		return ""
	}
	if strings.HasPrefix(imageSrc, "data:") {
		if hosted := storage.UploadBase64Image(imageSrc, utils.GenerateShortToken(8)); hosted != "" {
			return hosted
		}
	}
	return imageSrc
}

func parseDateRange(startDateStr, endDateStr string) (time.Time, time.Time, error) {
	if startDateStr == "" || endDateStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("startDate and endDate are required")
	}

	startDate, err := time.Parse("2006-01-02", startDateStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid startDate format")
	}

	endDate, err := time.Parse("2006-01-02", endDateStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid endDate format")
	}

	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, fmt.Errorf("endDate must not be before startDate")
	}

	return startDate, endDate, nil
}

type CreateListingInput struct {
	Title         string `json:"title" validate:"required,max=256"`
	Description   string `json:"description" validate:"required"`
	ImageSrc      string `json:"imageSrc" validate:"required"`
	Category      string `json:"category" validate:"required"`
	RoomCount     int    `json:"roomCount" validate:"required,min=1"`
	BathroomCount int    `json:"bathroomCount" validate:"required,min=1"`
	GuestCount    int    `json:"guestCount" validate:"required,min=1"`
	LocationValue string `json:"locationValue" validate:"required"`
	Price         int    `json:"price" validate:"required,min=1"`
}
