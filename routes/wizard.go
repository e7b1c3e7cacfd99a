package routes

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"rentals-clone-server/models"
	"rentals-clone-server/services"
	"rentals-clone-server/storage"
	"rentals-clone-server/utils"

	"github.com/kataras/iris/v12"
)

// Wizard sessions live in Redis for the lifetime of the creation
// dialog and are discarded on submit or close. The store is a package
// variable so tests can swap in an in-memory one.

const wizardSessionTTL = time.Hour

var errWizardNotFound = errors.New("wizard session not found")

type wizardStore interface {
	Get(token string) (*services.Wizard, error)
	Save(token string, wizard *services.Wizard) error
	Delete(token string) error
}

var wizardSessions wizardStore = redisWizardStore{}

type redisWizardStore struct{}

func (redisWizardStore) key(token string) string { return "wizard:" + token }

func (s redisWizardStore) Get(token string) (*services.Wizard, error) {
	payload, err := storage.Redis.Get(context.Background(), s.key(token)).Result()
	if err != nil {
		return nil, errWizardNotFound
	}

	var wizard services.Wizard
	if err := json.Unmarshal([]byte(payload), &wizard); err != nil {
		return nil, err
	}
	return &wizard, nil
}

func (s redisWizardStore) Save(token string, wizard *services.Wizard) error {
	payload, err := json.Marshal(wizard)
	if err != nil {
		return err
	}
	return storage.Redis.Set(context.Background(), s.key(token), payload, wizardSessionTTL).Err()
}

func (s redisWizardStore) Delete(token string) error {
	return storage.Redis.Del(context.Background(), s.key(token)).Err()
}

func StartWizard(ctx iris.Context) {
	token := utils.GenerateShortToken(16)
	if token == "" {
		utils.CreateInternalServerError(ctx)
		return
	}

	wizard := services.NewWizard()
	if err := wizardSessions.Save(token, wizard); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(wizardState(token, wizard))
}

func GetWizard(ctx iris.Context) {
	token := ctx.Params().Get("token")

	wizard, err := loadWizard(token, ctx)
	if wizard == nil || err != nil {
		return
	}

	ctx.JSON(wizardState(token, wizard))
}

// UpdateWizardFields merges a partial field edit into the session.
// Every edit validates immediately; there is no deferred validation.
func UpdateWizardFields(ctx iris.Context) {
	token := ctx.Params().Get("token")

	wizard, err := loadWizard(token, ctx)
	if wizard == nil || err != nil {
		return
	}

	var input WizardFieldsInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.Category != nil {
		if !models.ValidCategory(*input.Category) {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "Unknown category: "+*input.Category, ctx)
			return
		}
		wizard.Fields.Category = *input.Category
	}
	if input.LocationValue != nil {
		wizard.Fields.LocationValue = *input.LocationValue
	}
	if input.GuestCount != nil {
		wizard.Fields.GuestCount = *input.GuestCount
	}
	if input.RoomCount != nil {
		wizard.Fields.RoomCount = *input.RoomCount
	}
	if input.BathroomCount != nil {
		wizard.Fields.BathroomCount = *input.BathroomCount
	}
	if input.ImageSrc != nil {
		wizard.Fields.ImageSrc = *input.ImageSrc
	}
	if input.Title != nil {
		wizard.Fields.Title = *input.Title
	}
	if input.Description != nil {
		wizard.Fields.Description = *input.Description
	}
	if input.Price != nil {
		wizard.Fields.Price = *input.Price
	}

	if err := wizardSessions.Save(token, wizard); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(wizardState(token, wizard))
}

// WizardBack retreats one step. At the first step there is no back
// action to take.
func WizardBack(ctx iris.Context) {
	token := ctx.Params().Get("token")

	wizard, err := loadWizard(token, ctx)
	if wizard == nil || err != nil {
		return
	}

	if !wizard.CanRetreat() {
		utils.CreateError(iris.StatusConflict, "Conflict", "Cannot go back from the first step.", ctx)
		return
	}

	wizard.Retreat()
	if err := wizardSessions.Save(token, wizard); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(wizardState(token, wizard))
}

// ConfirmWizard is the overloaded primary action: at non-terminal steps
// it advances, at the price step it validates the whole field set,
// creates the listing and discards the session. A failed submission
// leaves the session untouched so the client may retry.
func ConfirmWizard(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)
	token := ctx.Params().Get("token")

	wizard, err := loadWizard(token, ctx)
	if wizard == nil || err != nil {
		return
	}

	if !wizard.Confirm() {
		if err := wizardSessions.Save(token, wizard); err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		ctx.JSON(wizardState(token, wizard))
		return
	}

	// Terminal step: validate the complete accumulated field set, not
	// just the visible step's.
	input := CreateListingInput{
		Title:         wizard.Fields.Title,
		Description:   wizard.Fields.Description,
		ImageSrc:      wizard.Fields.ImageSrc,
		Category:      wizard.Fields.Category,
		RoomCount:     wizard.Fields.RoomCount,
		BathroomCount: wizard.Fields.BathroomCount,
		GuestCount:    wizard.Fields.GuestCount,
		LocationValue: wizard.Fields.LocationValue,
		Price:         wizard.Fields.Price,
	}

	if err := ctx.Application().Validate(input); err != nil {
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

	wizardSessions.Delete(token)

	ctx.JSON(iris.Map{
		"submitted": true,
		"listing":   &listing,
	})
}

// CloseWizard discards the session without submitting.
func CloseWizard(ctx iris.Context) {
	token := ctx.Params().Get("token")

	if err := wizardSessions.Delete(token); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}

func loadWizard(token string, ctx iris.Context) (*services.Wizard, error) {
	wizard, err := wizardSessions.Get(token)
	if err != nil {
		if errors.Is(err, errWizardNotFound) {
			utils.CreateNotFound(ctx)
		} else {
			utils.CreateInternalServerError(ctx)
		}
		return nil, err
	}
	return wizard, nil
}

// wizardState renders the machine plus its derived labels, the same
// shape after every wizard operation.
func wizardState(token string, wizard *services.Wizard) iris.Map {
	state := iris.Map{
		"token":       token,
		"step":        int(wizard.Step),
		"stepName":    wizard.Step.String(),
		"fields":      wizard.Fields,
		"actionLabel": wizard.ActionLabel(),
	}

	if label, ok := wizard.SecondaryActionLabel(); ok {
		state["secondaryActionLabel"] = label
	}

	return state
}

// WizardFieldsInput is a partial edit: only present fields are applied.
type WizardFieldsInput struct {
	Category      *string `json:"category"`
	LocationValue *string `json:"locationValue"`
	GuestCount    *int    `json:"guestCount" validate:"omitempty,min=1"`
	RoomCount     *int    `json:"roomCount" validate:"omitempty,min=1"`
	BathroomCount *int    `json:"bathroomCount" validate:"omitempty,min=1"`
	ImageSrc      *string `json:"imageSrc"`
	Title         *string `json:"title" validate:"omitempty,max=256"`
	Description   *string `json:"description"`
	Price         *int    `json:"price" validate:"omitempty,min=1"`
}
