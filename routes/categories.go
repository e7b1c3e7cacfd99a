package routes

import (
	"rentals-clone-server/models"

	"github.com/kataras/iris/v12"
)

// GetCategories returns the fixed category set the client renders as
// filter chips and wizard options.
func GetCategories(ctx iris.Context) {
	ctx.JSON(iris.Map{"categories": models.Categories})
}
