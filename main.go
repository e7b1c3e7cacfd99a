package main

import (
	"log"
	"os"

	"rentals-clone-server/routes"
	"rentals-clone-server/storage"
	"rentals-clone-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	godotenv.Load()

	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS for the web client
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	user := app.Party("/api/user")
	{
		user.Post("/register", routes.Register)
		user.Post("/login", routes.Login)
		user.Post("/google", routes.GoogleLoginOrSignUp)
		user.Post("/apple", routes.AppleLoginOrSignUp)
		user.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
		user.Get("/{id}/listings/saved", accessTokenVerifierMiddleware, utils.UserIDMiddleware, routes.GetUserSavedListings)
		user.Patch("/{id}/listings/saved", accessTokenVerifierMiddleware, utils.UserIDMiddleware, routes.AlterUserSavedListings)
	}

	listings := app.Party("/api/listings")
	{
		listings.Get("/", routes.GetListings)
		listings.Get("/{id}", routes.GetListing)
		listings.Get("/{id}/disabled-dates", routes.GetListingDisabledDates)
		listings.Get("/{id}/quote", routes.GetListingQuote)
		listings.Post("/", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateListing)
		listings.Delete("/{id}", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.DeleteListing)
	}

	reservations := app.Party("/api/reservations")
	{
		reservations.Get("/", routes.GetReservations)
		reservations.Post("/", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateReservation)
		reservations.Delete("/{id}", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.DeleteReservation)
	}

	wizard := app.Party("/api/wizard", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware)
	{
		wizard.Post("/", routes.StartWizard)
		wizard.Get("/{token}", routes.GetWizard)
		wizard.Patch("/{token}/fields", routes.UpdateWizardFields)
		wizard.Post("/{token}/back", routes.WizardBack)
		wizard.Post("/{token}/confirm", routes.ConfirmWizard)
		wizard.Delete("/{token}", routes.CloseWizard)
	}

	app.Get("/api/categories", routes.GetCategories)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
