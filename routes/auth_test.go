package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"rentals-clone-server/services"
	"rentals-clone-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// buildAuthTestApp wires the authenticated parties behind a real JWT
// verifier so missing/invalid tokens are rejected before any handler
// runs.
func buildAuthTestApp() *iris.Application {
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	app := iris.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} { return new(utils.AccessToken) })

	reservations := app.Party("/api/reservations")
	{
		reservations.Post("/", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, CreateReservation)
	}

	wizard := app.Party("/api/wizard", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware)
	{
		wizard.Post("/", StartWizard)
	}

	app.Build()
	return app
}

func signAccessToken(t *testing.T, id uint) string {
	t.Helper()

	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), time.Hour)
	token, err := signer.Sign(utils.AccessToken{ID: id})
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return string(token)
}

func TestCreateReservationRequiresAuthentication(t *testing.T) {
	app := buildAuthTestApp()

	// No token: the verifier rejects the request before the handler can
	// touch anything.
	req := httptest.NewRequest(http.MethodPost, "/api/reservations",
		strings.NewReader(`{"listingID":1,"startDate":"2024-01-10T00:00:00Z","endDate":"2024-01-12T00:00:00Z","totalPrice":200}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}

	// Garbage token: same rejection.
	req2 := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(`{}`))
	req2.Header.Set("Authorization", "Bearer not-a-token")
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with a garbage token, got %d", resp2.Code)
	}
}

func TestWizardRequiresAuthentication(t *testing.T) {
	wizardSessions = &memoryWizardStore{sessions: map[string]*services.Wizard{}}
	app := buildAuthTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/wizard", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}

	// A signed token passes the verifier and reaches the handler.
	req2 := httptest.NewRequest(http.MethodPost, "/api/wizard", nil)
	req2.Header.Set("Authorization", "Bearer "+signAccessToken(t, 1))
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusOK {
		t.Fatalf("expected 200 with a valid token, got %d: %s", resp2.Code, resp2.Body.String())
	}
}
