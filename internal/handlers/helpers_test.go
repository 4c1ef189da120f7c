package handlers_test

import (
	"html/template"
	"time"

	portssvc "github.com/alnoorex/currency_exchange_admin/internal/core/ports/services"
	"github.com/alnoorex/currency_exchange_admin/internal/handlers"
	"github.com/alnoorex/currency_exchange_admin/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecretKey = "test-secret-key-that-is-long-enough"

// stubTemplates stand in for web/templates so HTML handlers can render.
var stubTemplates = template.Must(template.New("stubs").Parse(`
{{define "public_rates.html"}}rates board: {{len .Currencies}} currencies{{end}}
{{define "login.html"}}login page: {{.Error}}{{end}}
{{define "dashboard.html"}}dashboard: msg={{.Msg}} error={{.Error}} count={{len .Currencies}}{{end}}
{{define "history.html"}}history: {{len .CurrencyHistory}} currency rows, {{len .NoteHistory}} note rows{{end}}
{{define "currency_history.html"}}currency history: {{len .CurrencyHistory}} currency rows, {{len .NoteHistory}} note rows{{end}}
{{define "from_aed.html"}}from aed: {{len .Currencies}}{{end}}
{{define "to_aed.html"}}to aed: {{len .Currencies}}{{end}}
`))

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:     testSecretKey,
		SessionExpiry: time.Hour,
	}
}

// newTestRouter builds a router with all routes registered against the given
// mock services.
func newTestRouter(services *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(stubTemplates)
	handlers.RegisterRoutes(r, testConfig(), services)
	return r
}

// sessionTokenFor signs a session token the way the login handler does.
func sessionTokenFor(username string) string {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecretKey))
	if err != nil {
		panic(err)
	}
	return signed
}
