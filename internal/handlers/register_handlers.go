package handlers

import (
	"net/http"

	portssvc "github.com/alnoorex/currency_exchange_admin/internal/core/ports/services"
	"github.com/alnoorex/currency_exchange_admin/internal/middleware"
	"github.com/alnoorex/currency_exchange_admin/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	auth := newAuthHandler(services.Auth, cfg)

	registerPublicRoutes(r, services)
	registerAuthRoutes(r, auth)
	setupAdminRoutes(r, cfg, services, auth)
}

// registerPublicRoutes wires the unauthenticated surface: the rates board,
// the notes JSON endpoint, stored image blobs and the health probe.
func registerPublicRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newPublicHandler(services.Currency, services.Note)

	r.GET("/", h.ratesBoard)
	r.GET("/currency_notes/:id", h.currencyNotes)
	r.GET("/uploads/:filename", h.serveUpload)
	r.GET("/health", h.health)
}

// registerAuthRoutes wires the login pages. POST /login is rate limited per
// client IP to slow credential guessing.
func registerAuthRoutes(r *gin.Engine, h *authHandler) {
	loginRate, err := limiter.NewRateFromFormatted("5-M")
	if err != nil {
		panic("invalid login rate limit format: " + err.Error())
	}
	loginLimiter := limiter.New(memory.NewStore(), loginRate)

	r.GET("/login", h.loginPage)
	r.POST("/login", middleware.RateLimit(loginLimiter), h.login)
}

// setupAdminRoutes configures the session-protected operator surface.
func setupAdminRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	auth *authHandler,
) {
	admin := r.Group("/", middleware.SessionAuthMiddleware(cfg.SecretKey))

	// The legacy /admin entry point: the middleware bounces anonymous
	// visitors to /login, authenticated ones land on the dashboard.
	admin.GET("/admin", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
	})
	admin.GET("/logout", auth.logout)

	registerCurrencyRoutes(admin, services.Currency, services.Note)
	registerImageRoutes(admin, services.Note)
	registerHistoryRoutes(admin, services.Currency, services.History)
}
