package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/alnoorex/currency_exchange_admin/internal/apperrors"
	portssvc "github.com/alnoorex/currency_exchange_admin/internal/core/ports/services"
	"github.com/alnoorex/currency_exchange_admin/internal/dto"
	"github.com/alnoorex/currency_exchange_admin/internal/middleware"
	"github.com/alnoorex/currency_exchange_admin/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// authHandler handles the login/logout form flow.
type authHandler struct {
	authService   portssvc.AuthSvcFacade
	secretKey     string
	sessionExpiry time.Duration
	secureCookies bool
}

func newAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		authService:   as,
		secretKey:     cfg.SecretKey,
		sessionExpiry: cfg.SessionExpiry,
		secureCookies: cfg.IsProduction,
	}
}

// loginPage renders the login form. An error query parameter from a previous
// attempt is passed through to the template.
func (h *authHandler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Error": c.Query("error"),
	})
}

// login validates the submitted credentials and establishes the session
// cookie on success.
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginFormRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error": "Username and password are required",
		})
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Failed login attempt", slog.String("username", req.Username))
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{
				"Error": "Invalid username or password",
			})
			return
		}
		logger.Error("Login failed", slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Something went wrong, please try again",
		})
		return
	}

	token, err := h.issueSessionToken(user.Username)
	if err != nil {
		logger.Error("Failed to sign session token", slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Something went wrong, please try again",
		})
		return
	}

	c.SetCookie(middleware.SessionCookieName, token, int(h.sessionExpiry.Seconds()), "/", "", h.secureCookies, true)
	logger.Info("Operator logged in", slog.String("username", user.Username))
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// logout clears the session cookie.
func (h *authHandler) logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *authHandler) issueSessionToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(h.sessionExpiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.secretKey))
}
