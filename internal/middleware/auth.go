package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie carrying the signed operator session.
const SessionCookieName = "cea_session"

// SessionAuthMiddleware creates a Gin middleware handler that validates the
// signed session cookie. Unauthenticated requests are redirected to the login
// page; the operator username is stored in the request context for handlers
// and audit attribution.
func SessionAuthMiddleware(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		})

		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				logger.Info("Session expired")
			} else {
				logger.Warn("Invalid session token", slog.String("error", err.Error()))
			}
			// Clear the stale cookie before bouncing to login
			c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok || !token.Valid || claims.Subject == "" {
			logger.Warn("Invalid session claims")
			c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		operator := claims.Subject

		ctxWithOperator := context.WithValue(c.Request.Context(), operatorKey, operator)
		enrichedLogger := logger.With(slog.String("operator", operator))
		ctxWithLoggerAndOperator := context.WithValue(ctxWithOperator, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctxWithLoggerAndOperator)

		c.Next()
	}
}
