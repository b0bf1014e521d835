package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TokenCookie is the bearer-token cookie name. The token is opaque; the
// cookie is HttpOnly and its max-age tracks the configured session lifetime.
const TokenCookie = "token"

// CookieSettings describes how session cookies are written.
type CookieSettings struct {
	Domain   string
	Path     string
	Secure   bool
	SameSite string
}

// SetTokenCookie writes the session token cookie.
func SetTokenCookie(c *gin.Context, settings CookieSettings, token string, maxAge int) {
	c.SetSameSite(parseSameSite(settings.SameSite))
	c.SetCookie(TokenCookie, token, maxAge, settings.Path, settings.Domain, settings.Secure, true)
}

// ClearTokenCookie expires the session token cookie. The server only flips
// the session inactive; the client must also discard its copy.
func ClearTokenCookie(c *gin.Context, settings CookieSettings) {
	c.SetSameSite(parseSameSite(settings.SameSite))
	c.SetCookie(TokenCookie, "", -1, settings.Path, settings.Domain, settings.Secure, true)
}

// GetTokenFromCookie reads the session token, returning "" when absent.
func GetTokenFromCookie(c *gin.Context) string {
	token, err := c.Cookie(TokenCookie)
	if err != nil {
		return ""
	}
	return token
}

func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
