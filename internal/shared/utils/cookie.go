package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wordnest/internal/shared/config"
)

// SessionTokenCookie carries the signed session token. HttpOnly always;
// Secure and SameSite come from config (SameSite defaults to Lax).
const SessionTokenCookie = "wn_session"

// SetSessionCookie stores the session token in an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, cookieCfg config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieCfg.SameSite))
	c.SetCookie(
		SessionTokenCookie,
		token,
		maxAge,
		cookieCfg.Path,
		cookieCfg.Domain,
		cookieCfg.Secure,
		true, // HttpOnly, never readable by page scripts
	)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, cookieCfg config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieCfg.SameSite))
	c.SetCookie(SessionTokenCookie, "", -1, cookieCfg.Path, cookieCfg.Domain, cookieCfg.Secure, true)
}

// GetSessionTokenFromCookie returns the raw session token, or "".
func GetSessionTokenFromCookie(c *gin.Context) string {
	token, err := c.Cookie(SessionTokenCookie)
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
