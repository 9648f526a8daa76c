package cookie

import (
	"github.com/gin-gonic/gin"
)

// AccessTokenCookieName is the session cookie set by the external auth provider.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
