package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/homelyhq/homely-backend/pkg/helpers"
	"github.com/homelyhq/homely-backend/pkg/response"
)

// Auth validates the access-token cookie and, when Redis is configured,
// requires an active server-side session. Sets userID in the Gin context.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid access token", nil)
			return
		}

		if rdb != nil {
			key := "user:session:" + strconv.FormatInt(claims.UserID, 10)
			data, err := rdb.HGetAll(c.Request.Context(), key).Result()
			if err != nil || len(data) == 0 {
				response.AbortError(c, http.StatusUnauthorized, "session not found", nil)
				return
			}
		}

		c.Set("userID", claims.UserID)
		c.Next()
	}
}
