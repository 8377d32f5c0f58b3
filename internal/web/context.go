package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog/log"
)

// ContextLogger attaches a logger carrying the request id to the user
// context, so store and handler logs of one request can be correlated.
func ContextLogger(c *fiber.Ctx) error {
	if strings.HasPrefix(strings.ToLower(c.OriginalURL()), "/static") {
		return c.Next()
	}

	rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)

	logger := log.With().
		Str("request_id", rid).
		Str("path", c.Path()).
		Logger()

	c.SetUserContext(logger.WithContext(c.UserContext()))

	return c.Next()
}
