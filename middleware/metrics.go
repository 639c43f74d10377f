package middleware

import (
	"errors"
	"lifehub/metrics"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// Metrics records request counts and latencies by matched route
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		done := metrics.TrackInFlight()
		defer done()

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// the error handler has not written the response yet
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		// handlers answer 404 themselves, so an error 404 means no route matched
		route := ""
		if status != fiber.StatusNotFound || err == nil {
			route = c.Route().Path
		}
		// label values outlive the request, so they must not alias fasthttp buffers
		metrics.RecordHTTPRequest(utils.CopyString(c.Method()), utils.CopyString(route), status, time.Since(start))

		return err
	}
}
