package rest

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const localsRequestID = "requestID"

// requestIDMiddleware keeps a valid incoming X-Request-Id or mints one.
func requestIDMiddleware(c *fiber.Ctx) error {
	requestID := c.Get(fiber.HeaderXRequestID)
	if _, err := uuid.Parse(requestID); err != nil {
		requestID = uuid.New().String()
	}

	c.Locals(localsRequestID, requestID)
	c.Set(fiber.HeaderXRequestID, requestID)

	return c.Next()
}

func rateLimitMiddleware(limiter *rate.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !limiter.Allow() {
			rateLimitRejects.Inc()
			c.Set(fiber.HeaderRetryAfter, "1")
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded"})
		}
		return c.Next()
	}
}

func loggingMiddleware(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		log.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", statusOf(c, err),
			"duration", time.Since(start),
			"requestID", c.Locals(localsRequestID),
		)
		return err
	}
}

func metricsMiddleware(c *fiber.Ctx) error {
	start := time.Now()
	httpRequestsInFlight.Inc()
	defer httpRequestsInFlight.Dec()

	err := c.Next()

	route := c.Route().Path
	httpRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(statusOf(c, err))).Inc()
	httpRequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())

	return err
}

// statusOf reports the status the error handler will send for err.
func statusOf(c *fiber.Ctx, err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	if err != nil {
		return fiber.StatusInternalServerError
	}
	return c.Response().StatusCode()
}
