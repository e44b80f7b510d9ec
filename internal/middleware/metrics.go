// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"billboard/internal/metrics"
)

// Probe and scrape routes are polled constantly and would drown out API traffic.
var unmeteredPaths = map[string]bool{
	"/metrics": true,
	"/live":    true,
	"/ready":   true,
}

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP requests.
// Requests are labelled by route template, so /api/v1/submissions/:id is one series
// regardless of the id.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if unmeteredPaths[c.FullPath()] {
			c.Next()
			return
		}

		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}
