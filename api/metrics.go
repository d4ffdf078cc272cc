package api

import (
	"github.com/gin-gonic/gin"
)

// measure counts the requests and errors of an endpoint and times them
func (s *Server) measure(endpoint string) gin.HandlerFunc {
	scope := s.scope.Tagged(map[string]string{"endpoint": endpoint})
	requests := scope.Counter("requests")
	failures := scope.Counter("errors")
	latency := scope.Timer("latency")

	return func(c *gin.Context) {
		sw := latency.Start()
		c.Next()
		sw.Stop()

		requests.Inc(1)
		if c.Writer.Status() >= 400 {
			failures.Inc(1)
		}
	}
}
