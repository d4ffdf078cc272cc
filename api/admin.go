package api

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/covid-dashboard/store"
)

var errNoSource = errors.New("no record source configured")

// reloadRecords is an internal only api to read the record source again and
// publish the result
func (s *Server) reloadRecords(c *gin.Context) {
	if s.source == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorReloadFailed, errNoSource)
		return
	}

	report, err := store.Reload(s.store, s.source)
	if err != nil {
		sentry.CaptureException(err)
		log.WithError(err).Error("reload records")
		abortWithEncoding(c, http.StatusInternalServerError, errorReloadFailed, err)
		return
	}

	responseWithEncoding(c, http.StatusOK, gin.H{"result": "OK", "report": report})
}
