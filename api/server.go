package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/covid-dashboard/chart"
	"github.com/bitmark-inc/covid-dashboard/consts"
	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/logmodule"
	"github.com/bitmark-inc/covid-dashboard/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Options tune what the server computes. Zero values take the defaults.
type Options struct {
	// Source is read on every reload request
	Source store.Source

	Layout           chart.Layout
	MaxCountries     int
	VaccinationLimit int

	// Location is the time zone of the computation date
	Location *time.Location

	Scope tally.Scope
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store  store.RecordStore
	source store.Source

	layout           chart.Layout
	maxCountries     int
	vaccinationLimit int
	location         *time.Location

	// request metrics
	scope tally.Scope

	clock func() time.Time
}

// NewServer new instance of server
func NewServer(recordStore store.RecordStore, options Options) *Server {
	s := &Server{
		store:            recordStore,
		source:           options.Source,
		layout:           options.Layout,
		maxCountries:     options.MaxCountries,
		vaccinationLimit: options.VaccinationLimit,
		location:         options.Location,
		scope:            options.Scope,
		clock:            time.Now,
	}

	if s.layout.Height <= 0 {
		s.layout = chart.DefaultLayout()
	}
	if s.maxCountries <= 0 {
		s.maxCountries = consts.MaxSelectedCountries
	}
	if s.vaccinationLimit <= 0 {
		s.vaccinationLimit = dashboard.DefaultVaccinationLimit
	}
	if s.location == nil {
		s.location = time.UTC
	}
	if s.scope == nil {
		s.scope = tally.NoopScope
	}

	return s
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Accept", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length", logmodule.RequestIDHeader},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		apiRoute.GET("/stats", s.measure("stats"), s.stats)
		apiRoute.GET("/timeseries", s.measure("timeseries"), s.timeseries)
		apiRoute.GET("/vaccinations", s.measure("vaccinations"), s.vaccinations)
		apiRoute.GET("/table", s.measure("table"), s.table)
		apiRoute.GET("/chart", s.measure("chart"), s.chart)
		apiRoute.GET("/countries", s.measure("countries"), s.countries)
		apiRoute.GET("/metrics", s.measure("metrics"), s.metrics)
	}

	pageRoute := r.Group("/chart")
	pageRoute.Use(logmodule.Ginrus("Page"))
	pageRoute.GET("", s.measure("chart_page"), s.chartPage)

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/reload", s.reloadRecords)
	}

	r.GET("/healthz", s.healthz)
	r.GET("/information", s.information)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.store.Ping(); err != nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorNotLoaded, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"dashboard": map[string]interface{}{
				"max_countries":     s.maxCountries,
				"vaccination_limit": s.vaccinationLimit,
				"timezone":          s.location.String(),
				"chart_height":      s.layout.Height,
			},
			"system_version": "Covid Dashboard 0.1",
		},
	})
}
