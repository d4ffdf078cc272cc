package main

import (
	"context"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/covid-dashboard/api"
	"github.com/bitmark-inc/covid-dashboard/store"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

var (
	server        *api.Server
	metricsCloser io.Closer
	shutdownOnce  sync.Once
)

func main() {
	var configFile string

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown dashboard api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		shutdown()
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	utils.LoadConfig(configFile)

	utils.InitLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	if err := utils.InitI18NBundle(viper.GetString("i18n.dir")); err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Initialized i18n bundle")

	location, err := utils.MustGetLocation(viper.GetString("data.timezone"))
	if err != nil {
		log.WithField("prefix", "init").Warn(err)
	}

	// Load records
	source := utils.DataSource(viper.GetString("data.file"))
	recordStore := store.NewMemoryStore()
	if _, err := store.Reload(recordStore, source); err != nil {
		log.Panicf("load records with error: %s", err)
	}

	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix: "dashboard",
		Tags:   map[string]string{"version": viper.GetString("server.version")},
	}, time.Second)
	metricsCloser = closer

	// Init http server
	server = api.NewServer(recordStore, api.Options{
		Source:           source,
		Layout:           utils.ChartLayout(),
		MaxCountries:     viper.GetInt("dashboard.max_countries"),
		VaccinationLimit: viper.GetInt("dashboard.vaccination_limit"),
		Location:         location,
		Scope:            scope,
	})
	log.WithField("prefix", "init").Info("Initialized http server")

	err = server.Run(":" + viper.GetString("server.port"))
	if err == http.ErrServerClosed {
		// the signal handler finishes the shutdown and exits
		select {}
	}

	log.Error(err)
	shutdown()
	os.Exit(1)
}

// shutdown flushes metrics and error reports once, os.Exit skips deferred calls
func shutdown() {
	shutdownOnce.Do(func() {
		if metricsCloser != nil {
			log.Info("Close metrics scope")
			if err := metricsCloser.Close(); err != nil {
				log.Error(err)
			}
		}

		sentry.Flush(2 * time.Second)
	})
}
