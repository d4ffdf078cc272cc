package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/covid-dashboard/chart"
	"github.com/bitmark-inc/covid-dashboard/sample"
	"github.com/bitmark-inc/covid-dashboard/store"
)

const EnvPrefix = "dashboard"

// LoadConfig reads .env, then the yaml config file, then the environment
func LoadConfig(file string) {
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded .env file.")
	}

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()
}

func setDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.version", "dev")
	viper.SetDefault("chart.height", chart.DefaultHeight)
	viper.SetDefault("chart.padding.top", chart.DefaultPadding.Top)
	viper.SetDefault("chart.padding.right", chart.DefaultPadding.Right)
	viper.SetDefault("chart.padding.bottom", chart.DefaultPadding.Bottom)
	viper.SetDefault("chart.padding.left", chart.DefaultPadding.Left)
}

func InitLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

// ChartLayout reads the chart size from config
func ChartLayout() chart.Layout {
	return chart.Layout{
		Height: viper.GetFloat64("chart.height"),
		Padding: chart.Padding{
			Top:    viper.GetFloat64("chart.padding.top"),
			Right:  viper.GetFloat64("chart.padding.right"),
			Bottom: viper.GetFloat64("chart.padding.bottom"),
			Left:   viper.GetFloat64("chart.padding.left"),
		},
	}
}

// DataSource is the configured data file, or the generated sample records
// when no file is set
func DataSource(file string) store.Source {
	if file == "" {
		log.WithField("prefix", "init").Info("no data file, use sample records")
		return sample.Source
	}
	return store.FileSource(file)
}
