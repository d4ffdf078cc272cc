package utils

import (
	"path/filepath"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
)

// defaultMessages are the english labels, message files may override them
var defaultMessages = []*i18n.Message{
	{ID: "metric.totalCases", Other: "Total Cases"},
	{ID: "metric.newCases", Other: "New Cases"},
	{ID: "metric.totalDeaths", Other: "Total Deaths"},
	{ID: "metric.newDeaths", Other: "New Deaths"},
	{ID: "metric.totalVaccinations", Other: "Total Vaccinations"},
	{ID: "card.totalCases", Other: "Total Cases"},
	{ID: "card.totalDeaths", Other: "Total Deaths"},
	{ID: "card.totalVaccinations", Other: "Vaccinations"},
	{ID: "card.countries", Other: "Countries"},
	{ID: "chart.title", Other: "{{.Metric}} Over Time"},
}

// InitI18NBundle loads the english labels and every yaml message file in dir
func InitI18NBundle(dir string) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	if err := b.AddMessages(language.English, defaultMessages...); err != nil {
		return err
	}

	if dir != "" {
		files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
		if err != nil {
			return err
		}
		for _, f := range files {
			if _, err := b.LoadMessageFile(f); err != nil {
				return err
			}
			log.WithFields(log.Fields{"prefix": "i18n", "file": f}).Debug("load message file")
		}
	}

	bundle = b
	return nil
}

func NewLocalizer(lang ...string) *i18n.Localizer {
	bundleOnce.Do(func() {
		if bundle == nil {
			_ = InitI18NBundle("")
		}
	})
	return i18n.NewLocalizer(bundle, lang...)
}

// Translate returns the label of id, or id itself when there is no message
func Translate(localizer *i18n.Localizer, id string, data map[string]interface{}) string {
	s, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return s
}
