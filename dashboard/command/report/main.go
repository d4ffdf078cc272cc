package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/covid-dashboard/utils"
)

var (
	configFile string
	dataFile   string
)

func main() {
	rootCmd := newRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "report",
		Short: "Pandemic dashboard report - print the dashboard panels in a terminal",
		Long: `Report computes the dashboard panels from the sample records or a data file.

Commands:
  stats          Global totals and their change since the previous date
  table          Latest figures of every country
  vaccinations   Countries ranked by people vaccinated
  timeseries     Selected metric of selected countries by date
  chart          Write the line chart as an html page`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			utils.LoadConfig(configFile)
			utils.InitLog()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "[optional] path of configuration file")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "json file of observations, sample records when empty")

	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(tableCmd())
	rootCmd.AddCommand(vaccinationsCmd())
	rootCmd.AddCommand(timeseriesCmd())
	rootCmd.AddCommand(chartCmd())

	return rootCmd
}

// records reads the observations from --file, data.file or the sample source
func records() (*report, error) {
	file := dataFile
	if file == "" {
		file = viper.GetString("data.file")
	}

	observations, err := utils.DataSource(file)()
	if err != nil {
		return nil, err
	}
	return newReport(observations)
}
