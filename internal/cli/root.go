package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	dryRun  bool
	log     *logrus.Logger
)

// rootCmd is the base command for caseweaver.
var rootCmd = &cobra.Command{
	Use:   "caseweaver",
	Short: "Normalize LLM-generated QA test cases into structured records",
	Long: `caseweaver reads free-form test case text produced by an LLM (plain
text or markdown), extracts structured test case records, and exports
them as CSV tables, JSON report envelopes and templated reports.

Everything is driven by a YAML configuration file (caseweaver.yaml).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "caseweaver.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "parse but don't write files")

	log = logrus.New()
	log.SetLevel(logrus.InfoLevel)
}

// setLogLevel applies the configured logging level unless --verbose
// already forced debug.
func setLogLevel(level string) {
	if verbose {
		return
	}
	if parsed, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(parsed)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
