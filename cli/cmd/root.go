package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "sgmlcode",
		Short:        "sgmlcode",
		SilenceUsage: true,
		Long:         `CLI tool for inspecting SGML-family markup: parse, dump, and normalize fragments.`,
	}

	verbose bool
	logger  = logrus.New()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "emit debug-level diagnostic logging")
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(func() {
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
	})
}
