package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:           "bignum",
	Short:         "Arbitrary-precision arithmetic and textbook RSA",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stderr)
		if level, err := logrus.ParseLevel(viper.GetString("log_level")); err == nil {
			log.SetLevel(level)
		}
	},
}

func main() {
	viper.SetEnvPrefix("bignum")
	viper.AutomaticEnv()
	viper.SetDefault("log_level", "info")
	viper.SetDefault("generate_bits", 1024)

	rootCmd.AddCommand(rsaCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
