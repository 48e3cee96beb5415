package cmd

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	decimal "github.com/CryptoKage2306/cosmwasm-custom-decimal"
)

var RootCmd = &cobra.Command{
	Use:   "decimalctl",
	Short: "fixed-point decimal tool",
	Long:  "parse, convert, calculate and migrate unsigned fixed-point decimals",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

func init() {
	RootCmd.PersistentFlags().Uint32("places", 6, "number of decimal places")
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
}

// initConfig binds the flags of the running command, so every flag can also
// be set with a DECIMALCTL_ environment variable.
func initConfig(cmd *cobra.Command) error {
	viper.SetEnvPrefix("decimalctl")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		log.WithError(err).Errorf("failed to bind flags. please check the flag settings.")
		return err
	}

	log.SetFormatter(&prefixed.TextFormatter{})
	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
	return nil
}

// currentEngine returns the engine for the configured precision.
func currentEngine() (engine, error) {
	places := viper.GetUint32("places")
	log.Debugf("using %v decimal places", places)
	return engineFor(places)
}

// hostError reports errors of the decimal package with their host message.
func hostError(err error) error {
	if err == nil {
		return nil
	}
	return decimal.ToHostError(err)
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
