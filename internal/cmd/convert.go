package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	convertCmd.Flags().Uint32("to", 18, "number of decimal places to convert to")
	RootCmd.AddCommand(convertCmd)
}

// decimalctl convert 1.123456789 --places 9 --to 6
var convertCmd = &cobra.Command{
	Use:          "convert VALUE --to PLACES",
	Short:        "convert a decimal to another precision",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := currentEngine()
		if err != nil {
			return err
		}
		d, err := e.Convert(args[0], viper.GetUint32("to"))
		if err != nil {
			return hostError(err)
		}
		printDescription(cmd.OutOrStdout(), d)
		return nil
	},
}
