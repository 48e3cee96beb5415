package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(calcCmd)
}

// decimalctl calc 1.5 '*' 2.5
var calcCmd = &cobra.Command{
	Use:          "calc A OP B",
	Short:        "apply + - * / or % to two decimals",
	Args:         cobra.ExactArgs(3),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := currentEngine()
		if err != nil {
			return err
		}
		d, err := e.Calc(args[0], args[1], args[2])
		if err != nil {
			log.WithError(err).Debugf("calc %s %s %s failed", args[0], args[1], args[2])
			return hostError(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), d.Display)
		return nil
	},
}
