package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(parseCmd)
}

// decimalctl parse 1.5 --places 9
var parseCmd = &cobra.Command{
	Use:          "parse VALUE",
	Short:        "show the atomics, display and storage forms of a decimal",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := currentEngine()
		if err != nil {
			return err
		}
		d, err := e.Describe(args[0])
		if err != nil {
			return hostError(err)
		}
		printDescription(cmd.OutOrStdout(), d)
		return nil
	},
}

func printDescription(w io.Writer, d Description) {
	fmt.Fprintf(w, "atomics: %s\n", d.Atomics)
	fmt.Fprintf(w, "decimal: %s\n", d.Display)
	fmt.Fprintf(w, "storage: %s\n", d.Storage)
}
