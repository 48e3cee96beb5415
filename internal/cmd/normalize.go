package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/CryptoKage2306/cosmwasm-custom-decimal/internal/migrate"
)

func init() {
	normalizeCmd.Flags().StringSlice("field", nil, "name of a decimal field, may be repeated")
	RootCmd.AddCommand(normalizeCmd)
}

// decimalctl normalize positions.json --places 6 --field price --field fee
var normalizeCmd = &cobra.Command{
	Use:          "normalize [FILE] --field NAME...",
	Short:        "rewrite decimal fields of a JSON document to the storage form",
	Long:         "Reads a JSON document from FILE or stdin and rewrites the named fields to the storage form at --places. Fields that lose digits are logged.",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := viper.GetStringSlice("field")
		if len(fields) == 0 {
			return errors.New("no fields to normalize, use --field")
		}

		e, err := currentEngine()
		if err != nil {
			return err
		}

		var data []byte
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return errors.Wrap(err, "reading document")
		}

		n := migrate.NewNormalizer(e.Codec(), fields...).WithLogger(log.StandardLogger())
		out, changes, err := n.Normalize(data)
		if err != nil {
			return err
		}
		for _, c := range changes {
			log.WithFields(log.Fields{
				"path": c.Path,
				"from": c.From,
				"to":   c.To,
			}).Debug("normalized field")
		}
		log.Infof("normalized %d fields at %d decimal places", len(changes), e.Places())

		out = append(out, '\n')
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
