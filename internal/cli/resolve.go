package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/axent-pl/issuerid"
)

func newResolveCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [file|-]",
		Short: "Print the issuer identifier(s) proven by the verification fragments",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(v.GetString(OutputKey))
			if err != nil {
				return err
			}
			fragments, err := readFragments(v, cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			log.Debug().Int("fragments", len(fragments)).Msg("resolving issuer identifier")

			result, err := issuerid.Resolve(fragments)
			if err != nil {
				return err
			}
			return renderIdentifiers(cmd.OutOrStdout(), format, result)
		},
	}
}
