package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/axent-pl/issuerid"
	"github.com/axent-pl/issuerid/common"
)

func newSelectCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "select [file|-]",
		Short: "Print the valid issuer identity fragment",
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

			selected, err := issuerid.GetIdentityProofFragment(fragments)
			if err != nil {
				return err
			}
			fragment, ok := selected.Get()
			if !ok {
				return fmt.Errorf("%w: no valid issuer identity fragment", common.ErrNotFound)
			}
			return renderFragment(cmd.OutOrStdout(), format, fragment)
		},
	}
}
