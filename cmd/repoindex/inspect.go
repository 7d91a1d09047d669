package main

import (
	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"

	"github.com/dokushohq/extensions/internal/extension"
	"github.com/dokushohq/extensions/internal/repo"
)

func init() {
	commands = append(commands, &cobra.Command{
		Use:   "inspect <apk>...",
		Short: "Print the records the given apk file names would produce",
		Long:  "Print the records the given apk file names would produce. Files are not opened, they do not need to exist.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			set, err := extension.NewSet(c.Extensions)
			if err != nil {
				return err
			}

			out, err := repo.EncodeIndent(set.ExtractAll(args))
			if err != nil {
				return ee.Wrap(err, "cannot encode records")
			}

			pp.Println(string(out))
			return nil
		},
	})
}
