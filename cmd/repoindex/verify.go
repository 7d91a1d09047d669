package main

import (
	"fmt"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"

	"github.com/dokushohq/extensions/internal/repo"
)

func init() {
	commands = append(commands, &cobra.Command{
		Use:   "verify",
		Short: "Check the files of a generated repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return verifyRepo(c.RepoDir, true)
		},
	})
}

func verifyRepo(dir string, printSuccess bool) error {
	report, err := repo.Verify(dir)
	if err != nil {
		return ee.Wrap(err, "cannot verify repository")
	}

	if !report.OK() {
		for _, problem := range report.Problems {
			pp.ERedPrintln(problem)
		}
		l("Error: %s has %d problem(s)", dir, len(report.Problems))

		return ee.Phantom
	}

	if printSuccess {
		pp.Println(fmt.Sprintf("Verified %d record(s) in %s", report.Records, dir))
	}

	return nil
}
