package main

import (
	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"

	"github.com/dokushohq/extensions/internal/repo"
)

type generateOptions struct {
	verify bool
}

func init() {
	o := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Rebuild index.json, index.min.json, repo.json and index.html",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, o)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&o.verify, "verify", false, "read back the generated files and check them")

	commands = append(commands, cmd)
}

func runGenerate(cmd *cobra.Command, o *generateOptions) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	result, err := repo.Generate(c)
	if err != nil {
		return err
	}

	pp.Println(result.Summary())

	if o.verify {
		return verifyRepo(c.RepoDir, false)
	}

	return nil
}
