package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"

	"github.com/dokushohq/extensions/internal/config"
	"github.com/dokushohq/extensions/internal/lib/git"
	"github.com/dokushohq/extensions/internal/lib/xlog"
	"github.com/dokushohq/extensions/internal/version"
)

const help = `Generate the static index of an extension repository.

Without a command, repoindex runs generate: every apk in <repo-dir>/apk
becomes a record of index.json and index.min.json, and repo.json and
index.html are rewritten next to them.`

var commands []*cobra.Command

// flags shared by every command
var global struct {
	configPath string
	repoDir    string
	apkDir     string
	pattern    string
}

func main() {
	app := &cobra.Command{
		Use:           "repoindex",
		Long:          help,
		Version:       version.GetVersionString(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, &generateOptions{})
		},
	}

	app.AddCommand(commands...)

	flags := app.PersistentFlags()
	flags.SortFlags = false
	flags.StringP("root", "R", "", "change command working directory")
	flags.Bool("git-root", false, "change working directory to the root of the enclosing git work tree")
	flags.StringVarP(&global.configPath, "config", "c", "", "path to the config file (default: search "+strings.Join(config.ConfigFileNames, ", ")+", or $"+config.ConfigEnv+")")
	flags.StringVar(&global.repoDir, "repo-dir", config.DefaultRepoDir, "directory receiving the generated files")
	flags.StringVar(&global.apkDir, "apk-dir", config.DefaultApkDir, "directory holding the apk files, relative to --repo-dir")
	flags.StringVar(&global.pattern, "pattern", config.DefaultPattern, "glob selecting the apk files")
	flags.BoolVar(&config.Debug, "debug", false, "print additional debug information")
	flags.BoolP("quiet", "q", false, "quiet mode (hide any output)")

	app.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")
		if quiet {
			if null, _ := os.Open(os.DevNull); null != nil {
				os.Stdout = null
				os.Stderr = null
			}

			pp.Stdout.ChangeWriter(io.Discard)
			pp.Stderr.ChangeWriter(io.Discard)

			slog.SetDefault(xlog.DisabledLogger)
		} else {
			slog.SetDefault(xlog.New(os.Stderr, config.Debug))
		}

		if root, _ := cmd.Flags().GetString("root"); root != "" {
			slog.Debug("Change working directory", "root", root)
			err := os.Chdir(root)
			if err != nil {
				return ee.Wrapf(err, "cannot change working directory to %s", root)
			}
		}

		if gitRoot, _ := cmd.Flags().GetBool("git-root"); gitRoot {
			root, err := git.Root(".")
			if err != nil {
				return err
			}

			slog.Debug("Change working directory to git root", "root", root)
			if err := os.Chdir(root); err != nil {
				return ee.Wrapf(err, "cannot change working directory to %s", root)
			}
		}

		return nil
	}

	// run!
	err := app.Execute()
	if err != nil {
		if !ee.Is(err, ee.Phantom) {
			l("Error: %v", err)
		}

		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the flags explicitly set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c, filename, err := config.Get(global.configPath)
	if err != nil {
		return nil, err
	}
	if filename != "" {
		slog.Debug("Loaded config", "file", filename)
	}

	flags := cmd.Flags()
	if flags.Changed("repo-dir") {
		c.RepoDir = global.repoDir
	}
	if flags.Changed("apk-dir") {
		c.ApkDir = global.apkDir
	}
	if flags.Changed("pattern") {
		c.Pattern = global.pattern
	}

	return c, nil
}

func l(msg string, args ...any) {
	s := msg
	if len(args) != 0 {
		s = fmt.Sprintf(msg, args...)
	}

	_, _ = os.Stderr.Write([]byte("repoindex - " + strings.TrimSpace(s) + "\n"))
}
