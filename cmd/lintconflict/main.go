// Command lintconflict checks a JavaScript project for conflicts between its
// ESLint configuration, its Prettier configuration and its VS Code settings.
//
// Usage:
//
//	lintconflict [flags] <dir>
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jokarl/lintconflict/lint"
	"github.com/jokarl/lintconflict/loader"
	"github.com/jokarl/lintconflict/plugin"
	"github.com/jokarl/lintconflict/report"
	"github.com/jokarl/lintconflict/rules"
	"github.com/jokarl/lintconflict/runner"
	"github.com/jokarl/lintconflict/settings"
)

var version = "dev"

// logEnv sets the default log level.
const logEnv = "LINTCONFLICT_LOG"

type options struct {
	logLevel string
	noColor  bool
	plugins  []string
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	var code int
	cmd := newRootCmd(&code)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return code
}

func newRootCmd(code *int) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "lintconflict <dir>",
		Short: "Find conflicts between ESLint, Prettier and editor settings",
		Long: `lintconflict reads the ESLint, Prettier and VS Code configuration of a
project and reports Prettier compatibility entries extended in the wrong
order, formatter-sensitive plugins missing their compatibility entry, rule
overrides that re-enable rules Prettier needs off, and editor settings that
keep ESLint from running.

Rules are selected and configured in .lintconflict.hcl in the project
directory.`,
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := run(args[0], opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			printer := &report.Printer{Out: cmd.OutOrStdout(), Color: !opts.noColor}
			if err := printer.Print(c); err != nil {
				return err
			}
			*code = report.ExitCode(c)
			return nil
		},
	}

	defaultLevel := os.Getenv(logEnv)
	if defaultLevel == "" {
		defaultLevel = "warn"
	}
	cmd.Flags().StringVar(&opts.logLevel, "log-level", defaultLevel, "log level (trace, debug, info, warn, error); defaults to $"+logEnv)
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringArrayVar(&opts.plugins, "plugin", nil, "path to a rule set plugin binary (repeatable)")

	return cmd
}

// run loads the project's configuration and checks it with the built-in
// rule set and every plugin.
func run(dir string, opts *options, stderr io.Writer) (*lint.Collector, error) {
	level := hclog.LevelFromString(opts.logLevel)
	if level == hclog.NoLevel {
		return nil, fmt.Errorf("invalid log level %q", opts.logLevel)
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "lintconflict",
		Level:  level,
		Output: stderr,
	})

	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("directory %s does not exist", dir)
	} else if err != nil {
		return nil, err
	} else if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	s, err := settings.Load(dir)
	if err != nil {
		return nil, err
	}

	l := loader.New(dir, logger)
	usingPrettier, err := l.LoadPrettier()
	if err != nil {
		return nil, err
	}
	eslint, _, err := l.LoadESLint()
	if err != nil {
		return nil, err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("skipping VS Code user settings", "error", err)
	}
	editor, err := l.LoadEditor(home)
	if err != nil {
		return nil, err
	}

	input := runner.Input{ESLint: eslint, UsingPrettier: usingPrettier, Editor: editor}
	c := &lint.Collector{}

	r := runner.New(input, s, logger)
	if err := runner.Run(rules.NewRuleSet(version), r); err != nil {
		return nil, err
	}
	r.Collect(c)

	for _, path := range opts.plugins {
		if err := checkPlugin(path, input, s, logger, c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func checkPlugin(path string, input runner.Input, s *settings.File, logger hclog.Logger, c *lint.Collector) error {
	client, kill, err := plugin.Open(path, logger)
	if err != nil {
		return err
	}
	defer kill()

	if info, err := client.Info(); err == nil {
		logger.Debug("loaded plugin", "path", path, "ruleset", info.Name, "version", info.Version)
	}

	issues, err := client.Check(input, s)
	if err != nil {
		return fmt.Errorf("plugin %s: %w", path, err)
	}
	plugin.Collect(c, issues)
	return nil
}
