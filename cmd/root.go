// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"cogentcore.org/highlight/base/logx"
	"cogentcore.org/highlight/config"
	"cogentcore.org/highlight/text/highlighting"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

// OptsEnv is the environment variable holding default command line
// options, parsed with shell quoting rules.
const OptsEnv = "PYHL_OPTS"

// Args returns args preceded by the options in [OptsEnv].
func Args(args []string) ([]string, error) {
	opts, err := shellwords.Parse(os.Getenv(OptsEnv))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", OptsEnv, err)
	}
	return append(opts, args...), nil
}

// flags holds the command line options that override the config file.
type flags struct {
	configFile  string
	language    string
	languages   []string
	format      string
	style       string
	css         bool
	ignoreHTML  bool
	stripHTML   bool
	verbose     bool
	veryVerbose bool
	quiet       bool
}

// NewRootCmd returns the pyhl command with its sub-commands.
func NewRootCmd() *cobra.Command {
	fl := &flags{}
	rootCmd := &cobra.Command{
		Use:          "pyhl [files...]",
		Short:        "Highlight Python source code",
		Long:         "Highlight Python source files, or standard input if none are given, as HTML, terminal colors, tokens, JSON or YAML.",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logx.SetDefaultLogger(cmd.ErrOrStderr(), logx.LevelFromFlags(fl.veryVerbose, fl.verbose, fl.quiet))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := fl.app(cmd)
			if err != nil {
				return err
			}
			return a.HighlightCmd(args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&fl.configFile, "config", "", "TOML config file (default ./"+config.DefaultFile+" or ~/."+config.DefaultFile+" if present)")
	pf.StringVarP(&fl.language, "language", "l", "auto", "language to highlight with, or auto to detect it")
	pf.StringSliceVar(&fl.languages, "languages", nil, "restrict auto-detection to these languages")
	pf.StringVarP(&fl.format, "format", "f", "terminal", "output format, one of: "+strings.Join(highlighting.Formats, ", "))
	pf.StringVarP(&fl.style, "style", "s", string(highlighting.DefaultStyle), "chroma style for CSS and terminal output")
	pf.BoolVar(&fl.css, "css", false, "write the style sheet before html output")
	pf.BoolVar(&fl.ignoreHTML, "ignore-unescaped-html", false, "do not warn when the input contains HTML tags")
	pf.BoolVar(&fl.stripHTML, "strip-html", false, "highlight the text content of input that contains HTML tags")
	pf.BoolVarP(&fl.verbose, "verbose", "v", false, "log informational messages")
	pf.BoolVar(&fl.veryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&fl.quiet, "quiet", "q", false, "only log errors")

	rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return highlighting.Formats, cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.RegisterFlagCompletionFunc("style", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return highlighting.StyleNames(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "languages",
			Short: "List the supported languages",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return NewApp(config.Default(), cmd.OutOrStdout(), nil).LanguagesCmd()
			},
		},
		&cobra.Command{
			Use:   "styles",
			Short: "List the available styles",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return NewApp(config.Default(), cmd.OutOrStdout(), nil).StylesCmd()
			},
		},
		&cobra.Command{
			Use:   "detect [files...]",
			Short: "Show the relevance of each candidate language",
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := fl.app(cmd)
				if err != nil {
					return err
				}
				return a.DetectCmd(args)
			},
		},
		&cobra.Command{
			Use:   "markdown [files...]",
			Short: "Render markdown as HTML with highlighted code blocks",
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := fl.app(cmd)
				if err != nil {
					return err
				}
				return a.MarkdownCmd(args)
			},
		},
		&cobra.Command{
			Use:   "config",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, err := fl.app(cmd)
				if err != nil {
					return err
				}
				return a.ConfigCmd()
			},
		},
	)
	return rootCmd
}

// app loads the config file, applies the flags that were set on the
// command line, and validates the result.
func (fl *flags) app(cmd *cobra.Command) (*App, error) {
	cfg := config.Default()
	file := fl.configFile
	if file == "" {
		file = config.Find()
	}
	if file != "" {
		c, err := config.Open(file)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	set := cmd.Flags().Changed
	if set("language") {
		cfg.Language = fl.language
	}
	if set("languages") {
		cfg.Highlight.Languages = fl.languages
	}
	if set("format") {
		cfg.Format = fl.format
	}
	if set("style") {
		cfg.Highlight.StyleName = highlighting.HighlightingName(fl.style)
	}
	if set("css") {
		cfg.CSS = fl.css
	}
	if set("ignore-unescaped-html") {
		cfg.Highlight.IgnoreUnescapedHTML = fl.ignoreHTML
	}
	if set("strip-html") {
		cfg.Highlight.StripHTML = fl.stripHTML
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewApp(cfg, cmd.OutOrStdout(), cmd.InOrStdin()), nil
}
