// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"cogentcore.org/highlight/text/highlighting"
	"cogentcore.org/highlight/text/parse/languages"
)

// LanguagesCmd lists the registered languages.
func (a *App) LanguagesCmd() error {
	w := tabwriter.NewWriter(a.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tALIASES\tFILENAMES")
	for _, gr := range languages.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", gr.Name, strings.Join(gr.Aliases, ", "), strings.Join(gr.Filenames, " "))
	}
	return w.Flush()
}

// StylesCmd lists the available styles.
func (a *App) StylesCmd() error {
	for _, nm := range highlighting.StyleNames() {
		if _, err := fmt.Fprintln(a.Out, nm); err != nil {
			return err
		}
	}
	return nil
}

// DetectCmd prints the relevance of each candidate language for the
// given files, or standard input, best first.
func (a *App) DetectCmd(files []string) error {
	ins, err := a.inputs(files)
	if err != nil {
		return err
	}
	hi := highlighting.New(a.Highlight)
	w := tabwriter.NewWriter(a.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tLANGUAGE\tRELEVANCE\tILLEGAL")
	for _, in := range ins {
		name := in.name
		if name == "" {
			name = "-"
		}
		for _, res := range hi.Rank(in.src) {
			fmt.Fprintf(w, "%s\t%s\t%d\t%v\n", name, res.Language, res.Relevance, res.Illegal)
		}
	}
	return w.Flush()
}
