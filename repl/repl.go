// SPDX-License-Identifier: Apache-2.0

// Package repl is a line-oriented read-eval-print loop over
// internal/asmgrammar: paste or type a function definition, terminate it
// with a blank line, and see its data flow graph printed back.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"ssaflow/internal/asmgrammar"
)

// Run reads function definitions from in, one blank-line-terminated
// block at a time, and writes their assembled form to out until in is
// exhausted.
func Run(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	var block strings.Builder
	blockNum := 0

	flush := func() {
		source := block.String()
		block.Reset()
		if strings.TrimSpace(source) == "" {
			return
		}
		blockNum++
		name := fmt.Sprintf("<repl:%d>", blockNum)

		fns, buildErr := asmgrammar.Build(name, source)
		if buildErr != nil {
			if buildErr.Diagnostic.Message != "" {
				fmt.Fprintln(out, asmgrammar.FormatParseError(name, source, &buildErr.Diagnostic))
			} else {
				fmt.Fprintln(out, color.RedString("error: %s", buildErr.Err))
			}
			return
		}

		for _, fn := range fns {
			fmt.Fprintf(out, "function %%%s {\n", fn.Name)
			for _, ebb := range fn.Layout.Ebbs() {
				fmt.Fprintln(out, fn.DFG.DisplayEbbHeader(ebb))
				for _, inst := range fn.Layout.InstsOf(ebb) {
					fmt.Fprintf(out, "    %s\n", fn.DFG.DisplayInst(inst))
				}
			}
			fmt.Fprintln(out, "}")
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		block.WriteString(line)
		block.WriteString("\n")
	}
	flush()
}
