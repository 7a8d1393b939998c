// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"ssaflow/internal/asmgrammar"
)

func main() {
	commonlog.Configure(1, nil)
	logger := commonlog.GetLogger("dfgtool")

	if len(os.Args) < 2 {
		fmt.Println("Usage: dfgtool <file.dfg>")
		os.Exit(1)
	}

	path := os.Args[1]
	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("failed to read file: %s", err)
		os.Exit(1)
	}

	logger.Infof("parsing %s", path)

	fns, buildErr := asmgrammar.Build(path, string(source))
	if buildErr != nil {
		if buildErr.Diagnostic.Message != "" {
			fmt.Println(asmgrammar.FormatParseError(path, string(source), &buildErr.Diagnostic))
		} else {
			color.Red("error: %s", buildErr.Err)
		}
		os.Exit(1)
	}

	for _, fn := range fns {
		fmt.Printf("function %%%s {\n", fn.Name)
		for _, ebb := range fn.Layout.Ebbs() {
			fmt.Println(fn.DFG.DisplayEbbHeader(ebb))
			for _, inst := range fn.Layout.InstsOf(ebb) {
				fmt.Printf("    %s\n", fn.DFG.DisplayInst(inst))
			}
		}
		fmt.Println("}")
	}

	color.Green("✅ assembled %d function(s) from %s", len(fns), path)
}
