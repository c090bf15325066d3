// Command ponder finds ponder demo annotations in source files and renders
// them the way an editor integration would: as lenses above annotated code,
// as hover previews, or directly in the terminal.
//
// # Usage
//
//	ponder lens [flags] <file> [file ...]
//	ponder hover [flags] <file> <line>
//	ponder open [flags] <reference>
//	ponder preview [flags] <file> <line>
//	ponder view [flags] <file>
//	ponder schema
//	ponder version
//
// Line numbers on the command line are 1-based.
//
// # Annotations
//
//	/// @ponder assets/demo.gif
//
//	/// @ponder
//	/// @preview assets/demo.png
//	/// @detailed https://example.com/demo
//	/// @description Drag to reorder
//
// Relative paths are resolved against the project root: the innermost
// --workspace-folder containing the file, or else the nearest directory
// holding a --project-marker file. Defaults for most flags may be set in a
// .ponder.yaml file found in the working directory or any parent.
package main

import (
	"fmt"
	"os"
)

func main() {
	err := newRootCmd(os.Stdout, os.Stderr).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
