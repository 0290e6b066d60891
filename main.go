package main

import (
	"os"

	"github.com/pgoelter/sequence-assembly/cmd"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "docs" {
		makeDocs() // regenerate the Markdown docs in /docs
		return
	}

	cmd.Execute() // initialize cobra commands
}
