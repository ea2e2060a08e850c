package main

import "github.com/aaoifi-tools/standards-extractor/cmd"

func main() {
	cmd.Execute()
}
