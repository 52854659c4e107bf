// Command ratio parses, normalizes and compares rational numbers.
package main

import (
	"os"

	"ratio/src/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
