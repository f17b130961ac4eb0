// Command record-flattener combines JSON documents into one CSV file.
package main

import (
	"os"

	"record-flattener/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
