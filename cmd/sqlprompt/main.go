// sqlprompt - minimal interactive MySQL client
//
// sqlprompt connects to a MySQL server and runs SQL statements either
// once (-e) or interactively, printing results as an ASCII table.
package main

import (
	"os"

	"github.com/enunezf/sqlprompt/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
