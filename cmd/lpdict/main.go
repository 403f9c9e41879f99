// Command lpdict reads a linear problem on stdin or from a file and prints
// whether it is optimal, unbounded or infeasible.
//
// Exit status is 0 for any of the three outcomes, 1 for usage or input
// errors and 2 when the iteration cap is reached.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
