// cmd/cipherbench/main.go
package main

import (
	cmd "github.com/mwiater/cipherbench/internal/cli"
)

// main starts the cipherbench CLI application by delegating to the
// cobra root command defined in the cli package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
