// Command optimize is a command-line front end over the optim package.
package main

import (
	"os"

	"github.com/caryden/optim/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.New(version).Run(); err != nil {
		os.Exit(1)
	}
}
