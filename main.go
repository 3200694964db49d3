package main

import (
	"github.com/Ethernal-Tech/ovm-message-relayer/cli"
)

func main() {
	cli.NewRootCommand().Execute()
}
