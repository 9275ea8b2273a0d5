package main

import (
	"github.com/rollup-vm/multivm/cmd/util/cmd"
)

func main() {
	cmd.Execute()
}
