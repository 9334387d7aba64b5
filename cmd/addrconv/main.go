// Package main implements addrconv, a tool converting account addresses
// between human readable parts.
package main

import (
	"github.com/multiversx/mx-chain-sovereign-go/cmd/addrconv/cmd"
)

func main() {
	cmd.Execute()
}
