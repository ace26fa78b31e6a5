package main

import (
	"github.com/Cloud-Pie/EFT/cmd"
)

// @title EFT CLI
// @version 1.0
// @description start point for the CLI

func main() {
	cmd.Execute()
}
