package main

import (
	"github.com/zerah-labs/zerah/cmd"
)

func main() {
	cmd.Execute()
}
