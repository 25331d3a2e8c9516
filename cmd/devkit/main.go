package main

import (
	"github.com/NVIDIA/devicekit/pkg/cli"
)

func main() {
	cli.Execute()
}
