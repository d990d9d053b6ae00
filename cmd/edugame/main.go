package main

import (
	"github.com/bebe-pirat/edugame-api/internal/cli"
)

func main() {
	cli.Execute()
}
