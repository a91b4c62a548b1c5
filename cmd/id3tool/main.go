package main

import (
	"github.com/jxs/go-id3/cmd/id3tool/cmd"
)

func main() {
	cmd.Execute()
}
