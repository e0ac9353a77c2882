package main

import (
	"github.com/dreamerjackson/htstask/cmd"
)

func main() {
	cmd.Execute()
}
