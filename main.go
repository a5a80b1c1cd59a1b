package main

import (
	"github.com/sjzsdu/dbproj/cmd"
)

func main() {
	cmd.Execute()
}
