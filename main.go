package main

import "showcase-cli/cmd"

var version = "0.3.0"

func main() {
	cmd.Execute(version)
}
