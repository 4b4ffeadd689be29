package main

import "github.com/mediasort/mediasort/cmd"

func main() {
	cmd.Execute()
}
