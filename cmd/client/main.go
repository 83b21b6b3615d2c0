package main

import "linkedink/cmd/client/cmd"

func main() {
	cmd.Execute()
}
