package main

import "github.com/ankiterm/ankiterm/cmd/ankiterm/cmd"

func main() {
	cmd.Execute()
}
