package main

import "github.com/mdaniel/dgs-codegen/cmd"

func main() {
	cmd.Execute()
}
