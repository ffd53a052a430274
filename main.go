package main

import "github.com/alexiusacademia/gohouse/cmd"

func main() {
	cmd.Execute()
}
