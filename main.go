package main

import "github.com/chriserin/gherkin-report/cmd"

func main() {
	cmd.Execute()
}
