package main

import "github.com/impacto/site/cmd/impacto-cli/cmd"

func main() {
	cmd.Execute()
}
