package main

import "github.com/oshokin/interval-alarm/cmd/interval-alarmd/cmd"

func main() {
	cmd.Execute()
}
