package main

import "github.com/oshokin/interval-alarm/cmd/intervalctl/cmd"

func main() {
	cmd.Execute()
}
