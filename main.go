package main

import "github.com/jwhearn/tunetext/cmd"

func main() {
	cmd.Execute()
}
