package main

import "github.com/SillyBits/imagetracer/cmd/imagetracer/cmd"

func main() {
	cmd.Execute()
}
