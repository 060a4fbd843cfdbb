package main

import "github.com/grainlab/riceclass/cmd/riceclass"

func main() {
	riceclass.Execute()
}
