package main

import "github.com/energy-modelling-hub/water-value-database/cmd"

func main() {
	cmd.Execute()
}
