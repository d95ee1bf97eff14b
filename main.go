package main

import "github.com/nimbus-weather/nimbus/cmd"

func main() {
	cmd.Execute()
}
