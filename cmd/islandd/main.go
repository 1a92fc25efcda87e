package main

import "github.com/example/island-booking/cmd"

func main() {
	cmd.Execute()
}
