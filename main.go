package main

import "impl-tracker/cmd"

func main() {
	cmd.Execute()
}
