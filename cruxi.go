package main

import "cruxc/cmd"

func main() {
	cmd.Execute()
}
