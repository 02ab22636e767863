package main

import "github.com/JA3G3R/jscheck/cmd"

func main() {
	cmd.Execute()
}
