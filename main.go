package main

import "github.com/prodash/prodash/cmd"

func main() {
	cmd.Execute()
}
