package main

import "github.com/footycards/card-market/cmd"

func main() {
	cmd.Execute()
}
