package main

import "github.com/jsphweid/ragadex/cmd"

func main() {
	cmd.Execute()
}
