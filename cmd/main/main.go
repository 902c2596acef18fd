package main

import "github.com/Another0Noob/lookbook-index/cmd"

func main() {
	cmd.Execute()
}
