package main

import "cost-sync/cmd"

func main() {
	cmd.Execute()
}
