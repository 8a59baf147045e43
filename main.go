package main

import "spool-sync/cmd"

func main() {
	cmd.Execute()
}
