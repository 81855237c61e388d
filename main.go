package main

import "dataprobe/cmd"

func main() {
	cmd.Execute()
}
