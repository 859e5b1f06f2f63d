package main

import "excel-exporter/cmd"

func main() {
	cmd.Execute()
}
