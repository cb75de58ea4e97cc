package main

import "pkg.jsn.cam/salondata/internal/cli"

func main() {
	cli.Execute()
}
