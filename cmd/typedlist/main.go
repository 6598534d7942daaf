package main

import (
	"os"
)

const (
	SUCCESS_STATUS_CODE = 0
	ERROR_STATUS_CODE   = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
