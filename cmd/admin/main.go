package main

import (
	"os"

	"github.com/Ziyadh-ali/workwave-client-sub001/cmd/admin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
