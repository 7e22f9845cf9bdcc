package main

import (
	"os"

	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
