package main

import (
	"os"

	"github.com/vinoteka/vinoteka/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
