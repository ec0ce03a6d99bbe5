package main

import (
	"os"

	"github.com/novera-digital/novera-site/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
