package main

import (
	"fmt"
	"os"

	"github.com/leg100/tabdash/internal/app"
)

func main() {
	if err := app.Start(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if app.IsHelp(err) {
			// usage has already been printed
			os.Exit(0)
		}
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
