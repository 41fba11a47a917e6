// cmd/aligner/main.go
package main

import (
	"os"

	"github.com/PyEED/aligner/internal/app"
	"github.com/PyEED/aligner/internal/appshell"
)

func main() {
	os.Exit(appshell.Run(app.RunContext))
}
