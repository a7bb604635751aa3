package main

import (
	"os"

	"shade/internal/app"
)

func main() {
	os.Exit(app.Run())
}
