package main

import (
	"log"

	"github.com/brightimpact/impactboard/cmd"
)

func main() {
	webFS, err := getFrontendFS()
	if err != nil {
		log.Fatalf("failed to load frontend assets: %v", err)
	}
	cmd.WebFS = webFS
	cmd.Execute()
}
