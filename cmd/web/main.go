package main

import (
	"log"

	"workhive_backend/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
