package main

import (
	"log"
	"os"
)

func run() error { return nil }

func main() {
	if err := run(); err != nil {
		log.Fatalf("hostip: %v", err)
	}
	os.Exit(0)
}

func helper() {
	os.Exit(2) // want "os.Exit outside main"
}
