package probe

import (
	"errors"
	"log"
	"os"
)

type route struct{}

func (r route) panic() {}

func parse(out string) (string, error) {
	if out == "" {
		panic("empty output") // want "usage of panic function is forbidden"
	}

	if len(out) > 1<<20 {
		os.Exit(1) // want "os.Exit outside main"
	}

	r := route{}
	r.panic() // must be ignored

	log.Fatal("no default route")      // want "log.Fatal outside main"
	log.Fatalf("no route in %q", out) // want "log.Fatalf outside main"

	return "", errors.New("no default route")
}
