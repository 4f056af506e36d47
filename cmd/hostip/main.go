package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fragpit/dockerhost-ip/internal/app"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer cancel()

	err := app.Run(ctx, os.Args[1:], os.Stdout, os.Stderr, app.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	})
	if err != nil {
		cancel()
		log.Fatalf("hostip: %v", err)
	}
}
