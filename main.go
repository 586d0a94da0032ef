package main

import (
	"context"
	"fmt"
	"github.com/alexcrichton/rust-release/internal/flag"
	"github.com/alexcrichton/rust-release/internal/logger"
	"github.com/alexcrichton/rust-release/internal/publish"
	"go.uber.org/zap/zapcore"
	"os"
)

func main() {
	log, err := logger.NewZapLogger(zapcore.InfoLevel)
	if err != nil {
		fmt.Printf("new zap logger: %v", err)
		os.Exit(1)
	}

	config, err := flag.ParseFlags()
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	log.Info(config.String())

	if err := publish.NewPublisher(log, config).Publish(context.TODO()); err != nil {
		log.Fatal(fmt.Sprintf("publish: %v", err))
	}
}
