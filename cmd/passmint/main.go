package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/passmint/passmint-go/internal/cli"
	"github.com/passmint/passmint-go/internal/password"
	"github.com/passmint/passmint-go/internal/service"
)

func main() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		fmt.Println("\n\nThanks for using the password generator!")
		os.Exit(0)
	}()

	svc := service.NewGeneratorService(password.New(nil))
	cli.Run(os.Stdin, os.Stdout, svc)
}
