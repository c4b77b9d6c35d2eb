package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dayplan/internal/app"
	"dayplan/internal/cli"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "./dayplan.yaml", "path to config file (yaml or json)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := app.New(cfgPath)
	if err != nil {
		fmt.Println("fatal:", err)
		os.Exit(1)
	}

	a.Start(ctx)

	err = cli.Run(ctx, cli.Deps{
		Schedule:  a.Schedule(),
		Analyzer:  a.Analyzer(),
		ExportDir: a.ExportDir,
		Log:       a.Log(),
	}, os.Stdin, os.Stdout)

	a.Stop()
	if err != nil {
		fmt.Println("fatal:", err)
		os.Exit(1)
	}
}
