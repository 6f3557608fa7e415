package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pstuifzand/tui-sidebar/internal/app"
)

func main() {
	logPath := flag.String("log", "tui-sidebar.log", "Write the log to this file")
	debug := flag.Bool("debug", false, "Enable debug mode (shows key events in status)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [items.json]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logFile, err := os.Create(*logPath)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	filePath := "sidebar.json"
	if args := flag.Args(); len(args) > 0 {
		filePath = args[0]
	}

	application, err := app.NewApp(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *debug {
		application.SetDebugMode(true)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
		os.Exit(1)
	}
}
