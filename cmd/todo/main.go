package main

import (
	"fmt"

	"todokeeper/internal/logger"
	"todokeeper/internal/todo"
	"todokeeper/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// Logs go to a file: stdout belongs to the terminal UI.
	log := logger.NewFileLogger("todo-console")

	manager := todo.NewManager()

	ui := tui.New(manager, log)
	if err := ui.Run(); err != nil {
		log.Fatal().Err(err).Msg("console todo run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
