package main

import (
	"log"

	"GridNotebook/internal/config"
	"GridNotebook/internal/notebook"
	"GridNotebook/internal/ui"
)

func main() {
	cfg := config.Default()
	if path, err := config.Path(); err != nil {
		log.Printf("Using default settings: %v", err)
	} else if loaded, err := config.Load(path); err != nil {
		log.Printf("Ignoring config file: %v", err)
	} else {
		cfg = loaded
	}

	s := notebook.New(cfg)
	ui.RunApp(s)
}
