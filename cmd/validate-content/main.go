package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/grimveil/dicebound/internal/config"
	"github.com/grimveil/dicebound/internal/registry"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dir := cfg.Content.Dir
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	reg, warnings, err := registry.Load(dir)
	if err != nil {
		log.Fatalf("Failed to load content from %s: %v", dir, err)
	}

	for _, w := range warnings {
		fmt.Printf("WARN %s: %v\n", w.TemplateID, w.Err)
	}

	families := reg.Families()
	fmt.Printf("Loaded %d affix families from %s\n", len(families), dir)
	for _, f := range families {
		fmt.Printf("  %s\n", f)
	}

	if len(warnings) > 0 {
		fmt.Printf("%d template(s) failed validation\n", len(warnings))
		os.Exit(1)
	}
	fmt.Println("All templates valid")
}
