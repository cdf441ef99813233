package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/grimveil/dicebound/internal/config"
	"github.com/grimveil/dicebound/internal/domain/scaling"
	"github.com/grimveil/dicebound/internal/registry"
	"github.com/grimveil/dicebound/internal/services/itemgen"
)

func main() {
	family := flag.String("family", "armor", "affix family to roll")
	rarity := flag.String("rarity", "rare", "item rarity (uncommon, rare, epic)")
	level := flag.Int("level", 50, "item level")
	heavy := flag.Bool("heavy", false, "heavy (double-roll) item")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	reg, warnings, err := registry.Load(cfg.Content.Dir)
	if err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}
	for _, w := range warnings {
		log.Printf("WARN %s: %v", w.TemplateID, w.Err)
	}

	scaler, err := scaling.NewEngine(&scaling.EngineConfig{Scaling: reg.Scaling()})
	if err != nil {
		log.Fatalf("Failed to build scaling engine: %v", err)
	}

	svc := itemgen.NewService(&itemgen.ServiceConfig{
		Registry: reg,
		Scaler:   scaler,
	})

	out, err := svc.RollItemAffixes(context.Background(), &itemgen.RollInput{
		Family: *family,
		Rarity: itemgen.Rarity(*rarity),
		Level:  *level,
		Heavy:  *heavy,
	})
	if err != nil {
		log.Fatalf("Roll failed: %v", err)
	}

	fmt.Printf("Level %d %s %s (power position %.3f): %d affixes\n",
		*level, *rarity, *family, out.PowerPosition, len(out.Instances))
	for _, inst := range out.Instances {
		fmt.Printf("  [tier %d] %s = %v (%s)\n", inst.Tier, inst.TemplateName, inst.Value, inst.InstanceID)
	}
}
