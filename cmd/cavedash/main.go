// Package main is the entry point for cavedash.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/samdwyer/cavedash/internal/cave"
	"github.com/samdwyer/cavedash/internal/game"
	"github.com/samdwyer/cavedash/internal/gamedata"
	"github.com/samdwyer/cavedash/internal/telemetry"
	"github.com/samdwyer/cavedash/internal/world"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_CAVEDASH_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg := game.DefaultConfig()
	flag.StringVar(&cfg.CaveID, "cave", os.Getenv("CAVEDASH_CAVE"), "cave id from the built-in library")
	flag.StringVar(&cfg.CaveFile, "file", "", "raw cave file to load instead of the library")
	flag.IntVar(&cfg.Level, "level", envInt("CAVEDASH_LEVEL", cfg.Level), "difficulty level 1-5")
	flag.BoolVar(&cfg.StepDebug, "step", envBool("CAVEDASH_STEP"), "pause after every drawing command")
	dump := flag.Bool("dump", false, "print the decoded cave and exit")
	list := flag.Bool("list", false, "list the built-in caves and exit")
	flag.Parse()

	if *list {
		listCaves()
		return
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if *dump {
		if err := dumpCave(ctx, cfg); err != nil {
			log.Fatalf("Dump failed: %v", err)
		}
		return
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// dumpCave decodes the configured cave and prints it without a terminal UI.
func dumpCave(ctx context.Context, cfg game.Config) error {
	registry, err := gamedata.LoadCaveRegistry()
	if err != nil {
		return err
	}
	data, name, err := game.CaveData(cfg, registry)
	if err != nil {
		return err
	}

	d := cave.Decoder{Level: cfg.Level}
	if cfg.StepDebug {
		d.AfterCommand = func(cmd cave.Command, _ *world.Grid) error {
			fmt.Println(cmd)
			return nil
		}
	}
	c, err := d.Decode(ctx, data)
	if err != nil {
		return err
	}

	h := c.Header
	fmt.Printf("%s: cave %d level %d, %d diamonds needed, time %d\n",
		name, h.Number, h.Level, h.DiamondsNeeded, h.Time)
	fmt.Print(c.Grid.String())
	return nil
}

func listCaves() {
	registry := gamedata.MustLoadCaveRegistry()
	for _, c := range registry.All() {
		fmt.Printf("%-8s %-10s %s\n", c.ID, c.Name, c.Description)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_CAVEDASH_API_KEY")
	dataset := os.Getenv("HONEYCOMB_CAVEDASH_DATASET")
	if dataset == "" {
		dataset = "cavedash"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}
