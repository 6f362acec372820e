// Package main is the entry point for gridwalk, an interactive grid
// walker over the geom primitives.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/samdwyer/gridgeom/internal/session"
	"github.com/samdwyer/gridgeom/internal/telemetry"
	"github.com/samdwyer/gridgeom/internal/walk"
)

func main() {
	arenaName := flag.String("arena", "courtyard", "embedded arena to walk")
	dump := flag.Bool("dump", false, "print the arena as text and exit")
	flag.Parse()

	// Load .env for local development. Not fatal: the OTEL_* variables
	// may be set directly in the environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if *dump {
		arena, err := walk.LoadArena(*arenaName)
		if err != nil {
			log.Fatalf("Failed to load arena: %v", err)
		}
		fmt.Println(arena)
		return
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Walker will run without tracing")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	s, err := session.New(*arenaName)
	if err != nil {
		log.Fatalf("Failed to initialize session: %v", err)
	}

	if err := s.Run(ctx); err != nil {
		log.Fatalf("Session error: %v", err)
	}
}
