// Command ecs-stress drives a World through a fixed duration with a
// randomly generated population of entities and a fixed set of three
// systems, then reports update-time
// and allocation statistics. It exercises the same World/Family/System
// machinery an application would, just with synthetic components instead
// of domain ones.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/ecscore/ecs"
)

const systemCount = 3

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting ECS stress test...")

	world, err := buildStressWorld(*entityCount)
	if err != nil {
		log.Fatalf("failed to build world: %v", err)
	}

	log.Printf("Populating world with %d entities...\n", *entityCount)
	for i := 0; i < *entityCount; i++ {
		spawnRandomEntity(world)
	}
	log.Println("Population complete.")

	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Components:     componentTypeCount,
		Systems:        systemCount,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			world.Update(float32(deltaTime.Seconds()))
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

func spawnRandomEntity(world *ecs.World) {
	n := rand.Intn(5) + 1
	world.Entity(func(w *ecs.World, e ecs.Entity) {
		for _, add := range stressComponentAdders(n) {
			add(w, e)
		}
	})
}
