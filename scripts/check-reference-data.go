package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// record holds the fields every reference record is expected to carry
type record struct {
	XWS     string `json:"xws"`
	ShipXWS string `json:"ship_xws"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	defer client.Close()
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Checking reference records...")

	counts := map[string]int{}
	var broken []string

	iter := client.Scan(ctx, 0, "xws:*", 500).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		kind := strings.SplitN(strings.TrimPrefix(key, "xws:"), ":", 2)[0]
		counts[kind]++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var rec record
		if err := json.Unmarshal(data, &rec); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			broken = append(broken, key)
			continue
		}
		if rec.XWS == "" || !strings.HasSuffix(key, ":"+rec.XWS) {
			fmt.Printf("✗ %s holds record %q\n", key, rec.XWS)
			broken = append(broken, key)
			continue
		}

		if kind == "pilot" {
			n, err := client.Exists(ctx, "xws:ship:"+rec.ShipXWS).Result()
			if err != nil {
				fmt.Printf("Error checking ship of %s: %v\n", key, err)
				continue
			}
			if rec.ShipXWS == "" || n == 0 {
				fmt.Printf("✗ %s points at missing ship %q\n", key, rec.ShipXWS)
				broken = append(broken, key)
			}
		}
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nfactions=%d ships=%d pilots=%d upgrades=%d, %d broken\n",
		counts["faction"], counts["ship"], counts["pilot"], counts["upgrade"], len(broken))

	if counts["pilot"] == 0 {
		fmt.Println("No pilots stored. Run `xwsbot import` first.")
	}
	if len(broken) == 0 {
		return
	}

	fmt.Println("\nBroken keys:")
	for _, key := range broken {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDelete these keys? A fresh `xwsbot import` is usually the better fix. (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}
	if err := client.Del(ctx, broken...).Err(); err != nil {
		log.Fatal("Failed to delete keys:", err)
	}
	fmt.Printf("Deleted %d keys\n", len(broken))
}
