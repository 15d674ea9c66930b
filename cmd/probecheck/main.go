package main

import (
	"fmt"
	"log"
	"os"

	"go-careerscout-automation/internal/browser"
	"go-careerscout-automation/internal/prober"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <url>\n", os.Args[0])
		os.Exit(2)
	}
	url := os.Args[1]

	fmt.Println("🌐 Testing Page Prober...")

	pm, err := browser.NewPlaywright(true)
	if err != nil {
		log.Fatalf("Failed to create Playwright: %v", err)
	}
	defer pm.Close()

	fmt.Println("✅ Playwright started")

	browserCtx, err := pm.NewContext()
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}
	defer browserCtx.Close()

	page, err := browserCtx.NewPage()
	if err != nil {
		log.Fatalf("Failed to create page: %v", err)
	}

	fmt.Printf("🔍 Probing %s...\n", url)
	res := prober.Probe(page, url, 10000)

	fmt.Printf("✅ Reachable: %v\n", res.Reachable)
	fmt.Printf("✅ Career signal: %v\n", res.HasSignal)
	fmt.Printf("✅ Final URL: %s\n", res.FinalURL)
}
