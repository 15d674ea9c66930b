package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/playwright-community/playwright-go"

	"go-careerscout-automation/internal/browser"
	"go-careerscout-automation/internal/config"
	"go-careerscout-automation/internal/discovery"
	"go-careerscout-automation/internal/store"
	"go-careerscout-automation/internal/telegram"
	"go-careerscout-automation/utils"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <input.csv> <output.csv>\n", os.Args[0])
		os.Exit(2)
	}
	inputPath, outputPath := os.Args[1], os.Args[2]

	//load config
	cfg := config.Load()

	//resume: skip companies that already have a career URL
	processed, err := store.LoadProcessed(outputPath)
	if err != nil {
		log.Printf("⚠️ Could not read existing results, starting fresh: %v", err)
		processed = mapset.NewSet[string]()
	}
	log.Printf("📋 Found %d already processed companies with career URLs", processed.Cardinality())

	companies, err := store.ReadCompanies(inputPath)
	if err != nil {
		log.Fatalf("❌ Failed to load companies: %v", err)
	}

	var queue []discovery.Company
	for _, c := range companies {
		if !processed.Contains(c.Name) {
			queue = append(queue, c)
		}
	}
	log.Printf("🔄 Processing %d companies that need career URLs...", len(queue))

	//optional telegram reporting
	var bot *telegram.Bot
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		bot, err = telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("⚠️ Telegram disabled: %v", err)
			bot = nil
		}
	}

	//the only fatal runtime failure: the automation session itself
	pwManager, err := browser.NewPlaywright(true)
	if err != nil {
		log.Fatalf("❌ Failed to init Playwright: %v", err)
	}
	defer pwManager.Close()

	browserCtx, err := pwManager.NewContext()
	if err != nil {
		log.Fatalf("❌ Failed to create browser context: %v", err)
	}
	defer browserCtx.Close()
	log.Println("✅ Browser initialized successfully!")

	chain := discovery.DefaultChain(cfg)
	recorder := store.NewRecorder(outputPath)
	debugger := utils.NewScreenShotDebugger(cfg.ScreenshotDir)
	ctx := context.Background()

	found := 0
	for i, c := range queue {
		log.Printf("\n📊 Processing company %d/%d: %s", i+1, len(queue), c.Name)

		outcome := discoverOne(ctx, chain, browserCtx, debugger, c)
		if outcome.FoundURL != "" {
			found++
		}

		if err := recorder.Record(outcome); err != nil {
			log.Printf("❌ Failed to record outcome for %s: %v", c.Name, err)
		}

		if bot != nil {
			if err := bot.SendOutcome(outcome); err != nil {
				log.Printf("⚠️ Failed to send result to Telegram: %v", err)
			}
		}

		//cooldown between companies to avoid rate limiting
		time.Sleep(time.Duration(cfg.CooldownMs) * time.Millisecond)
	}

	log.Printf("\n✅ All done! %d/%d career pages found. Results saved to %s", found, len(queue), outputPath)
}

// discoverOne runs the chain for one company on a fresh page. Whatever goes
// wrong, it comes back with an outcome so the company still gets its row.
func discoverOne(ctx context.Context, chain *discovery.Chain, browserCtx playwright.BrowserContext, debugger *utils.ScreenShotDebugger, c discovery.Company) (outcome discovery.Outcome) {
	outcome = discovery.Outcome{Company: c, Timestamp: time.Now()}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Error processing %s: %v", c.Name, r)
			outcome = discovery.Outcome{Company: c, Timestamp: time.Now()}
		}
	}()

	page, err := browserCtx.NewPage()
	if err != nil {
		log.Printf("❌ Could not open page for %s: %v", c.Name, err)
		return outcome
	}
	defer page.Close()

	outcome = chain.Discover(ctx, page, c)
	if outcome.FoundURL == "" {
		debugger.CaptureAndLog(page, slugify(c.Name), fmt.Sprintf("No career page found for %s", c.Name))
	}
	return outcome
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
