package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go-careerscout-automation/internal/agent"
	"go-careerscout-automation/internal/config"
	"go-careerscout-automation/internal/dedup"
	"go-careerscout-automation/internal/jobs"
	"go-careerscout-automation/internal/telegram"
)

const perBoardTimeout = 10 * time.Minute

type jobBoard struct {
	Company string
	URL     string
}

func main() {
	csvPath := flag.String("csv", "companies.csv", "Path to job boards CSV file")
	format := flag.String("format", "json", "Output format: json or csv")
	flag.Parse()

	cfg := config.Load()
	if cfg.AgentAPIKey == "" {
		log.Fatal("AGENT_API_KEY is required")
	}

	boards, err := loadJobBoards(*csvPath)
	if err != nil {
		log.Fatalf("❌ Failed to load job boards: %v", err)
	}
	if len(boards) == 0 {
		log.Println("No valid job boards found in CSV. Exiting.")
		return
	}
	log.Printf("📋 Loaded %d job boards from %s", len(boards), *csvPath)

	client := agent.NewHTTPClient(cfg.AgentAPIKey, cfg.AgentModel, cfg.AgentBaseURL)

	var results []jobs.BoardResult
	for i, board := range boards {
		log.Printf("\n▶️ Processing job board %d/%d: %s (%s)", i+1, len(boards), board.Company, board.URL)
		results = append(results, scrapeBoard(client, board))

		//short delay between job boards
		time.Sleep(5 * time.Second)
	}

	allJobs := jobs.ParseResults(results)
	matched := jobs.Filter(allJobs, jobs.Criteria{
		Role:      cfg.RoleKeywords,
		Seniority: cfg.SeniorityKeywords,
		Location:  cfg.LocationKeywords,
	})
	log.Printf("📦 Found %d relevant jobs after filtering (%d total)", len(matched), len(allJobs))

	//drop jobs already reported on a previous run
	cache := dedup.NewSeenCache(cfg.CachePath)
	var unseen []jobs.Job
	for _, job := range matched {
		if job.URL == "" || !cache.IsSeen(job.URL) {
			unseen = append(unseen, job)
		}
	}
	var unseenURLs []string
	for _, job := range unseen {
		if job.URL != "" {
			unseenURLs = append(unseenURLs, job.URL)
		}
	}
	cache.Add(unseenURLs)
	log.Printf("🔍 Deduplication: %d matched -> %d unseen jobs", len(matched), len(unseen))

	if len(unseen) == 0 {
		log.Println("ℹ️ No new jobs to report.")
		return
	}

	filename, err := jobs.Export(unseen, *format)
	if err != nil {
		log.Fatalf("❌ Export failed: %v", err)
	}
	log.Printf("📁 Exported %d jobs to %s", len(unseen), filename)

	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		sendToTelegram(cfg, unseen)
	}
}

// scrapeBoard runs the agent against one board. Timeouts, blocks and agent
// errors all come back as an empty result; one bad board never stops the run.
func scrapeBoard(client agent.Client, board jobBoard) jobs.BoardResult {
	ctx, cancel := context.WithTimeout(context.Background(), perBoardTimeout)
	defer cancel()

	raw, err := client.ScrapeBoard(ctx, board.Company, board.URL)
	if err != nil {
		log.Printf("⚠️ Error processing job board %s: %v", board.URL, err)
		raw = "[]"
	}
	if strings.Contains(raw, agent.NoRelevantJobsMarker) {
		log.Printf("  No relevant jobs found for %s - moving to next board", board.Company)
		raw = "[]"
	}

	return jobs.BoardResult{Company: board.Company, SourceURL: board.URL, Raw: raw}
}

// loadJobBoards reads the finder's output CSV: company in the first column,
// career URL in the last. Rows without an absolute URL are skipped.
func loadJobBoards(path string) ([]jobBoard, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read csv: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// prefer the career_url column of the finder's output; otherwise take
	// the last column, which is where ad-hoc board lists keep their URL
	urlIdx := -1
	for i, col := range records[0] {
		if strings.EqualFold(strings.TrimSpace(col), "career_url") {
			urlIdx = i
			break
		}
	}

	var boards []jobBoard
	for i, row := range records {
		if i == 0 || len(row) < 2 {
			continue
		}
		idx := urlIdx
		if idx < 0 || idx >= len(row) {
			idx = len(row) - 1
		}
		url := strings.TrimSpace(row[idx])
		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			continue
		}
		boards = append(boards, jobBoard{Company: strings.TrimSpace(row[0]), URL: url})
	}
	return boards, nil
}

func sendToTelegram(cfg *config.Config, matched []jobs.Job) {
	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Printf("⚠️ Telegram disabled: %v", err)
		return
	}

	for _, job := range matched {
		if err := bot.SendJob(job); err != nil {
			log.Printf("⚠️ Failed to send job to Telegram: %v", err)
		}
		//1 second delay to avoid 429
		time.Sleep(1 * time.Second)
	}
	if err := bot.SendStatus(fmt.Sprintf("✅ Found %d new matching jobs.", len(matched))); err != nil {
		log.Printf("⚠️ Failed to send status to Telegram: %v", err)
	}
}
