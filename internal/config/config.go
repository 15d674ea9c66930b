// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//Navigation timeouts (milliseconds)
	SubdomainTimeoutMs float64 `yaml:"subdomain_timeout_ms"`
	HomepageTimeoutMs  float64 `yaml:"homepage_timeout_ms"`
	NetworkIdleMs      float64 `yaml:"network_idle_ms"`
	DirectTimeoutMs    float64 `yaml:"direct_timeout_ms"`
	SearchTimeoutMs    float64 `yaml:"search_timeout_ms"`
	//Dropdown settle delay after hovering a nav section (milliseconds)
	SettleDelayMs float64 `yaml:"settle_delay_ms"`
	//Cooldown between companies to avoid rate limiting (milliseconds)
	CooldownMs int `yaml:"cooldown_ms"`
	//Search engine used by the last-resort strategy
	SearchEngineURL string `yaml:"search_engine_url"`
	//Job filter criteria for the scraper tool
	RoleKeywords      []string `yaml:"role_keywords"`
	SeniorityKeywords []string `yaml:"seniority_keywords"`
	LocationKeywords  []string `yaml:"location_keywords"`
	//Browser agent used for job board scraping
	AgentAPIKey  string `yaml:"agent_api_key" env:"AGENT_API_KEY"`
	AgentModel   string `yaml:"agent_model"`
	AgentBaseURL string `yaml:"agent_base_url"`
	//Optional Telegram reporting
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	//Paths
	CachePath     string `yaml:"cache_path"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if key := os.Getenv("AGENT_API_KEY"); key != "" {
		cfg.AgentAPIKey = key
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.SubdomainTimeoutMs == 0 {
		cfg.SubdomainTimeoutMs = 8000
	}
	if cfg.HomepageTimeoutMs == 0 {
		cfg.HomepageTimeoutMs = 20000
	}
	if cfg.NetworkIdleMs == 0 {
		cfg.NetworkIdleMs = 10000
	}
	if cfg.DirectTimeoutMs == 0 {
		cfg.DirectTimeoutMs = 10000
	}
	if cfg.SearchTimeoutMs == 0 {
		cfg.SearchTimeoutMs = 15000
	}
	if cfg.SettleDelayMs == 0 {
		cfg.SettleDelayMs = 1000
	}
	if cfg.CooldownMs == 0 {
		cfg.CooldownMs = 2000
	}
	if cfg.SearchEngineURL == "" {
		cfg.SearchEngineURL = "https://html.duckduckgo.com/html/?q="
	}
	if len(cfg.RoleKeywords) == 0 {
		cfg.RoleKeywords = []string{"product manager", "product owner", "product lead"}
	}
	if len(cfg.SeniorityKeywords) == 0 {
		cfg.SeniorityKeywords = []string{"senior", "group", "staff", "lead", "principal", "head"}
	}
	if len(cfg.LocationKeywords) == 0 {
		cfg.LocationKeywords = []string{"bangalore", "bengaluru", "india", "remote"}
	}
	if cfg.AgentModel == "" {
		cfg.AgentModel = "llama-3.3-70b-versatile"
	}
	if cfg.AgentBaseURL == "" {
		cfg.AgentBaseURL = "https://api.groq.com/openai/v1/chat/completions"
	}
	if cfg.CachePath == "" {
		cfg.CachePath = ".cache"
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "logs/screenshots"
	}

	return cfg
}
