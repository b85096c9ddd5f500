package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	DBPath   string
	Timezone string

	// Curation LLM (OpenAI-compatible server with a /v1/mcp/query endpoint)
	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string
	LLMTimeout  time.Duration // long: the MCP pipeline does its own tool calls

	// Korea Tourism API
	TourAPIKey    string
	KorServiceURL string
	TarRlteURL    string
	SearchTimeout time.Duration
	BaseYM        string // TarRlteTarService1 reference month

	// Orchestrator
	MaxJobs         int
	RelatedRequired bool // fail the whole search when the related backend fails

	// Optional xlsx with extra area/sigungu code rows
	AreaCodesPath string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Printf("[cfg] %s=%q is not an int, using %d", k, v, def)
		}
		return def
	}

	cfg := AppConfig{
		Port:     get("PORT", "8080"),
		DBPath:   get("DB_PATH", "mannam.db"),
		Timezone: get("TZ", "Asia/Seoul"),

		LLMEndpoint: get("LLM_ENDPOINT", ""),
		LLMAPIKey:   get("LLM_API_KEY", ""),
		LLMModel:    get("LLM_MODEL", "exaone"),
		LLMTimeout:  time.Duration(getInt("LLM_TIMEOUT_SEC", 300)) * time.Second,

		TourAPIKey:    get("TOUR_API_KEY", ""),
		KorServiceURL: get("KORSERVICE_URL", "https://apis.data.go.kr/B551011/KorService2"),
		TarRlteURL:    get("TARRLTE_URL", "https://apis.data.go.kr/B551011/TarRlteTarService1"),
		SearchTimeout: time.Duration(getInt("SEARCH_TIMEOUT_SEC", 30)) * time.Second,
		BaseYM:        get("BASE_YM", "202504"),

		MaxJobs:         getInt("MAX_JOBS", 8),
		RelatedRequired: get("RELATED_REQUIRED", "false") == "true",

		AreaCodesPath: get("AREA_CODES_PATH", ""),
	}
	log.Printf("[cfg] port=%s db=%s llm=%q max_jobs=%d", cfg.Port, cfg.DBPath, cfg.LLMEndpoint, cfg.MaxJobs)
	return cfg
}
