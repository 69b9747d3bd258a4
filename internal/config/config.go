package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Provider exposes the application configuration through getters so that
// packages can depend on an interface and tests can supply their own values.
type Provider interface {
	GetServerAddr() string
	GetSiteURL() string
	GetAPIBaseURL() string
	GetSessionSecret() string
	GetLogFormat() string
	GetLogLevel() string
	GetContentDir() string
	GetContentWatch() bool
	GetHeroInterval() time.Duration
	GetTestimonialInterval() time.Duration
	GetLeadTimeout() time.Duration
	GetLeadsAPIEnabled() bool
	GetLeadsStore() string
	GetDBUrl() string
	GetDBNs() string
	GetDBDb() string
	GetDBUser() string
	GetDBPass() string
	GetEmailProvider() string
	GetEmailAPIKey() string
	GetEmailSender() string
	GetLeadNotifyTo() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr          string
	SiteURL             string
	APIBaseURL          string
	SessionSecret       string
	LogFormat           string
	LogLevel            string
	ContentDir          string
	ContentWatch        bool
	HeroInterval        time.Duration
	TestimonialInterval time.Duration
	LeadTimeout         time.Duration
	LeadsAPIEnabled     bool
	LeadsStore          string
	DBUrl               string
	DBNs                string
	DBDb                string
	DBUser              string
	DBPass              string
	EmailProvider       string
	EmailAPIKey         string
	EmailSender         string
	LeadNotifyTo        string
}

// New loads configuration from a .env file, if present, and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv reads configuration from the environment only.
func FromEnv() *Config {
	cfg := &Config{
		ServerAddr:          getenv("SERVER_ADDR", ":3000"),
		SiteURL:             strings.TrimRight(getenv("SITE_URL", "http://localhost:3000"), "/"),
		APIBaseURL:          strings.TrimRight(getenv("PUBLIC_API_BASE_URL", "http://localhost:8000"), "/"),
		SessionSecret:       getenv("SESSION_SECRET", "impacto-dev-session-secret-change-me"),
		LogFormat:           getenv("LOG_FORMAT", "text"),
		LogLevel:            getenv("LOG_LEVEL", "info"),
		ContentDir:          os.Getenv("CONTENT_DIR"),
		ContentWatch:        getbool("CONTENT_WATCH", false),
		HeroInterval:        getmillis("HERO_INTERVAL_MS", 6000),
		TestimonialInterval: getmillis("TESTIMONIAL_INTERVAL_MS", 8000),
		LeadTimeout:         getduration("LEAD_TIMEOUT", 10*time.Second),
		LeadsAPIEnabled:     getbool("LEADS_API_ENABLED", false),
		LeadsStore:          getenv("LEADS_STORE", "memory"),
		DBUrl:               os.Getenv("SURREAL_URL"),
		DBNs:                os.Getenv("SURREAL_NS"),
		DBDb:                os.Getenv("SURREAL_DB"),
		DBUser:              os.Getenv("SURREAL_USER"),
		DBPass:              os.Getenv("SURREAL_PASS"),
		EmailProvider:       getenv("EMAIL_PROVIDER", "log"),
		EmailAPIKey:         os.Getenv("EMAIL_API_KEY"),
		EmailSender:         os.Getenv("EMAIL_SENDER"),
		LeadNotifyTo:        os.Getenv("LEAD_NOTIFY_TO"),
	}

	if cfg.LeadsStore == "surreal" && (cfg.DBUrl == "" || cfg.DBNs == "" || cfg.DBDb == "") {
		log.Fatal("LEADS_STORE=surreal requires SURREAL_URL, SURREAL_NS and SURREAL_DB to be set.")
	}

	return cfg
}

func (c *Config) GetServerAddr() string                 { return c.ServerAddr }
func (c *Config) GetSiteURL() string                    { return c.SiteURL }
func (c *Config) GetAPIBaseURL() string                 { return c.APIBaseURL }
func (c *Config) GetSessionSecret() string              { return c.SessionSecret }
func (c *Config) GetLogFormat() string                  { return c.LogFormat }
func (c *Config) GetLogLevel() string                   { return c.LogLevel }
func (c *Config) GetContentDir() string                 { return c.ContentDir }
func (c *Config) GetContentWatch() bool                 { return c.ContentWatch }
func (c *Config) GetHeroInterval() time.Duration        { return c.HeroInterval }
func (c *Config) GetTestimonialInterval() time.Duration { return c.TestimonialInterval }
func (c *Config) GetLeadTimeout() time.Duration         { return c.LeadTimeout }
func (c *Config) GetLeadsAPIEnabled() bool              { return c.LeadsAPIEnabled }
func (c *Config) GetLeadsStore() string                 { return c.LeadsStore }
func (c *Config) GetDBUrl() string                      { return c.DBUrl }
func (c *Config) GetDBNs() string                       { return c.DBNs }
func (c *Config) GetDBDb() string                       { return c.DBDb }
func (c *Config) GetDBUser() string                     { return c.DBUser }
func (c *Config) GetDBPass() string                     { return c.DBPass }
func (c *Config) GetEmailProvider() string              { return c.EmailProvider }
func (c *Config) GetEmailAPIKey() string                { return c.EmailAPIKey }
func (c *Config) GetEmailSender() string                { return c.EmailSender }
func (c *Config) GetLeadNotifyTo() string               { return c.LeadNotifyTo }

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("Invalid boolean for %s=%q, using %v", key, v, fallback)
	}
	return fallback
}

func getmillis(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
		log.Printf("Invalid millisecond value for %s=%q, using %d", key, v, fallback)
	}
	return time.Duration(fallback) * time.Millisecond
}

func getduration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		log.Printf("Invalid duration for %s=%q, using %s", key, v, fallback)
	}
	return fallback
}
