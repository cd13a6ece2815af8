package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host    string `yaml:"host"`
		Port    int    `yaml:"port"`
		Env     string `yaml:"env"`
		SiteURL string `yaml:"site_url"` // public base URL used in emails and payment return URLs
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Redis struct {
		Addr     string `yaml:"addr"` // empty means in-memory session store
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Notify struct {
		AdminEmails     []string `yaml:"admin_emails"`
		SystemEmail     string   `yaml:"system_email"`
		ControlPanelURL string   `yaml:"control_panel_url"`
	} `yaml:"notify"`

	Pricing struct {
		TwelveMonth int `yaml:"twelve_month"`
		SixMonth    int `yaml:"six_month"`
	} `yaml:"pricing"`

	Stripe struct {
		SecretKey      string `yaml:"secret_key"`
		PublishableKey string `yaml:"publishable_key"`
	} `yaml:"stripe"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	// Environment mode (tests, containers): everything comes from env vars.
	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.Server.SiteURL = os.Getenv("SITE_URL")
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60

	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUser = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("FROM_EMAIL")

	if admins := strings.TrimSpace(os.Getenv("ADMIN_NOTIFY_EMAILS")); admins != "" {
		for _, addr := range strings.Split(admins, ",") {
			if addr = strings.TrimSpace(addr); addr != "" {
				cfg.Notify.AdminEmails = append(cfg.Notify.AdminEmails, addr)
			}
		}
	}
	cfg.Notify.SystemEmail = os.Getenv("SYSTEM_EMAIL")
	cfg.Notify.ControlPanelURL = os.Getenv("CONTROL_PANEL_URL")

	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Stripe.PublishableKey = os.Getenv("STRIPE_PUBLISHABLE_KEY")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

// applyDefaults fills values the file or environment may omit. The price
// table is configuration, not computed from gateway data.
func applyDefaults(cfg *Config) {
	if cfg.Pricing.TwelveMonth == 0 {
		cfg.Pricing.TwelveMonth = 400
	}
	if cfg.Pricing.SixMonth == 0 {
		cfg.Pricing.SixMonth = 300
	}
	if cfg.Server.SiteURL == "" {
		cfg.Server.SiteURL = "http://localhost:4000"
	}
	if cfg.Notify.ControlPanelURL == "" {
		cfg.Notify.ControlPanelURL = cfg.Server.SiteURL + "/admin"
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
