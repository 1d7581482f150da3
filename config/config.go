package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	// Reminder defaults: one run per day at 09:00, linear backoff base 5s,
	// three attempts per notification.
	defaultReminderCronSpec     = "0 9 * * *"
	defaultReminderRunTimeout   = 30 * time.Minute
	defaultOrgConcurrency       = 4
	defaultMaxRetries           = 3
	defaultRetryBaseDelay       = 5 * time.Second
	defaultStalePendingAfter    = 6 * time.Hour
	defaultPreferredSMSProvider = "sns"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Admin string `json:"admin" yaml:"admin"`
	} `json:"secretKey" yaml:"secretKey"`

	// Reminder configuration for the scheduled payment-reminder run
	Reminder *ReminderConfig `json:"reminder" yaml:"reminder"`

	// Providers configuration for outbound message delivery
	Providers *ProvidersConfig `json:"providers" yaml:"providers"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// ReminderConfig defines configuration for the reminder scheduler and executor
type ReminderConfig struct {
	// Cron expression for the daily batch run (robfig/cron format)
	CronSpec string `json:"cronSpec" yaml:"cronSpec"`

	// Upper bound on one full run across all organizations
	RunTimeout time.Duration `json:"runTimeout" yaml:"runTimeout"`

	// Number of organizations processed concurrently
	OrgConcurrency int `json:"orgConcurrency" yaml:"orgConcurrency"`

	// Maximum provider send attempts per notification
	MaxRetries int `json:"maxRetries" yaml:"maxRetries"`

	// Base delay for the linear retry backoff (delay = base * retryCount)
	RetryBaseDelay time.Duration `json:"retryBaseDelay" yaml:"retryBaseDelay"`

	// PENDING notifications older than this are swept and re-dispatched
	StalePendingAfter time.Duration `json:"stalePendingAfter" yaml:"stalePendingAfter"`
}

// ProvidersConfig defines the configured delivery providers
type ProvidersConfig struct {
	// Name of the SMS provider tried first ("sns" by default)
	PreferredSMS string `json:"preferredSms" yaml:"preferredSms"`

	SNS      *SNSConfig      `json:"sns" yaml:"sns"`
	Twilio   *TwilioConfig   `json:"twilio" yaml:"twilio"`
	WhatsApp *WhatsAppConfig `json:"whatsapp" yaml:"whatsapp"`
}

// SNSConfig defines AWS SNS SMS delivery configuration
type SNSConfig struct {
	Region   string `json:"region" yaml:"region"`
	SenderID string `json:"senderId" yaml:"senderId"`
}

// TwilioConfig defines Twilio SMS delivery configuration
type TwilioConfig struct {
	AccountSID string `json:"accountSid" yaml:"accountSid"`
	AuthToken  string `json:"authToken" yaml:"authToken"`
	FromNumber string `json:"fromNumber" yaml:"fromNumber"`
}

// WhatsAppConfig defines WhatsApp Cloud API delivery configuration
type WhatsAppConfig struct {
	BaseURL       string `json:"baseUrl" yaml:"baseUrl"`
	AccessToken   string `json:"accessToken" yaml:"accessToken"`
	PhoneNumberID string `json:"phoneNumberId" yaml:"phoneNumberId"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	applyReminderDefaults(cfg)

	return cfg, nil
}

func applyReminderDefaults(cfg *Config) {
	if cfg.Reminder == nil {
		cfg.Reminder = &ReminderConfig{}
	}
	if cfg.Reminder.CronSpec == "" {
		cfg.Reminder.CronSpec = defaultReminderCronSpec
	}
	if cfg.Reminder.RunTimeout <= 0 {
		cfg.Reminder.RunTimeout = defaultReminderRunTimeout
	}
	if cfg.Reminder.OrgConcurrency <= 0 {
		cfg.Reminder.OrgConcurrency = defaultOrgConcurrency
	}
	if cfg.Reminder.MaxRetries <= 0 {
		cfg.Reminder.MaxRetries = defaultMaxRetries
	}
	if cfg.Reminder.RetryBaseDelay <= 0 {
		cfg.Reminder.RetryBaseDelay = defaultRetryBaseDelay
	}
	if cfg.Reminder.StalePendingAfter <= 0 {
		cfg.Reminder.StalePendingAfter = defaultStalePendingAfter
	}
	if cfg.Providers != nil && cfg.Providers.PreferredSMS == "" {
		cfg.Providers.PreferredSMS = defaultPreferredSMSProvider
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
