package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"stampshop/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "12MB"
	defaultBaseURL            = "http://localhost:3000"
	defaultCurrency           = "aed"
	defaultAdminTokenTTL      = 24 * time.Hour
	defaultMaxUploadBytes     = 10 << 20
	defaultHTTPPort           = 8080
	defaultPickupLocation     = "Supreme Digital Business Services LLC, Inside Max Metro Station, Al Jaffiliya, Dubai, +971 56 489 9004"
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

	// App holds storefront-wide settings
	App *AppConfig `json:"app" yaml:"app"`

	// Stripe configuration for hosted checkout and webhooks
	Stripe *StripeConfig `json:"stripe" yaml:"stripe"`

	// Mailgun configuration for transactional email
	Mailgun *MailgunConfig `json:"mailgun" yaml:"mailgun"`

	// Admin configuration for the back-office login
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	// Storage configuration for uploaded trade-license documents
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// QRCode configuration for tracking QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for order event dispatch
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// AppConfig defines public storefront settings
type AppConfig struct {
	// Public URL of the storefront, used for checkout redirects and email links
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Pickup address printed on pickup order confirmations
	PickupLocation string `json:"pickupLocation" yaml:"pickupLocation"`
}

// StripeConfig defines payment processor credentials
type StripeConfig struct {
	SecretKey     string `json:"secretKey" yaml:"secretKey"`
	WebhookSecret string `json:"webhookSecret" yaml:"webhookSecret"`
	Currency      string `json:"currency" yaml:"currency"`
}

// MailgunConfig defines the mail provider account
type MailgunConfig struct {
	Domain  string `json:"domain" yaml:"domain"`
	APIKey  string `json:"apiKey" yaml:"apiKey"`
	From    string `json:"from" yaml:"from"`
	APIBase string `json:"apiBase" yaml:"apiBase"`
}

// AdminConfig defines admin authentication settings
type AdminConfig struct {
	// HMAC secret for the admin session token
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`

	// Base32 TOTP secret shared with the authenticator app
	TOTPSecret string `json:"totpSecret" yaml:"totpSecret"`

	TokenTTL time.Duration `json:"tokenTtl" yaml:"tokenTtl"`

	// Send the session cookie only over HTTPS
	SecureCookie bool `json:"secureCookie" yaml:"secureCookie"`
}

// StorageConfig defines where uploaded documents go
type StorageConfig struct {
	// gocloud bucket URL, e.g. file:///var/uploads, gs://bucket, mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Public URL prefix under which stored keys are reachable
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	MaxUploadBytes int64 `json:"maxUploadBytes" yaml:"maxUploadBytes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines how order events reach the notifier
type PubSubConfig struct {
	// Provider type: "inline", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the notifier worker (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// FileEnvVar names an explicit config file and skips the directory search.
const FileEnvVar = "STAMPSHOP_CONFIG"

// Load reads <name>.yaml from the first directory that has it, then lets
// environment variables override any key. POSTGRES_SSLMODE lands on
// postgres.sslMode because env segments are matched against the keys the
// YAML already has.
func Load[T any](name string, dirs ...string) (*T, error) {
	path, err := locate(name, dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	fromYAML := k.Raw()
	envKeys := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fromYAML), value
		},
	})
	if err := k.Load(envKeys, nil); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}

	out := new(T)
	if err := k.UnmarshalWithConf("", out, koanf.UnmarshalConf{DecoderConfig: decoderConfig(out)}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return out, nil
}

func decoderConfig(out any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		// env keys arrive lower-cased where the YAML had no matching key
		MatchName: strings.EqualFold,
	}
}

// locate honours FileEnvVar, then tries each directory relative to the
// working directory, then the working directory itself.
func locate(name string, dirs []string) (string, error) {
	if explicit := os.Getenv(FileEnvVar); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, "%s=%s", FileEnvVar, explicit)
		}

		return explicit, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", errors.WithStack(err)
	}

	candidates := make([]string, 0, len(dirs)+1)
	for _, dir := range dirs {
		candidates = append(candidates, filepath.Join(wd, dir, name+".yaml"))
	}
	candidates = append(candidates, filepath.Join(wd, name+".yaml"))

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s.yaml not found (searched %s)", name, strings.Join(candidates, ", "))
}

func New() (*Config, error) {
	cfg, err := Load[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
	}

	return cfg, nil
}

// applyDefaults fills optional sections so callers never see nil.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.App == nil {
		cfg.App = &AppConfig{}
	}
	cfg.App.BaseURL = strings.TrimRight(cfg.App.BaseURL, "/")
	if cfg.App.BaseURL == "" {
		cfg.App.BaseURL = defaultBaseURL
	}
	if cfg.App.PickupLocation == "" {
		cfg.App.PickupLocation = defaultPickupLocation
	}

	if cfg.Stripe == nil {
		cfg.Stripe = &StripeConfig{}
	}
	if cfg.Stripe.Currency == "" {
		cfg.Stripe.Currency = defaultCurrency
	}

	if cfg.Mailgun == nil {
		cfg.Mailgun = &MailgunConfig{}
	}

	if cfg.Admin == nil {
		cfg.Admin = &AdminConfig{}
	}
	if cfg.Admin.TokenTTL <= 0 {
		cfg.Admin.TokenTTL = defaultAdminTokenTTL
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.MaxUploadBytes <= 0 {
		cfg.Storage.MaxUploadBytes = defaultMaxUploadBytes
	}
	if strings.TrimSpace(cfg.Storage.PublicBaseURL) == "" {
		// the API's own document route
		port := cfg.HTTP.Port
		if port == 0 {
			port = defaultHTTPPort
		}
		cfg.Storage.PublicBaseURL = "http://localhost:" + strconv.Itoa(port) + constants.DocumentsPath
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
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

// replicasFromEnv reads read replicas numbered from zero, e.g.
// POSTGRES_REPLICAS_0_HOST and POSTGRES_REPLICAS_0_PORT. The first index
// missing a host or port ends the list.
func replicasFromEnv(getenv func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		field := func(name string) string {
			return getenv("POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_" + name)
		}

		host, port := field("HOST"), field("PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: field("USERNAME"),
			Password: field("PASSWORD"),
		})
	}
}
