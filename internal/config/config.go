package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errInvalidEnvVar error = errors.New("invalid environment variable")

const (
	apiPortEnvKey           = "API_PORT"
	dbConnEnvKey            = "DB_CONNECTION_URL"
	jwtSecretEnvKey         = "JWT_SECRET"
	networkClientsEnvKey    = "NETWORK_CLIENTS"
	blockPollIntervalEnvKey = "BLOCK_POLL_INTERVAL"
	resubmitEnabledEnvKey   = "RESUBMIT_ENABLED"
	logLevelEnvKey          = "LOG_LEVEL"
	redisAddrEnvKey         = "REDIS_ADDR"
	lockTTLEnvKey           = "LOCK_TTL"
	kafkaBrokersEnvKey      = "KAFKA_BROKERS"
	kafkaTopicEnvKey        = "KAFKA_TOPIC"
	otlpEndpointEnvKey      = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

const (
	defaultBlockPollInterval = 12 * time.Second
	defaultLockTTL           = 30 * time.Second
	defaultKafkaTopic        = "pending-transactions"
	defaultLogLevel          = "info"
)

type NetworkClient struct {
	ID  string
	URL string
}

type App struct {
	Port              string
	DBConnectionURL   string
	JWTSecret         string
	NetworkClients    []NetworkClient
	BlockPollInterval time.Duration
	ResubmitEnabled   bool
	LogLevel          string
	RedisAddr         string
	LockTTL           time.Duration
	KafkaBrokers      []string
	KafkaTopic        string
	OTLPEndpoint      string
}

// NewApp reads the configuration from the environment. Values from a .env
// file in the working directory are loaded first and never override variables
// that are already set.
func NewApp() (App, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return App{}, fmt.Errorf("load .env file: %w", err)
	}

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	rawClients, ok := os.LookupEnv(networkClientsEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, networkClientsEnvKey)
	}
	clients, err := parseNetworkClients(rawClients)
	if err != nil {
		return App{}, err
	}

	pollInterval, err := durationEnv(blockPollIntervalEnvKey, defaultBlockPollInterval)
	if err != nil {
		return App{}, err
	}

	lockTTL, err := durationEnv(lockTTLEnvKey, defaultLockTTL)
	if err != nil {
		return App{}, err
	}

	resubmit := true
	if v, ok := os.LookupEnv(resubmitEnabledEnvKey); ok {
		resubmit, err = strconv.ParseBool(v)
		if err != nil {
			return App{}, fmt.Errorf("%w: %s: %w", errInvalidEnvVar, resubmitEnabledEnvKey, err)
		}
	}

	return App{
		Port:              port,
		DBConnectionURL:   dbConn,
		JWTSecret:         jwtSecret,
		NetworkClients:    clients,
		BlockPollInterval: pollInterval,
		ResubmitEnabled:   resubmit,
		LogLevel:          stringEnv(logLevelEnvKey, defaultLogLevel),
		RedisAddr:         stringEnv(redisAddrEnvKey, ""),
		LockTTL:           lockTTL,
		KafkaBrokers:      splitList(stringEnv(kafkaBrokersEnvKey, "")),
		KafkaTopic:        stringEnv(kafkaTopicEnvKey, defaultKafkaTopic),
		OTLPEndpoint:      stringEnv(otlpEndpointEnvKey, ""),
	}, nil
}

// parseNetworkClients parses "id=url,id=url".
func parseNetworkClients(raw string) ([]NetworkClient, error) {
	entries := splitList(raw)
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", errInvalidEnvVar, networkClientsEnvKey)
	}

	seen := make(map[string]struct{}, len(entries))
	clients := make([]NetworkClient, 0, len(entries))
	for _, entry := range entries {
		id, url, found := strings.Cut(entry, "=")
		id, url = strings.TrimSpace(id), strings.TrimSpace(url)
		if !found || id == "" || url == "" {
			return nil, fmt.Errorf("%w: %s entry %q, expected id=url", errInvalidEnvVar, networkClientsEnvKey, entry)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %s has duplicate id %q", errInvalidEnvVar, networkClientsEnvKey, id)
		}
		seen[id] = struct{}{}
		clients = append(clients, NetworkClient{ID: id, URL: url})
	}
	return clients, nil
}

func stringEnv(key, fallback string) string {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	return strings.TrimSpace(v)
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errInvalidEnvVar, key, v)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
