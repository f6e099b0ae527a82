package config

import (
	"log"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	RemoteEndpoint  string
	RemoteAccessKey string
	AdminEmail      string
	JWTSecret       string
	ServerPort      string
	FallbackDBPath  string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		RemoteEndpoint:  getEnv("REMOTE_ENDPOINT", ""),
		RemoteAccessKey: getEnv("REMOTE_ACCESS_KEY", ""),
		AdminEmail:      getEnv("ADMIN_EMAIL", "admin@zenyoga.com"),
		JWTSecret:       getEnv("JWT_SECRET", "secret"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FallbackDBPath:  getEnv("FALLBACK_DB_PATH", "data/zenyoga.db"),
	}, nil
}

// RemoteConfigured reports whether both remote store credentials are present.
// Either one missing means the portal runs against the local fallback store.
func (c *Config) RemoteConfigured() bool {
	return c.RemoteEndpoint != "" && c.RemoteAccessKey != ""
}

// RemoteDSN builds the connection URL for the remote store. The endpoint
// carries user, host, port and database name; the access key is injected
// as the credential.
func (c *Config) RemoteDSN() (string, error) {
	u, err := url.Parse(c.RemoteEndpoint)
	if err != nil {
		return "", err
	}
	user := ""
	if u.User != nil {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, c.RemoteAccessKey)
	return u.String(), nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
