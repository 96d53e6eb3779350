package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultAPIBase     = "https://api.imgur.com/3"
	defaultSiteBase    = "https://imgur.com"
	defaultAlbumLayout = "blog"

	credentialFile = "client_id"
	journalFile    = "history.log"
)

// Config holds application configuration. It is constructed once at startup
// and passed explicitly into the uploader and journal; there is no ambient
// global lookup.
type Config struct {
	// APIBase is the API root all endpoints are built from.
	APIBase string

	// SiteBase is the public site root used for delete and album links.
	SiteBase string

	// ClientID is the static anonymous credential sent as
	// "Authorization: Client-ID <ClientID>".
	ClientID string

	// AlbumLayout is the fixed layout submitted with album creation.
	AlbumLayout string

	// JournalPath is the append-only history log location.
	JournalPath string
}

// DefaultBaseDir returns the configuration directory, honoring
// XDG_CONFIG_HOME and falling back to ~/.config.
func DefaultBaseDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "imgup"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "imgup"), nil
}

// Load builds the configuration from baseDir. The client credential comes
// from IMGUP_CLIENT_ID or the single-line baseDir/client_id file (trailing
// whitespace trimmed, no further validation). A .env file in the working
// directory is honored, failing silently if absent.
// The baseDir parameter allows tests to use t.TempDir().
func Load(baseDir string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIBase:     getEnv("IMGUP_API_BASE", defaultAPIBase),
		SiteBase:    getEnv("IMGUP_SITE_BASE", defaultSiteBase),
		AlbumLayout: defaultAlbumLayout,
		JournalPath: filepath.Join(baseDir, journalFile),
	}

	cfg.ClientID = os.Getenv("IMGUP_CLIENT_ID")
	if cfg.ClientID == "" {
		credPath := filepath.Join(baseDir, credentialFile)
		data, err := os.ReadFile(credPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("client credential not found: put your imgur client ID in %s", credPath)
			}
			return nil, err
		}
		cfg.ClientID = strings.TrimRight(string(data), " \t\r\n")
	}

	return cfg, nil
}

// getEnv returns the environment value for key, or defaultValue when unset
// or empty.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
