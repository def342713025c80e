package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pablonunez10/genex-store-inventory-front/internal/config"
	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
)

// The session file is the only state this client persists: the bearer
// token plus the user it belongs to, written by login and removed by
// logout.

func sessionPath(cfg config.Config) string {
	if cfg.SessionFile != "" {
		return cfg.SessionFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "genex-session.json"
	}
	return filepath.Join(home, ".config", "genex", "session.json")
}

func loadSession(cfg config.Config) (domain.Session, error) {
	b, err := os.ReadFile(sessionPath(cfg))
	if err != nil {
		return domain.Session{}, err
	}

	var session domain.Session
	if err := json.Unmarshal(b, &session); err != nil {
		return domain.Session{}, fmt.Errorf("parse session file: %w", err)
	}
	return session, nil
}

func saveSession(cfg config.Config, session domain.Session) error {
	path := sessionPath(cfg)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	b, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

func clearSession(cfg config.Config) error {
	err := os.Remove(sessionPath(cfg))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
