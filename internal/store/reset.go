package store

import (
	"os"
	"path/filepath"
	"strings"

	"demo-api/internal/migrate"
)

// Reset drops and recreates the whole schema, then replays the bundled
// seed script. The replay is destructive and non-transactional: the
// first failing statement aborts the remainder with the schema already
// recreated.
func (s *Store) Reset() error {
	if err := migrate.DropAll(s.db); err != nil {
		return err
	}
	if err := migrate.AutoMigrateAll(s.db); err != nil {
		return err
	}

	script, err := os.ReadFile(filepath.Join(s.sqlDir, "dummy_data.sql"))
	if err != nil {
		return err
	}
	for _, stmt := range splitStatements(string(script)) {
		if err := s.db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// splitStatements breaks a seed script on literal semicolons. The split
// is naive on purpose: seed content must not contain a ';' inside a
// string literal.
func splitStatements(script string) []string {
	var out []string
	for _, stmt := range strings.Split(script, ";") {
		if s := strings.TrimSpace(stmt); s != "" {
			out = append(out, s)
		}
	}
	return out
}
