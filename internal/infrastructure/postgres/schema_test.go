package postgres

import (
	"strings"
	"testing"
)

func TestSchemaDDLIsIdempotent(t *testing.T) {
	for _, stmt := range strings.Split(schemaDDL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if !strings.Contains(stmt, "IF NOT EXISTS") {
			t.Errorf("statement lacks IF NOT EXISTS:\n%s", stmt)
		}
	}
}

func TestSchemaDDLIsNonDestructive(t *testing.T) {
	upper := strings.ToUpper(schemaDDL)
	for _, forbidden := range []string{"DROP ", "ALTER ", "TRUNCATE "} {
		if strings.Contains(upper, forbidden) {
			t.Errorf("schema DDL contains destructive keyword %q", strings.TrimSpace(forbidden))
		}
	}
}

func TestSchemaDDLConstraints(t *testing.T) {
	checks := []string{
		"UNIQUE (property_id, user_id)",
		"liked BOOLEAN NOT NULL DEFAULT TRUE",
		"REFERENCES properties(id) ON DELETE CASCADE",
		"REFERENCES users(id) ON DELETE CASCADE",
		"username TEXT UNIQUE NOT NULL",
		"message TEXT NOT NULL",
	}
	for _, want := range checks {
		if !strings.Contains(schemaDDL, want) {
			t.Errorf("schema DDL missing %q", want)
		}
	}
}
