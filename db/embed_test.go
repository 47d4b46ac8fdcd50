package db

import (
	"io/fs"
	"strings"
	"testing"
)

func TestMigrations_MoneyColumnsAreDoublePrecision(t *testing.T) {
	cases := map[string]string{
		"1771776000_create_teams.up.sql":   "budget",
		"1771776100_create_players.up.sql": "salary",
	}

	for file, column := range cases {
		raw, err := fs.ReadFile(Migrations, MigrationsDir+"/"+file)
		if err != nil {
			t.Fatalf("read %s: %v", file, err)
		}
		sql := strings.ToUpper(string(raw))
		if strings.Contains(sql, "NUMERIC") {
			t.Fatalf("%s: %s must not use a scaled NUMERIC column", file, column)
		}
		for _, line := range strings.Split(sql, "\n") {
			fields := strings.Fields(line)
			if len(fields) > 0 && fields[0] == strings.ToUpper(column) && !strings.Contains(line, "DOUBLE PRECISION") {
				t.Fatalf("%s: expected %s DOUBLE PRECISION, got %q", file, column, strings.TrimSpace(line))
			}
		}
	}
}
