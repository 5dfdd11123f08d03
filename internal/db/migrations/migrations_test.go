package migrations

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestParseMigrationFilename(t *testing.T) {
	version, name, err := parseMigrationFilename("0007_add_shows.up.sql")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if version != 7 || name != "add_shows" {
		t.Fatalf("got %d %q", version, name)
	}

	if _, _, err := parseMigrationFilename("noversion.up.sql"); err == nil {
		t.Fatalf("expected error for missing separator")
	}
	if _, _, err := parseMigrationFilename("abc_name.up.sql"); err == nil {
		t.Fatalf("expected error for non-numeric version")
	}
}

func TestEmbeddedMigrationsLoad(t *testing.T) {
	migrations, err := loadMigrations(files)
	if err != nil {
		t.Fatalf("loadMigrations: %v", err)
	}
	if len(migrations) == 0 {
		t.Fatalf("expected embedded migrations")
	}
	if migrations[0].Version != 1 || migrations[0].Down == "" {
		t.Fatalf("unexpected first migration %+v", migrations[0])
	}
}

func TestShowsCascadeWithVenueAndArtist(t *testing.T) {
	migrations, err := loadMigrations(files)
	if err != nil {
		t.Fatalf("loadMigrations: %v", err)
	}

	var schema strings.Builder
	for _, m := range migrations {
		schema.WriteString(m.Up)
		schema.WriteString("\n")
	}

	shows := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS shows \((.*?)\n\);`).FindStringSubmatch(schema.String())
	if shows == nil {
		t.Fatalf("shows table not found in migrations")
	}
	for _, col := range []string{"artist_id", "venue_id"} {
		fk := regexp.MustCompile(col + `\s+INTEGER NOT NULL REFERENCES \w+ \(id\) ON DELETE CASCADE`)
		if !fk.MatchString(shows[1]) {
			t.Fatalf("shows.%s must cascade on delete:\n%s", col, shows[1])
		}
	}
}

func TestRunSkipsAppliedAndAppliesPending(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/0001_first.up.sql":  {Data: []byte("CREATE TABLE a (id INT)")},
		"sql/0002_second.up.sql": {Data: []byte("CREATE TABLE b (id INT)")},
	}

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE b \(id INT\)`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs(2, "second").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := run(context.Background(), db, fsys); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
