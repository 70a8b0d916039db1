package pgsql

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var migrationsDir = filepath.Join("..", "..", "..", "..", "migrations")

func readMigration(t *testing.T, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(migrationsDir, name))
	require.NoError(t, err)
	return string(content)
}

// Invoices must disappear with their company so the inner-join detail reader
// never meets an orphan.
func TestInvoicesMigration_CascadesOnCompanyDelete(t *testing.T) {
	up := readMigration(t, "000002_create_invoices.up.sql")

	fk := regexp.MustCompile(`(?i)comp_code\s+TEXT\s+NOT\s+NULL\s+REFERENCES\s+companies\s*\(\s*code\s*\)\s+ON\s+DELETE\s+CASCADE`)
	assert.Regexp(t, fk, up)
	assert.Contains(t, up, "CONSTRAINT invoices_paid_date_check CHECK (paid = (paid_date IS NOT NULL))")
	assert.Contains(t, up, "NUMERIC(12, 2)")
}

func TestCompaniesMigration_NameConstraintMatchesRepository(t *testing.T) {
	up := readMigration(t, "000001_create_companies.up.sql")
	assert.Contains(t, up, "CONSTRAINT "+companyNameUniqueKey+" UNIQUE (name)")
}

// Migrations run on every boot, so they carry schema only.
func TestMigrations_HoldNoSampleRows(t *testing.T) {
	entries, err := os.ReadDir(migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".up.sql") {
			continue
		}
		content := strings.ToUpper(readMigration(t, e.Name()))
		assert.NotContains(t, content, "INSERT INTO", e.Name())
	}
}
