package database

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-control/pkg/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "app",
		Password: "secret",
		Name:     "student_control",
		SSLMode:  "disable",
	})

	assert.Equal(t, "host=db port=5433 user=app password=secret dbname=student_control sslmode=disable", dsn)
}

func TestMigrationsAreEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrations, migrationsDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "00001_create_schema.sql", entries[0].Name())
	assert.Equal(t, "00002_seed_courses.sql", entries[1].Name())
}
