package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
database:
  driver: postgres
  host: db.internal
  port: 5432
  user: telelog
  password: secret
  name: telelog
minio:
  endpoint: minio.internal:9000
  accessKey: ak
  secretKey: sk
  bucketName: logs
  region: us-east-1
llm:
  baseURL: http://llm.internal:8080/v1
  model: mistral-7b-v0.1
upload:
  maxSizeMB: 100
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "logs", cfg.Minio.BucketName)
	assert.Equal(t, "mistral-7b-v0.1", cfg.LLM.Model)
	assert.Equal(t, int64(100<<20), cfg.MaxUploadBytes())
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
  port: 3306
  user: root
  password: ""
  name: telelog
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, int64(50<<20), cfg.MaxUploadBytes())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	assert.Error(t, err)
}

func TestDSNHelpers(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db
  port: 3306
  user: u
  password: p
  name: telelog
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "u:p@tcp(db:3306)/telelog?parseTime=true&charset=utf8mb4&loc=UTC", cfg.MySQLDSN())
	assert.Equal(t, "host=db port=3306 user=u password=p dbname=telelog sslmode=disable", cfg.PostgresDSN())
}
