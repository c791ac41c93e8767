package config

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	log := NewLogger(&bytes.Buffer{}, logrus.DebugLevel)

	t.Run("Empty values use defaults", func(t *testing.T) {
		for _, key := range []string{"LOG_LEVEL", "MAX_STEP_SIZES", "HOST_IP", "REST_PORT", "GIN_MODE", "JWT_SECRET", "JWT_ISSUER"} {
			t.Setenv(key, "")
		}
		cfg := Load(log)
		assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
		assert.Equal(t, 0, cfg.MaxStepSizes)
		assert.Equal(t, 8080, cfg.RESTPort)
		assert.Equal(t, "", cfg.JWTSecret)
	})

	t.Run("Reads the environment", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("MAX_STEP_SIZES", "16")
		t.Setenv("REST_PORT", "9090")
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("JWT_ISSUER", "tester")

		cfg := Load(log)
		assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
		assert.Equal(t, 16, cfg.MaxStepSizes)
		assert.Equal(t, 9090, cfg.RESTPort)
		assert.Equal(t, "s3cret", cfg.JWTSecret)
		assert.Equal(t, "tester", cfg.JWTIssuer)
	})

	t.Run("Malformed values fall back", func(t *testing.T) {
		var buf bytes.Buffer
		t.Setenv("MAX_STEP_SIZES", "many")
		t.Setenv("LOG_LEVEL", "loud")

		cfg := Load(NewLogger(&buf, logrus.DebugLevel))
		assert.Equal(t, 0, cfg.MaxStepSizes)
		assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
		assert.Contains(t, buf.String(), "MAX_STEP_SIZES")
	})
}
