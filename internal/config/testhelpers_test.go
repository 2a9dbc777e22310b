package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func mustYAML(t *testing.T, cfg CoinsConfig) []byte {
	t.Helper()
	b, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}
