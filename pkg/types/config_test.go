package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{name: "zero config is valid", config: Config{}},
		{name: "data dir only", config: Config{DataDir: "/tmp/lantern"}},
		{name: "explicit TTLs", config: Config{CacheTTLSeconds: 300, SearchTTLSeconds: 60, AnalyticsTTLSeconds: 600}},
		{name: "negative cache TTL", config: Config{CacheTTLSeconds: -1}, wantErr: ErrTTLNegative},
		{name: "negative analytics TTL", config: Config{AnalyticsTTLSeconds: -10}, wantErr: ErrTTLNegative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigTTLDefaults(t *testing.T) {
	var c Config
	assert.Equal(t, 5*time.Minute, c.CacheTTL())
	assert.Equal(t, 1*time.Minute, c.SearchTTL())
	assert.Equal(t, 10*time.Minute, c.AnalyticsTTL())

	c = Config{CacheTTLSeconds: 120, SearchTTLSeconds: 30, AnalyticsTTLSeconds: 900}
	assert.Equal(t, 2*time.Minute, c.CacheTTL())
	assert.Equal(t, 30*time.Second, c.SearchTTL())
	assert.Equal(t, 15*time.Minute, c.AnalyticsTTL())
}
