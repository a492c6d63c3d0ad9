package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "default tab", cfg: Config{TabID: 1}, wantErr: false},
		{name: "higher tab", cfg: Config{TabID: 7}, wantErr: false},
		{name: "zero tab", cfg: Config{TabID: 0}, wantErr: true},
		{name: "negative tab", cfg: Config{TabID: -2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{Key: "abc"}.WithDefaults()
	assert.Equal(t, DefaultTabID, cfg.TabID)

	cfg = Config{TabID: 3}.WithDefaults()
	assert.Equal(t, 3, cfg.TabID)
}

func TestConfig_EditorURL(t *testing.T) {
	cfg := Config{Key: "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"}
	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit",
		cfg.EditorURL())

	assert.Empty(t, Config{}.EditorURL())
	assert.Empty(t, Config{Key: "   "}.EditorURL())
}
