package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTTL(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{input: "30", want: 30 * time.Second},
		{input: "45s", want: 45 * time.Second},
		{input: "15m", want: 15 * time.Minute},
		{input: "24h", want: 24 * time.Hour},
		{input: "15d", want: 15 * 24 * time.Hour},
		{input: "15M", want: 15 * time.Minute},
		{input: " 5m ", want: 5 * time.Minute},
		{input: "0", want: 0},
		{input: "", wantErr: true},
		{input: "15x", wantErr: true},
		{input: "m", wantErr: true},
		{input: "-5m", wantErr: true},
		{input: "1.5h", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTTL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
