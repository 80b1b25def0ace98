package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewSeverity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Severity
		wantErr bool
	}{
		{"warning", "warning", SevWarning, false},
		{"error", "error", SevError, false},
		{"uppercase", "ERROR", SevError, false},
		{"whitespace", "  warning  ", SevWarning, false},
		{"empty", "", SevUnknown, false},
		{"invalid", "fatal", Severity{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sev, err := NewSeverity(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.True(t, sev.Equals(tt.want))
			}
		})
	}
}

func Test_Severity_IsError(t *testing.T) {
	assert.True(t, SevError.IsError())
	assert.False(t, SevWarning.IsError())
	assert.False(t, SevUnknown.IsError())
}

func Test_Severity_MarshalJSON(t *testing.T) {
	data, err := SevWarning.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"warning"`, string(data))
}
