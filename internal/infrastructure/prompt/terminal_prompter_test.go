package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCharID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "BOARD_REV_A"},
		{input: "_x1"},
		{input: "", wantErr: true},
		{input: "1BOARD", wantErr: true},
		{input: "BOARD-A", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			err := ValidateCharID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewTerminalPrompter(t *testing.T) {
	t.Parallel()

	p := NewTerminalPrompter()

	assert.NotNil(t, p)
}
