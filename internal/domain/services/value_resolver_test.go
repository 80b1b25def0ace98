package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reglet-dev/togglegen/internal/domain/entities"
)

func Test_ResolveValue(t *testing.T) {
	t.Parallel()

	opt := option("FOO", "OPTION", "MACRO_UINT8", "5")

	tests := []struct {
		name    string
		profile entities.ProfileReader
		want    string
	}{
		{name: "no profile", profile: nil, want: "5"},
		{name: "no override", profile: profile("P", false), want: "5"},
		{name: "override", profile: profile("Q", true, entities.Override{Option: "FOO", Value: "7"}), want: "7"},
		{name: "empty override", profile: profile("R", false, entities.Override{Option: "FOO", Value: ""}), want: "5"},
		{name: "other option", profile: profile("S", false, entities.Override{Option: "BAR", Value: "1"}), want: "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ResolveValue(opt, tt.profile))
		})
	}
}
