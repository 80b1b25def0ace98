package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/togglegen/internal/application/dto"
	"github.com/reglet-dev/togglegen/internal/infrastructure/container"
)

func TestStarterDocument_Validates(t *testing.T) {
	t.Parallel()

	data, err := yaml.MarshalWithOptions(starterDocument(InitOptions{
		CharID:  "BOARD_REV_A",
		Brief:   "First board.",
		Testing: true,
	}), yaml.IndentSequence(true))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "toggles.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	c, err := container.New(container.Options{})
	require.NoError(t, err)

	resp, err := c.ValidateUseCase().Execute(context.Background(), dto.ValidateRequest{
		Inputs:   []string{path},
		Metadata: dto.NewRequestMetadata(),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Diagnostics, "starter document must be clean")
	assert.Equal(t, 2, resp.Options)
	require.Len(t, resp.Profiles, 1)
	assert.Equal(t, "BOARD_REV_A", resp.Profiles[0].ID)
	assert.True(t, resp.Profiles[0].Testing)
}

func TestStarterDocument_KeyOrder(t *testing.T) {
	t.Parallel()

	doc := starterDocument(InitOptions{CharID: "X"})

	keys := make([]any, 0, len(doc))
	for _, item := range doc {
		keys = append(keys, item.Key)
	}
	assert.Equal(t, []any{"generator", "options", "char_ids"}, keys)
}
