package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/locrec/internal/domain"
	"github.com/runoshun/locrec/internal/testutil"
	"github.com/runoshun/locrec/internal/usecase"
)

func TestInitConfig_Execute(t *testing.T) {
	t.Run("creates data dir config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		cfg := domain.NewDefaultConfig()

		uc := usecase.NewInitConfig(manager)
		out, err := uc.Execute(context.Background(), usecase.InitConfigInput{Config: cfg})

		require.NoError(t, err)
		assert.Equal(t, "/test/data/locrec/config.toml", out.Path)
		assert.True(t, manager.InitCalled)
		assert.Same(t, cfg, manager.InitConfig)
	})

	t.Run("returns error when config already exists", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.InitErr = domain.ErrConfigExists

		uc := usecase.NewInitConfig(manager)
		_, err := uc.Execute(context.Background(), usecase.InitConfigInput{Config: domain.NewDefaultConfig()})

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})

	t.Run("rejects nil config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		assert.ErrorIs(t, err, domain.ErrConfigNil)
		assert.False(t, manager.InitCalled)
	})
}
