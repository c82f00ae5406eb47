package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditlens/auditlens/schema"
)

func defaultRawInput(t *testing.T) *ConfigRawInput {
	t.Helper()
	return &ConfigRawInput{
		RepoPathStr:   t.TempDir(),
		Limit:         DefaultResultLimit,
		Workers:       DefaultWorkers,
		Output:        string(schema.TextOut),
		Color:         "yes",
		ReportBackend: string(schema.SQLiteBackend),
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	input := defaultRawInput(t)

	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.ReportBackend)
	assert.Equal(t, schema.DefaultAPIVersion, cfg.APIVersion)
	assert.Equal(t, DefaultAugmentTimeout, cfg.AugmentTimeout)
	assert.True(t, cfg.UseColors)
	assert.False(t, cfg.AugmentEnabled())
	assert.Contains(t, cfg.Excludes, "target/")
}

func TestProcessAndValidateLimits(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
		errMsg string
	}{
		{
			name:   "zero limit",
			mutate: func(in *ConfigRawInput) { in.Limit = 0 },
			errMsg: "limit must be greater than 0",
		},
		{
			name:   "limit above max",
			mutate: func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 },
			errMsg: "limit must be greater than 0",
		},
		{
			name:   "zero workers",
			mutate: func(in *ConfigRawInput) { in.Workers = 0 },
			errMsg: "workers must be greater than 0",
		},
		{
			name:   "bad output mode",
			mutate: func(in *ConfigRawInput) { in.Output = "xml" },
			errMsg: "invalid output format",
		},
		{
			name:   "bad report backend",
			mutate: func(in *ConfigRawInput) { in.ReportBackend = "oracle" },
			errMsg: "invalid report backend",
		},
		{
			name:   "bad color flag",
			mutate: func(in *ConfigRawInput) { in.Color = "maybe" },
			errMsg: "invalid --color value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			input := defaultRawInput(t)
			tt.mutate(input)
			err := ProcessAndValidate(cfg, input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestProcessAndValidateAugment(t *testing.T) {
	t.Run("url without workspace", func(t *testing.T) {
		cfg := &Config{}
		input := defaultRawInput(t)
		input.AugmentURL = "https://augment.example.com"
		err := ProcessAndValidate(cfg, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--augment-workspace")
	})

	t.Run("full augment config", func(t *testing.T) {
		cfg := &Config{}
		input := defaultRawInput(t)
		input.AugmentURL = "https://augment.example.com"
		input.AugmentWorkspace = "ws-123"
		input.AugmentFiles = "src/lib.rs, src/state.rs"
		input.AugmentTimeout = "30s"
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.True(t, cfg.AugmentEnabled())
		assert.Equal(t, []string{"src/lib.rs", "src/state.rs"}, cfg.AugmentFiles)
		assert.Equal(t, 30*time.Second, cfg.AugmentTimeout)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		cfg := &Config{}
		input := defaultRawInput(t)
		input.AugmentTimeout = "soon"
		err := ProcessAndValidate(cfg, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--augment-timeout")
	})
}

func TestProcessAndValidateIncludeExclude(t *testing.T) {
	cfg := &Config{}
	input := defaultRawInput(t)
	input.Include = "programs/amm, programs/vault"
	input.Exclude = "fixtures/,  "

	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, []string{"programs/amm", "programs/vault"}, cfg.AllowList)
	assert.Contains(t, cfg.Excludes, "fixtures/")
	assert.Contains(t, cfg.Excludes, "target/")
}

func TestResolveRepoPath(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		cfg := &Config{}
		input := defaultRawInput(t)
		input.RepoPathStr = "/definitely/not/a/real/path"
		assert.Error(t, ProcessAndValidate(cfg, input))
	})

	t.Run("file instead of directory", func(t *testing.T) {
		cfg := &Config{}
		input := defaultRawInput(t)
		input.RepoPathStr = "configs.go"
		assert.Error(t, ProcessAndValidate(cfg, input))
	})
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))

	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@localhost"))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(localhost:3306)/auditlens"))

	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost"))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost dbname=auditlens"))
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{
		AllowList:    []string{"programs/"},
		Excludes:     []string{"target/"},
		AugmentFiles: []string{"src/lib.rs"},
	}
	clone := cfg.Clone()
	clone.AllowList[0] = "changed"
	clone.Excludes[0] = "changed"
	clone.AugmentFiles[0] = "changed"

	assert.Equal(t, "programs/", cfg.AllowList[0])
	assert.Equal(t, "target/", cfg.Excludes[0])
	assert.Equal(t, "src/lib.rs", cfg.AugmentFiles[0])
}
