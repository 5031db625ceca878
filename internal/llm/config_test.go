package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.False(t, cfg.LogCalls)

	assert.Contains(t, cfg.Tasks, TaskFactorAnalysis)
	assert.Contains(t, cfg.Tasks, TaskScheduleGen)
	assert.Equal(t, 60000, cfg.Tasks[TaskScheduleGen].TimeoutMs)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DAYWEAVER_LLM_ENDPOINT", "http://remote:11434")
	t.Setenv("DAYWEAVER_LLM_MODEL", "mistral")
	t.Setenv("DAYWEAVER_LLM_TIMEOUT_MS", "5000")
	t.Setenv("DAYWEAVER_LLM_MAX_RETRIES", "2")
	t.Setenv("DAYWEAVER_LLM_LOG_CALLS", "true")
	t.Setenv("DAYWEAVER_LLM_SCHEDULE_TIMEOUT_MS", "90000")

	cfg := LoadConfig()

	assert.Equal(t, "http://remote:11434", cfg.Endpoint)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, 90000, cfg.Tasks[TaskScheduleGen].TimeoutMs)
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("DAYWEAVER_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("DAYWEAVER_LLM_MAX_RETRIES", "-1")
	t.Setenv("DAYWEAVER_LLM_FACTOR_TIMEOUT_MS", "0")

	cfg := LoadConfig()

	assert.Equal(t, DefaultConfig().TimeoutMs, cfg.TimeoutMs)
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, 30000, cfg.Tasks[TaskFactorAnalysis].TimeoutMs)
}

func TestTaskTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 10000

	assert.Equal(t, 60000, cfg.TaskTimeout(TaskScheduleGen))

	tc := cfg.Tasks[TaskScheduleGen]
	tc.TimeoutMs = 0
	cfg.Tasks[TaskScheduleGen] = tc
	assert.Equal(t, 10000, cfg.TaskTimeout(TaskScheduleGen))

	assert.Equal(t, 10000, cfg.TaskTimeout(TaskType("unknown")))
}
