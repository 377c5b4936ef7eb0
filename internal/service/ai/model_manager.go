package ai

import (
	"context"
	stderrors "errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kapu/namevibes-bot/internal/constants"
	"github.com/kapu/namevibes-bot/internal/metrics"
	"github.com/kapu/namevibes-bot/internal/util"
	"github.com/kapu/namevibes-bot/pkg/errors"
	"go.uber.org/zap"
)

// ErrCircuitOpen is returned while the breaker rejects calls.
var ErrCircuitOpen = stderrors.New("ai providers temporarily unavailable")

var (
	statusCodePattern = regexp.MustCompile(`\b(5\d{2})\b`)
	geminiCodePattern = regexp.MustCompile(`"code":(\d{3})`)
	openaiCodePattern = regexp.MustCompile(`^(\d{3})\s`)
)

// GenerateMetadata describes which provider answered.
type GenerateMetadata struct {
	Provider     string
	Model        string
	UsedFallback bool
}

// ModelManager sends prompts to the primary provider and falls back to the
// secondary one. Service failures on both trip the circuit breaker.
type ModelManager struct {
	primary        TextProvider
	fallback       TextProvider
	circuitBreaker *util.CircuitBreaker
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

type ModelManagerConfig struct {
	GeminiAPIKey   string
	GeminiModel    string
	OpenAIAPIKey   string
	OpenAIModel    string
	EnableFallback bool
}

func NewModelManager(ctx context.Context, cfg ModelManagerConfig, m *metrics.Metrics, logger *zap.Logger) (*ModelManager, error) {
	gemini, err := NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	if err != nil {
		return nil, err
	}

	var fallback TextProvider
	if cfg.EnableFallback {
		if openaiProvider := NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel, logger); openaiProvider != nil {
			fallback = openaiProvider
			logger.Info("OpenAI fallback enabled", zap.String("model", cfg.OpenAIModel))
		} else {
			logger.Info("OpenAI fallback disabled (no API key)")
		}
	}

	return NewModelManagerWithProviders(gemini, fallback, m, logger), nil
}

// NewModelManagerWithProviders wires explicit providers; fallback may be nil.
func NewModelManagerWithProviders(primary, fallback TextProvider, m *metrics.Metrics, logger *zap.Logger) *ModelManager {
	logger = util.OrNop(logger)
	return &ModelManager{
		primary:  primary,
		fallback: fallback,
		circuitBreaker: util.NewCircuitBreaker("ai",
			constants.CircuitBreakerConfig.FailureThreshold,
			constants.CircuitBreakerConfig.ResetTimeout,
			logger,
		),
		metrics: m,
		logger:  logger,
	}
}

func (mm *ModelManager) Generate(ctx context.Context, prompt Prompt) (string, *GenerateMetadata, error) {
	if !mm.circuitBreaker.Allow() {
		mm.logger.Warn("AI call rejected (circuit open)", zap.String("prompt", prompt.Name))
		mm.metrics.ObserveNarrative("none", "circuit_open")
		return "", nil, errors.NewServiceError("AI service unavailable", "ai", "generate", ErrCircuitOpen)
	}

	result, primaryErr := mm.primary.Generate(ctx, prompt)
	if primaryErr == nil {
		mm.circuitBreaker.RecordSuccess()
		mm.metrics.ObserveNarrative(mm.primary.Name(), "ok")
		return mm.finish(result, &GenerateMetadata{Provider: mm.primary.Name(), Model: result.Model})
	}
	mm.metrics.ObserveNarrative(mm.primary.Name(), "error")

	if mm.fallback != nil {
		fallbackResult, fallbackErr := mm.fallback.Generate(ctx, prompt)
		if fallbackErr == nil {
			mm.circuitBreaker.RecordSuccess()
			mm.metrics.ObserveNarrative(mm.fallback.Name(), "ok")
			return mm.finish(fallbackResult, &GenerateMetadata{
				Provider:     mm.fallback.Name(),
				Model:        fallbackResult.Model,
				UsedFallback: true,
			})
		}
		mm.metrics.ObserveNarrative(mm.fallback.Name(), "error")

		mm.recordFailure(primaryErr)
		mm.recordFailure(fallbackErr)
		return "", nil, errors.NewServiceError("AI generation failed", "ai", "generate", fallbackErr)
	}

	mm.recordFailure(primaryErr)
	return "", nil, errors.NewServiceError("AI generation failed", "ai", "generate", primaryErr)
}

func (mm *ModelManager) CircuitState() util.CircuitState {
	return mm.circuitBreaker.State()
}

func (mm *ModelManager) finish(result ProviderResult, metadata *GenerateMetadata) (string, *GenerateMetadata, error) {
	text := strings.TrimSpace(result.Text)
	if text == "" {
		return "", nil, fmt.Errorf("%s returned empty response", metadata.Provider)
	}
	return text, metadata, nil
}

func (mm *ModelManager) recordFailure(err error) {
	if !isServiceFailure(err) {
		return
	}

	timeout := constants.CircuitBreakerConfig.ResetTimeout
	if isRateLimitError(err) {
		timeout = constants.CircuitBreakerConfig.RateLimitTimeout
	}
	mm.circuitBreaker.RecordFailure(timeout)
}

func isServiceFailure(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, context.DeadlineExceeded) || isRateLimitError(err) {
		return true
	}

	msg := err.Error()
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "ETIMEDOUT") {
		return true
	}
	if statusCodePattern.MatchString(msg) {
		return true
	}
	if code, ok := providerStatusCode(msg); ok {
		return code >= 500 && code < 600
	}
	return false
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	if strings.Contains(msg, "429") || strings.Contains(msg, "Rate limit") || strings.Contains(msg, "quota") {
		return true
	}
	code, ok := providerStatusCode(msg)
	return ok && code == 429
}

func providerStatusCode(msg string) (int, bool) {
	for _, pattern := range []*regexp.Regexp{geminiCodePattern, openaiCodePattern} {
		if matches := pattern.FindStringSubmatch(msg); len(matches) > 1 {
			if code, err := strconv.Atoi(matches[1]); err == nil {
				return code, true
			}
		}
	}
	return 0, false
}
