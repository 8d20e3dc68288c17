package costs

import (
	"math"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
)

// Rates тарифы провайдеров в долларах
type Rates struct {
	LLMPromptPerMillion     float64 `toml:"llm_prompt_per_million"`
	LLMCompletionPerMillion float64 `toml:"llm_completion_per_million"`
	TTSPerThousandChars     float64 `toml:"tts_per_thousand_chars"`
	STTPerMinute            float64 `toml:"stt_per_minute"`
}

// DefaultRates тарифы по умолчанию
func DefaultRates() Rates {
	return Rates{
		LLMPromptPerMillion:     0.15,
		LLMCompletionPerMillion: 0.60,
		TTSPerThousandChars:     0.015,
		STTPerMinute:            0.0043,
	}
}

// Usage счетчики потребления за разговор
type Usage struct {
	PromptTokens       int64   `json:"prompt_tokens"`
	PromptCachedTokens int64   `json:"prompt_cached_tokens"`
	CompletionTokens   int64   `json:"completion_tokens"`
	TTSCharacters      int64   `json:"tts_characters"`
	TTSAudioSeconds    float64 `json:"tts_audio_duration"`
	STTAudioSeconds    float64 `json:"stt_audio_duration"`
}

// Calculator считает стоимость разговора
type Calculator struct {
	rates Rates
}

// NewCalculator создает калькулятор; нулевые тарифы заменяются значениями по умолчанию
func NewCalculator(rates Rates) *Calculator {
	defaults := DefaultRates()
	if rates.LLMPromptPerMillion <= 0 {
		rates.LLMPromptPerMillion = defaults.LLMPromptPerMillion
	}
	if rates.LLMCompletionPerMillion <= 0 {
		rates.LLMCompletionPerMillion = defaults.LLMCompletionPerMillion
	}
	if rates.TTSPerThousandChars <= 0 {
		rates.TTSPerThousandChars = defaults.TTSPerThousandChars
	}
	if rates.STTPerMinute <= 0 {
		rates.STTPerMinute = defaults.STTPerMinute
	}
	return &Calculator{rates: rates}
}

// Calculate возвращает разбивку стоимости, суммы округлены до 6 знаков
func (c *Calculator) Calculate(u Usage) domain.CostBreakdown {
	prompt := float64(max(u.PromptTokens, 0))
	completion := float64(max(u.CompletionTokens, 0))
	ttsChars := float64(max(u.TTSCharacters, 0))
	sttSeconds := math.Max(u.STTAudioSeconds, 0)

	llmCost := prompt/1_000_000*c.rates.LLMPromptPerMillion + completion/1_000_000*c.rates.LLMCompletionPerMillion
	ttsCost := ttsChars / 1000 * c.rates.TTSPerThousandChars
	sttCost := sttSeconds / 60 * c.rates.STTPerMinute

	return domain.CostBreakdown{
		"llm_cost":             round6(llmCost),
		"tts_cost":             round6(ttsCost),
		"stt_cost":             round6(sttCost),
		"total_cost":           round6(llmCost + ttsCost + sttCost),
		"prompt_tokens":        prompt,
		"prompt_cached_tokens": float64(max(u.PromptCachedTokens, 0)),
		"completion_tokens":    completion,
		"total_tokens":         prompt + completion,
		"tts_characters":       ttsChars,
		"tts_audio_duration":   math.Max(u.TTSAudioSeconds, 0),
		"stt_audio_duration":   sttSeconds,
	}
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
