package app

import "os"

// ApplyEnvToConfig populates unset fields of cfg from environment
// variables. Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = os.Getenv("LLM_BASE_URL")
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = os.Getenv("LLM_MODEL")
	}
	if cfg.LLMAPIKey == "" {
		// OPENAI_API_KEY is what the original tool documented; LLM_API_KEY
		// is accepted for OpenAI-compatible local backends.
		v := os.Getenv("OPENAI_API_KEY")
		if v == "" {
			v = os.Getenv("LLM_API_KEY")
		}
		cfg.LLMAPIKey = v
	}
	if cfg.Language == "" {
		cfg.Language = os.Getenv("LANGUAGE")
	}
	if cfg.StopWordsPath == "" {
		cfg.StopWordsPath = os.Getenv("STOPWORDS_FILE")
	}
}
