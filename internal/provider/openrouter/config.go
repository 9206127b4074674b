package openrouter

// Config contains OpenRouter provider configuration. The API key is
// injected here at construction; there is no ambient global credential.
// Referer and Title feed OpenRouter's attribution headers.
type Config struct {
	APIKey  string   `env:"OPENROUTER_API_KEY"`
	BaseURL string   `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	Timeout int      `env:"OPENROUTER_TIMEOUT"  envDefault:"60"`
	Referer string   `env:"OPENROUTER_REFERER"  envDefault:"https://yatragpt.app"`
	Title   string   `env:"OPENROUTER_TITLE"    envDefault:"YatraGPT"`
	Models  []string `env:"OPENROUTER_MODELS"   envSeparator:"," envDefault:"meta-llama/llama-3.2-3b-instruct:free,qwen/qwen-2.5-72b-instruct:free"`
}
