package app

// Provider names accepted by Config.Provider.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds runtime configuration for one analysis run.
type Config struct {
	// Inputs are the PDF files to analyze, in command-line order.
	Inputs []string

	// OutputPath receives the plain-text report; "-" means stdout.
	OutputPath string
	// OutputPDFPath, when set, additionally renders the report as a PDF.
	OutputPDFPath string

	// Provider selects the model backend: gemini (default) or openai.
	Provider string

	// Gemini backend
	GeminiBaseURL string
	GeminiModel   string
	GeminiAPIKey  string

	// OpenAI-compatible backend
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	Verbose bool
}
