package config

const (
	defaultLogDir          = "~/.local/share/svgs/logs"
	defaultExtension       = ".svg"
	defaultCatalogFilename = "catalog.md"
	defaultRasterDPI       = 150
	defaultLLMBaseURL      = "https://openrouter.ai/api/v1/chat/completions"
	defaultLLMModel        = "google/gemini-3-flash-preview"
	defaultLLMReferer      = "https://github.com/treyhoover/svgs"
	defaultLLMTitle        = "svgs Scene Describer"
	defaultLLMTimeout      = 60
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Annotate: Annotate{
			Extension:       defaultExtension,
			CatalogFilename: defaultCatalogFilename,
		},
		Raster: Raster{
			DPI: defaultRasterDPI,
		},
		LLM: LLM{
			BaseURL:        defaultLLMBaseURL,
			Model:          defaultLLMModel,
			Referer:        defaultLLMReferer,
			Title:          defaultLLMTitle,
			TimeoutSeconds: defaultLLMTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
