package i18n

// Config holds configuration for the localization catalog.
type Config struct {
	// Locale is the locale used to render differences (e.g., en, de-DE).
	Locale string `mapstructure:"locale" default:"en"`
	// Fallback is the locale consulted when a key is missing in Locale.
	Fallback string `mapstructure:"fallback" default:"en"`
	// Path is an optional directory with <locale>.yaml bundles.
	// If empty, the embedded bundles are used.
	Path string `mapstructure:"path" default:""`
}
