// Package i18n provides the localization backend used to render differences.
//
// Bundles are flat YAML maps from language key to text, one file per locale
// (locales/en.yaml, locales/de.yaml). The requested locale is matched against
// the available bundles using golang.org/x/text/language, so "de-AT" selects
// the "de" bundle. Keys missing in the selected bundle are looked up in the
// fallback bundle.
//
// # Placeholders
//
// Messages may contain positional placeholders ({0}, {1}, ...) that are
// replaced with the arguments passed to Translate.
//
// # Missing keys
//
// Translate returns ErrMissingTranslation when a key cannot be resolved, so
// callers can detect the failure and fall back to the raw key.
//
// # Usage
//
//	catalog, err := i18n.Load(cfg.I18n)
//	text, err := catalog.Translate("CompareDifferenceValueChanged", "10", "20")
package i18n
