package i18n

import (
	"embed" //derleme zamanında dosyaları gömülü olarak ekler
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed *.json
var i18nFiles embed.FS

var (
	mu       sync.RWMutex
	catalogs = make(map[string]map[string]string)
	active   string
)

// Load parses the embedded catalog for locale and makes it the active
// one. Catalogs stay cached, so switching back to an already loaded
// locale does not re-read the file.
func Load(locale string) error {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := catalogs[locale]; !ok {
		filename := locale + ".json"
		data, err := i18nFiles.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read embedded i18n file %s: %w", filename, err)
		}
		messages := make(map[string]string)
		if err := json.Unmarshal(data, &messages); err != nil {
			return fmt.Errorf("failed to parse i18n file %s: %w", filename, err)
		}
		catalogs[locale] = messages
	}

	active = locale
	return nil
}

// T returns the active locale's message for code, or fallback when the
// catalog has no entry (or no locale was loaded at all).
func T(code, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()
	return lookup(active, code, fallback)
}

// Tl is T pinned to an explicit locale. Unloaded locales fall through
// to the fallback.
func Tl(locale, code, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()
	return lookup(locale, code, fallback)
}

func lookup(locale, code, fallback string) string {
	if msg, ok := catalogs[locale][code]; ok {
		return msg
	}
	if fallback != "" {
		return fallback
	}
	return code
}
