package renderer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"
)

// Domain is the translation file name, without extension, under each
// language directory.
const Domain = "default"

// LoadLocale points the package-level translator at dir/lang/default.po.
// Without translations every key renders as itself.
func LoadLocale(dir, lang string) error {
	path := filepath.Join(dir, lang, Domain+".po")
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("locale %s: %w", lang, err)
	}
	gotext.Configure(dir, lang, Domain)
	return nil
}
