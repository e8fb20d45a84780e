package leads

import (
	"embed"

	"github.com/chatbridge/leadcapture/pkg/i18n"
)

//go:embed translations/*.yaml
var translationsFS embed.FS

// Translations returns an adapter over the module's embedded message catalog.
func Translations() i18n.TranslationAdapter {
	return i18n.NewEmbeddedFsAdapter(i18n.NewYAMLParser(), translationsFS, "translations")
}
