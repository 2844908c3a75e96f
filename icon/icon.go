// Package icon renders status symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/gplay-cli/gplay/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var variants = []string{"emoji", "nerd", "plain", "kaomoji", "squares"}

// glyphs holds one rendering per entry of variants.
type glyphs [5]string

// AvailableVariants returns the names accepted by icons.variant.
func AvailableVariants() []string {
	return append([]string(nil), variants...)
}

// Get renders i in the configured variant. Unknown variants render as "".
func Get(i Icon) string {
	index := lo.IndexOf(variants, viper.GetString(key.IconsVariant))
	if index < 0 {
		return ""
	}
	return icons[i][index]
}
