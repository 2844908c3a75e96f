package constant

import _ "embed"

// AsciiArtLogo is the banner printed above the root help.
//
//go:embed ascii.txt
var AsciiArtLogo string
