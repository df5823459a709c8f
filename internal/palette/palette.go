// Package palette resolves row categories to display colors.
package palette

import (
	"hash/fnv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"matrixview/internal/matrix"
)

var named = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"red":    "#e5484d",
	"green":  "#30a46c",
	"blue":   "#0090ff",
	"yellow": "#ffe629",
	"orange": "#f76b15",
	"purple": "#8e4ec6",
	"pink":   "#d6409f",
	"gray":   "#8b8d98",
	"grey":   "#8b8d98",
	"cyan":   "#00a2c7",
	"teal":   "#12a594",
}

// Palette derives colors from categories. Explicit hex values and common
// color names are honored; other categories get a stable generated hue.
type Palette struct {
	Chroma    float64
	Lightness float64
}

// Default returns a palette tuned for dark terminals.
func Default() Palette {
	return Palette{Chroma: 0.45, Lightness: 0.65}
}

// Resolve implements matrix.ColorFunc.
func (p Palette) Resolve(category matrix.Primitive) (string, bool) {
	if category == nil {
		return "", false
	}
	key := strings.TrimSpace(matrix.FormatValue(category))
	if key == "" {
		return "", false
	}
	if strings.HasPrefix(key, "#") {
		if c, err := colorful.Hex(expandHex(key)); err == nil {
			return c.Hex(), true
		}
	}
	if hex, ok := named[strings.ToLower(key)]; ok {
		return hex, true
	}
	h := fnv.New32a()
	h.Write([]byte(key))
	hue := float64(h.Sum32()%360)
	return colorful.Hcl(hue, p.Chroma, p.Lightness).Clamped().Hex(), true
}

// expandHex turns #rgb into #rrggbb.
func expandHex(s string) string {
	if len(s) != 4 {
		return s
	}
	b := []byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]}
	return string(b)
}
