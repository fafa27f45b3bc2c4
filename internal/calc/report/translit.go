package report

import (
	"strings"
	"unicode"
)

var cyrillic = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
	'№': "No.", '⌀': "D", '₽': "RUB",
}

// Transliterate rewrites Russian text in Latin letters for the core PDF fonts.
func Transliterate(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		lower := unicode.ToLower(r)
		lat, ok := cyrillic[lower]
		if !ok {
			sb.WriteRune(r)
			continue
		}
		if lower != r && lat != "" {
			lat = strings.ToUpper(lat[:1]) + lat[1:]
		}
		sb.WriteString(lat)
	}
	return sb.String()
}
