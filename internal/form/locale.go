package form

import (
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DecimalSeparator returns the decimal separator the locale uses when
// printing numbers. Only '.' and ',' are supported; anything else falls
// back to '.'.
func DecimalSeparator(tag language.Tag) rune {
	printed := message.NewPrinter(tag).Sprint(number.Decimal(1.5, number.Scale(1)))
	for _, r := range printed {
		if unicode.IsDigit(r) {
			continue
		}
		if r == '.' || r == ',' {
			return r
		}
		break
	}
	return '.'
}
