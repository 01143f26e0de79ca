package form

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/carson-networks/track-server/internal/service"
)

var errGrammar = errors.New("amount must be digits with at most two decimals")

// AmountValidator filters and parses free-text decimal amounts. The decimal
// separator is fixed when the validator is built.
type AmountValidator struct {
	separator rune
	pattern   *regexp.Regexp
}

func NewAmountValidator(separator rune) *AmountValidator {
	if separator != ',' {
		separator = '.'
	}
	return &AmountValidator{
		separator: separator,
		pattern:   regexp.MustCompile(`^[0-9]+` + regexp.QuoteMeta(string(separator)) + `?[0-9]?[0-9]?$`),
	}
}

// NewAmountValidatorForLocale builds a validator using the locale's decimal separator.
func NewAmountValidatorForLocale(tag language.Tag) *AmountValidator {
	return NewAmountValidator(DecimalSeparator(tag))
}

func (v *AmountValidator) Separator() rune {
	return v.separator
}

// Matches reports whether s is a complete-or-partial amount: digits, an
// optional separator and up to two fractional digits.
func (v *AmountValidator) Matches(s string) bool {
	return v.pattern.MatchString(s)
}

// FilterKeystroke returns newValue when it is empty or well formed and
// oldValue otherwise.
func (v *AmountValidator) FilterKeystroke(oldValue, newValue string) string {
	if newValue == "" || v.Matches(newValue) {
		return newValue
	}
	return oldValue
}

func (v *AmountValidator) IsRowValid(amount string) bool {
	return amount != "" && v.Matches(amount)
}

// Commit parses a well formed amount string into an exact decimal.
func (v *AmountValidator) Commit(amount string) (decimal.Decimal, error) {
	if !v.Matches(amount) {
		return decimal.Decimal{}, &service.ParseError{Input: amount, Err: errGrammar}
	}
	normalized := strings.Replace(amount, string(v.separator), ".", 1)
	normalized = strings.TrimSuffix(normalized, ".")
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, &service.ParseError{Input: amount, Err: err}
	}
	return d, nil
}

// FormatForEdit renders d with exactly two fractional digits and no grouping.
func (v *AmountValidator) FormatForEdit(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", string(v.separator), 1)
}
