package model

import "fmt"

// Currency — валюта лота/ставки. Закрытый набор значений, чтобы проверка
// "choice" была тотальной: любое другое значение отбрасывается при парсинге.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyICP Currency = "ICP"
)

// ParseCurrency валидирует текстовый код валюты.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyICP:
		return Currency(s), nil
	}
	return "", fmt.Errorf("unknown currency %q", s)
}

// IsValid сообщает, входит ли значение в поддерживаемый набор.
func (c Currency) IsValid() bool {
	_, err := ParseCurrency(string(c))
	return err == nil
}
