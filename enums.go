package unitedpayment

// Language selects the hosted payment page locale. Only members of the
// closed set below are accepted by the gateway.
type Language string

const (
	LanguageEN Language = "EN"
	LanguageAZ Language = "AZ"
	LanguageRU Language = "RU"
)

func (l Language) String() string { return string(l) }

func (l Language) valid() bool {
	switch l {
	case LanguageEN, LanguageAZ, LanguageRU:
		return true
	}
	return false
}

// Currency is an ISO currency code supported by the gateway.
type Currency string

const (
	CurrencyAZN Currency = "AZN"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

func (c Currency) String() string { return string(c) }

func (c Currency) valid() bool {
	switch c {
	case CurrencyAZN, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}
