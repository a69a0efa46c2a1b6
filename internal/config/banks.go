package config

// BankFormat describes how one bank's CSV export maps onto normalized
// transactions. Per-bank variation is configuration, not code: a new bank is
// a new entry in the registry (or in the [banks] section of the config
// file), never a new code path.
type BankFormat struct {
	Delimiter      string `toml:"delimiter"`
	DateColumn     string `toml:"date_column"`
	AmountColumn   string `toml:"amount_column"`
	DescColumn     string `toml:"description_column"`
	BalanceColumn  string `toml:"balance_column,omitempty"`
	CurrencyColumn string `toml:"currency_column,omitempty"`
	DateLayout     string `toml:"date_layout"`
	// DecimalComma exports write "1.697,00" for 1697.00.
	DecimalComma bool `toml:"decimal_comma"`
	// ReservedMarker is the date-column value flagging a not-yet-booked row.
	ReservedMarker string `toml:"reserved_marker,omitempty"`
}

// defaultBankFormats covers the statement exports finplan ships support for.
var defaultBankFormats = map[string]BankFormat{
	"nordea": {
		Delimiter:      ";",
		DateColumn:     "Booking date",
		AmountColumn:   "Amount",
		DescColumn:     "Title",
		BalanceColumn:  "Balance",
		CurrencyColumn: "Currency",
		DateLayout:     "2006/01/02",
		DecimalComma:   true,
		ReservedMarker: "Reserved",
	},
	// Same bank, Danish-localized headers.
	"nordea-dk": {
		Delimiter:      ";",
		DateColumn:     "Bogføringsdato",
		AmountColumn:   "Beløb",
		DescColumn:     "Beskrivelse",
		BalanceColumn:  "Saldo",
		CurrencyColumn: "Valuta",
		DateLayout:     "2006/01/02",
		DecimalComma:   true,
		ReservedMarker: "Reserveret",
	},
	"danske": {
		Delimiter:      ",",
		DateColumn:     "Booking date",
		AmountColumn:   "Amount",
		DescColumn:     "Title",
		BalanceColumn:  "Balance",
		CurrencyColumn: "Currency",
		DateLayout:     "2006-01-02",
	},
}

// BankFormats merges the built-in formats with config overrides. A config
// entry under an existing name replaces the built-in wholesale.
func (c Config) BankFormats() map[string]BankFormat {
	formats := make(map[string]BankFormat, len(defaultBankFormats)+len(c.Banks))
	for name, f := range defaultBankFormats {
		formats[name] = f
	}
	for name, f := range c.Banks {
		formats[name] = f
	}
	return formats
}
