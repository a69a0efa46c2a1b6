package source

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"finplan/internal/config"
	"finplan/internal/model"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseResult holds the output of parsing a single statement file.
type ParseResult struct {
	Transactions []model.Transaction
	SkippedRows  int
	Err          error
}

// ParseFile reads one statement CSV using the bank's column mapping.
// Rows whose date column carries the reserved marker are kept with
// StatusReserved; rows whose date fails to parse are kept with
// StatusPending. Rows missing an amount are skipped and counted.
func ParseFile(df DiscoveredFile, format config.BankFormat) ParseResult {
	data, err := os.ReadFile(df.Path)
	if err != nil {
		return ParseResult{Err: err}
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	if format.Delimiter != "" {
		reader.Comma = rune(format.Delimiter[0])
	}
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return ParseResult{Err: fmt.Errorf("reading %s: %w", df.Path, err)}
	}
	if len(records) == 0 {
		return ParseResult{}
	}

	cols := indexColumns(records[0])
	dateIdx, ok := cols[format.DateColumn]
	if !ok {
		return ParseResult{Err: fmt.Errorf("%s: date column %q not found", df.Path, format.DateColumn)}
	}
	amountIdx, ok := cols[format.AmountColumn]
	if !ok {
		return ParseResult{Err: fmt.Errorf("%s: amount column %q not found", df.Path, format.AmountColumn)}
	}
	descIdx := cols[format.DescColumn]
	balanceIdx, hasBalance := cols[format.BalanceColumn]
	currencyIdx, hasCurrency := cols[format.CurrencyColumn]

	var result ParseResult
	for _, row := range records[1:] {
		if amountIdx >= len(row) || dateIdx >= len(row) {
			result.SkippedRows++
			continue
		}

		amount, err := ParseAmount(row[amountIdx], format.DecimalComma)
		if err != nil {
			result.SkippedRows++
			continue
		}

		tx := model.Transaction{
			Bank:   df.Bank,
			Amount: amount,
		}
		if descIdx < len(row) {
			tx.Description = strings.TrimSpace(row[descIdx])
		}
		if hasBalance && balanceIdx < len(row) {
			if bal, err := ParseAmount(row[balanceIdx], format.DecimalComma); err == nil {
				tx.Balance = bal
			}
		}
		if hasCurrency && currencyIdx < len(row) {
			tx.Currency = strings.TrimSpace(row[currencyIdx])
		}

		rawDate := strings.TrimSpace(row[dateIdx])
		switch {
		case format.ReservedMarker != "" && strings.EqualFold(rawDate, format.ReservedMarker):
			tx.Status = model.StatusReserved
		default:
			date, err := time.Parse(format.DateLayout, rawDate)
			if err != nil {
				tx.Status = model.StatusPending
			} else {
				tx.Date = date
				tx.Status = model.StatusBooked
			}
		}

		tx.ID = TransactionID(tx)
		result.Transactions = append(result.Transactions, tx)
	}

	return result
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

// ParseAmount parses a statement amount. With decimalComma, thousands dots
// are stripped and the comma becomes the decimal point ("-1.697,00" ->
// -1697.00); otherwise the value is parsed as-is.
func ParseAmount(s string, decimalComma bool) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}
	if decimalComma {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}

// TransactionID derives a stable dedup identifier from the fields that
// survive across overlapping statement exports. Balance is excluded: it
// shifts when unrelated transactions land in between.
func TransactionID(tx model.Transaction) string {
	dateStr := "NoDate"
	if !tx.Date.IsZero() {
		dateStr = tx.Date.Format("2006-01-02")
	}
	key := fmt.Sprintf("%s|%s|%s|%s", dateStr, tx.Description, tx.Amount.StringFixed(2), tx.Bank)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:16])
}
