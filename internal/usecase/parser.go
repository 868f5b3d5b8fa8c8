package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/saleslens/pipeline/internal/domain"
)

// Number of delimited fields expected on every data line:
// TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region
const fieldCount = 8

// ParseResult holds the outcome of parsing the raw data lines
type ParseResult struct {
	Transactions []domain.Transaction
	TotalLines   int
	Invalid      int
	Reasons      map[string]int // invalid count per rejection reason
}

// ParseLines parses and validates raw data lines. Malformed lines are
// rejected and counted, never fatal.
func ParseLines(lines []string, delimiter string) ParseResult {
	result := ParseResult{
		TotalLines: len(lines),
		Reasons:    make(map[string]int),
	}

	for _, line := range lines {
		txn, err := ParseLine(line, delimiter)
		if err != nil {
			result.Invalid++
			result.Reasons[reasonOf(err)]++
			continue
		}
		result.Transactions = append(result.Transactions, txn)
	}

	return result
}

// ParseLine parses a single delimited line into a Transaction, applying the
// validation and cleaning rules. Errors wrap domain.ErrMalformedRecord.
func ParseLine(line, delimiter string) (domain.Transaction, error) {
	fields := strings.Split(line, delimiter)
	if len(fields) != fieldCount {
		return domain.Transaction{}, fmt.Errorf("%w: field count: expected %d fields, got %d",
			domain.ErrMalformedRecord, fieldCount, len(fields))
	}

	txn := domain.Transaction{
		TransactionID: strings.TrimSpace(fields[0]),
		Date:          strings.TrimSpace(fields[1]),
		ProductID:     strings.TrimSpace(fields[2]),
		ProductName:   cleanProductName(fields[3]),
		CustomerID:    strings.TrimSpace(fields[6]),
		Region:        strings.TrimSpace(fields[7]),
	}

	if txn.CustomerID == "" || txn.Region == "" {
		return domain.Transaction{}, fmt.Errorf("%w: missing field: customer id and region are required",
			domain.ErrMalformedRecord)
	}

	if !strings.HasPrefix(txn.TransactionID, "T") ||
		!strings.HasPrefix(txn.ProductID, "P") ||
		!strings.HasPrefix(txn.CustomerID, "C") {
		return domain.Transaction{}, fmt.Errorf("%w: id format: ids must start with T/P/C",
			domain.ErrMalformedRecord)
	}

	quantity, err := strconv.Atoi(cleanNumeric(fields[4]))
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: bad number: non-numeric quantity %q",
			domain.ErrMalformedRecord, strings.TrimSpace(fields[4]))
	}

	unitPrice, err := strconv.ParseFloat(cleanNumeric(fields[5]), 64)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: bad number: non-numeric unit price %q",
			domain.ErrMalformedRecord, strings.TrimSpace(fields[5]))
	}

	if quantity <= 0 || unitPrice <= 0 {
		return domain.Transaction{}, fmt.Errorf("%w: non-positive: quantity and unit price must be positive",
			domain.ErrMalformedRecord)
	}

	txn.Quantity = quantity
	txn.UnitPrice = unitPrice

	return txn, nil
}

// cleanProductName removes embedded commas (the legacy export uses them as
// thousands separators inside names) and trims whitespace
func cleanProductName(name string) string {
	return strings.TrimSpace(strings.ReplaceAll(name, ",", " "))
}

// cleanNumeric strips thousands separators and whitespace from a numeric field
func cleanNumeric(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
}

// reasonOf extracts the short rejection reason from a parse error.
// Errors are formatted as "<sentinel>: <reason>: <detail>".
func reasonOf(err error) string {
	parts := strings.SplitN(err.Error(), ": ", 3)
	if len(parts) >= 2 {
		return parts[1]
	}
	return "invalid"
}
