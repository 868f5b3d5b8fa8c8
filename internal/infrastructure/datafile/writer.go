package datafile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/saleslens/pipeline/internal/domain"
)

// enrichedHeader lists the columns of the enriched output file, in order
var enrichedHeader = []string{
	"TransactionID", "Date", "ProductID", "ProductName",
	"Quantity", "UnitPrice", "CustomerID", "Region",
	"API_Category", "API_Brand", "API_Rating", "API_Match",
}

// WriteEnriched writes the enriched dataset as a delimited text file with a
// header row. Metadata columns are empty for records the catalog could not
// match.
func WriteEnriched(path string, delimiter string, records []domain.EnrichedTransaction) error {
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create enriched file %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	if _, err := w.WriteString(strings.Join(enrichedHeader, delimiter) + "\n"); err != nil {
		return fmt.Errorf("failed to write enriched file: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.TransactionID,
			r.Date,
			r.ProductID,
			r.ProductName,
			strconv.Itoa(r.Quantity),
			strconv.FormatFloat(r.UnitPrice, 'f', 2, 64),
			r.CustomerID,
			r.Region,
			r.Category,
			r.Brand,
			formatRating(r),
			strconv.FormatBool(r.Matched),
		}
		if _, err := w.WriteString(strings.Join(row, delimiter) + "\n"); err != nil {
			return fmt.Errorf("failed to write enriched file: %w", err)
		}
	}

	return w.Flush()
}

// WriteReport creates the report file and hands the writer to the render
// callback.
func WriteReport(path string, render func(w io.Writer) error) error {
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := render(w); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return w.Flush()
}

func formatRating(r domain.EnrichedTransaction) string {
	if !r.Matched {
		return ""
	}
	return strconv.FormatFloat(r.Rating, 'f', -1, 64)
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}
