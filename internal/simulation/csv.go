package simulation

import (
	"bytes"
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"anchor-sim/internal/model"

	"github.com/shopspring/decimal"
)

// WriteBalanceCSV writes one row per balance event. Rows are separated by
// "\n" and the last row has no trailing newline.
func WriteBalanceCSV(w io.Writer, events []model.BalanceEvent) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	header := []string{
		"Time",
		"Cash Balance",
		"Change",
		"Action",
		"Asset Price",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, ev := range events {
		price := "N/A"
		if ev.Price != nil {
			price = fmtFloat(*ev.Price)
		}
		row := []string{
			strconv.Itoa(ev.Time),
			fmtFloat(ev.Balance),
			fmtFloat(ev.Change),
			string(ev.Action),
			price,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}

// ExportFilename stamps the export with the asset and the given date.
func ExportFilename(asset string, now time.Time) string {
	return slug(asset) + "_balance_history_" + now.Format("2006-01-02") + ".csv"
}

func fmtFloat(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', 2, 64)
	}
	return decimal.NewFromFloat(x).StringFixed(2)
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "asset"
	}
	return out
}
