package simulation

import (
	"bytes"
	"testing"
	"time"

	"anchor-sim/internal/model"
)

func TestWriteBalanceCSV(t *testing.T) {
	price := 90.0
	events := []model.BalanceEvent{
		{Time: 0, Balance: 1000, Change: 0, Action: model.ActionInitial},
		{Time: 1, Balance: 999, Change: -1, Action: model.ActionBuying, Price: &price},
	}
	var buf bytes.Buffer
	if err := WriteBalanceCSV(&buf, events); err != nil {
		t.Fatal(err)
	}
	want := "Time,Cash Balance,Change,Action,Asset Price\n0,1000.00,0.00,INITIAL,N/A\n1,999.00,-1.00,BUYING,90.00"
	if got := buf.String(); got != want {
		t.Errorf("got\n%q\nwant\n%q", got, want)
	}
}

func TestFmtFloatRoundsToCents(t *testing.T) {
	cases := map[float64]string{
		0:          "0.00",
		1000:       "1000.00",
		-1:         "-1.00",
		0.9090909:  "0.91",
		999.004999: "999.00",
		-12.345678: "-12.35",
	}
	for in, want := range cases {
		if got := fmtFloat(in); got != want {
			t.Errorf("fmtFloat(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestExportFilename(t *testing.T) {
	day := time.Date(2026, 10, 17, 15, 4, 5, 0, time.UTC)
	cases := map[string]string{
		"ACME":       "acme_balance_history_2026-10-17.csv",
		"  Big Co. ": "big-co_balance_history_2026-10-17.csv",
		"":           "asset_balance_history_2026-10-17.csv",
	}
	for in, want := range cases {
		if got := ExportFilename(in, day); got != want {
			t.Errorf("ExportFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
