// Package export renders transactions as CSV for spreadsheets.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/walletplus-dev/walletplus/internal/model"
)

// Header is the CSV header for a transaction export.
const Header = "Date,Description,Amount,Type,Category,Account"

const dateFormat = "2006-01-02"

// unresolved is the placeholder for references that no longer resolve,
// e.g. a transaction whose account was deleted.
const unresolved = "N/A"

// WriteTransactions writes one row per transaction with category and account
// names resolved from the ledger. encoding/csv handles quoting, so
// descriptions containing quotes or commas stay intact.
func WriteTransactions(w io.Writer, l model.Ledger) error {
	categories := make(map[string]string, len(l.Categories))
	for _, c := range l.Categories {
		categories[c.ID] = c.Name
	}
	accounts := make(map[string]string, len(l.Accounts))
	for _, a := range l.Accounts {
		accounts[a.ID] = a.Name
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range l.Transactions {
		row := []string{
			t.Date.Format(dateFormat),
			t.Description,
			t.Amount.StringFixed(2),
			string(t.Type),
			lookup(categories, t.CategoryID),
			lookup(accounts, t.AccountID),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func lookup(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return unresolved
}
