package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/SscSPs/bookstore_manager/internal/core/ledger"
	"github.com/SscSPs/bookstore_manager/internal/dto"
	"github.com/SscSPs/bookstore_manager/internal/repositories/database/pgsql"
	"github.com/SscSPs/bookstore_manager/pkg/database"
	"github.com/shopspring/decimal"
)

// sourceFlags selects where a command reads its records from and how the
// figures are computed. Every command embeds it.
type sourceFlags struct {
	file     string
	dbURL    string
	owner    string
	asOf     string
	window   time.Duration
	currency string
	plain    bool

	openingCash *decimal.Decimal
	openingBank *decimal.Decimal
}

func (s *sourceFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&s.file, "f", "", "JSON snapshot file. When empty, records are read from the database.")
	f.StringVar(&s.dbURL, "db", os.Getenv("PGSQL_URL"), "Postgres URL. Defaults to $PGSQL_URL.")
	f.StringVar(&s.owner, "owner", "", "Owner whose records are read from the database.")
	f.StringVar(&s.asOf, "asof", "", "Balance date, YYYY-MM-DD or RFC 3339. Defaults to now.")
	f.DurationVar(&s.window, "window", 0, "Largest gap between a cash sale and a customer payment to count as a duplicate. 0 means any.")
	f.StringVar(&s.currency, "currency", "", "Currency code for display. Defaults to the owner's setting.")
	f.BoolVar(&s.plain, "plain", false, "Print raw Markdown instead of rendering it for the terminal.")
	f.Func("opening-cash", "Override the opening cash balance.", amountFlag("opening cash", &s.openingCash))
	f.Func("opening-bank", "Override the opening bank balance.", amountFlag("opening bank", &s.openingBank))
}

// amountFlag parses a float flag into *dst, rejecting NaN and infinities.
func amountFlag(field string, dst **decimal.Decimal) func(string) error {
	return func(v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		d, err := ledger.FiniteAmount(field, f)
		if err != nil {
			return err
		}
		*dst = &d
		return nil
	}
}

func (s *sourceFlags) reconciler() ledger.Reconciler {
	return ledger.Reconciler{Window: s.window}
}

// currencyCode returns the display currency for snap.
func (s *sourceFlags) currencyCode(snap domain.Snapshot) string {
	if s.currency != "" {
		return s.currency
	}
	return snap.Settings.CurrencyCode
}

// load reads the snapshot and applies the opening balance overrides.
func (s *sourceFlags) load(ctx context.Context) (domain.Snapshot, error) {
	asOf, err := dto.AsOfQuery{AsOf: s.asOf}.Time()
	if err != nil {
		return domain.Snapshot{}, err
	}

	var snap domain.Snapshot
	if s.file != "" {
		snap, err = readSnapshotFile(s.file)
		if err != nil {
			return domain.Snapshot{}, err
		}
		if !asOf.IsZero() {
			snap.AsOf = asOf
		}
	} else {
		if asOf.IsZero() {
			asOf = time.Now()
		}
		snap, err = s.loadFromDB(ctx, asOf)
		if err != nil {
			return domain.Snapshot{}, err
		}
	}

	if s.openingCash != nil {
		snap.Settings.Opening.Cash = *s.openingCash
	}
	if s.openingBank != nil {
		snap.Settings.Opening.Bank = *s.openingBank
	}
	return snap, nil
}

func (s *sourceFlags) loadFromDB(ctx context.Context, asOf time.Time) (domain.Snapshot, error) {
	if s.dbURL == "" {
		return domain.Snapshot{}, errors.New("no snapshot file given and no database URL (-db or $PGSQL_URL)")
	}
	if s.owner == "" {
		return domain.Snapshot{}, errors.New("-owner is required when reading from the database")
	}
	pool, err := database.NewPgxPool(ctx, database.PoolOptions{URL: s.dbURL, Ping: true, MaxConns: 2, AppName: "ledgerctl"})
	if err != nil {
		return domain.Snapshot{}, err
	}
	defer pool.Close()

	return pgsql.NewRepositoryProvider(pool).SnapshotRepo.LoadSnapshot(ctx, s.owner, asOf)
}

// readSnapshotFile decodes a snapshot written as one JSON object with the
// collections books, customers, sales, purchases, expenses, donations,
// transactions and settings.
func readSnapshotFile(name string) (domain.Snapshot, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return domain.Snapshot{}, err
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: decoding %s: %v", ledger.ErrInvalidInput, name, err)
	}
	return snap, nil
}
