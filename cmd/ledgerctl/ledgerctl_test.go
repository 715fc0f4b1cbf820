package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/bookstore_manager/internal/core/ledger"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotJSON = `{
  "books": [
    {"bookID": "B1", "title": "Gitanjali", "stock": 4, "price": "100", "productionPrice": "60"}
  ],
  "sales": [
    {"saleID": "S1", "date": "2025-03-10T10:00:00Z", "customerID": "C1", "paymentMethod": "CASH",
     "items": [{"bookID": "B1", "quantity": 1, "price": "100"}], "total": "100"}
  ],
  "transactions": [
    {"transactionID": "T1", "type": "RECEIVABLE", "status": "PAID", "amount": "100",
     "customerID": "C1", "saleID": "S1", "paymentMethod": "CASH",
     "dueDate": "2025-03-10T00:00:00Z", "paidAt": "2025-03-10T12:00:00Z"}
  ],
  "settings": {"opening": {"cash": "1000", "bank": "0"}, "currencyCode": "USD"}
}`

func writeSnapshot(t *testing.T) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(name, []byte(snapshotJSON), 0o600))
	return name
}

func TestSourceFlags_LoadFileWithOverrides(t *testing.T) {
	var s sourceFlags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	s.setFlags(fs)
	require.NoError(t, fs.Parse([]string{"-f", writeSnapshot(t), "-opening-cash", "250.5"}))

	snap, err := s.load(context.Background())
	require.NoError(t, err)

	assert.Len(t, snap.Sales, 1)
	assert.Equal(t, "USD", s.currencyCode(snap))
	assert.True(t, snap.Settings.Opening.Cash.Equal(decimal.RequireFromString("250.5")))
	assert.True(t, snap.Settings.Opening.Bank.IsZero())
	assert.True(t, snap.AsOf.IsZero())
}

func TestSourceFlags_RejectsNonFiniteOpening(t *testing.T) {
	var s sourceFlags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	s.setFlags(fs)

	err := fs.Parse([]string{"-opening-bank", "NaN"})
	assert.ErrorContains(t, err, "not a finite number")
}

func TestSourceFlags_DatabaseNeedsOwner(t *testing.T) {
	s := sourceFlags{dbURL: "postgres://localhost/bookstore"}

	_, err := s.load(context.Background())
	assert.ErrorContains(t, err, "-owner is required")
}

func TestReadSnapshotFile_BadJSON(t *testing.T) {
	name := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(name, []byte(`{"sales": [`), 0o600))

	_, err := readSnapshotFile(name)
	assert.ErrorIs(t, err, ledger.ErrInvalidInput)
}

func TestAuditCmd_StrictFailsOnDuplicates(t *testing.T) {
	cmd := &auditCmd{}
	fs := flag.NewFlagSet("audit", flag.ContinueOnError)
	cmd.SetFlags(fs)
	require.NoError(t, fs.Parse([]string{"-f", writeSnapshot(t), "-plain", "-strict"}))

	assert.Equal(t, subcommands.ExitFailure, cmd.Execute(context.Background(), fs))
}

func TestBalanceCmd_FromFile(t *testing.T) {
	cmd := &balanceCmd{}
	fs := flag.NewFlagSet("balance", flag.ContinueOnError)
	cmd.SetFlags(fs)
	require.NoError(t, fs.Parse([]string{"-f", writeSnapshot(t), "-plain"}))

	assert.Equal(t, subcommands.ExitSuccess, cmd.Execute(context.Background(), fs))
}

func TestProfitCmd_BadPeriod(t *testing.T) {
	cmd := &profitCmd{}
	fs := flag.NewFlagSet("profit", flag.ContinueOnError)
	cmd.SetFlags(fs)
	require.NoError(t, fs.Parse([]string{"-f", writeSnapshot(t), "-from", "2025-03"}))

	assert.Equal(t, subcommands.ExitUsageError, cmd.Execute(context.Background(), fs))
}
