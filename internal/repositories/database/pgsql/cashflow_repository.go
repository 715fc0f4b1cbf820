package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	"github.com/SscSPs/bookstore_manager/internal/models"
	"github.com/SscSPs/bookstore_manager/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	expenseColumns = `expense_id, owner_id, expense_date, amount, category, description, payment_method,
	created_at, created_by, last_updated_at, last_updated_by`
	donationColumns = `donation_id, owner_id, donation_date, amount, donor, payment_method,
	created_at, created_by, last_updated_at, last_updated_by`
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, e domain.Expense) error {
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		e.ExpenseID, e.OwnerID, e.Date, e.Amount, e.Category, e.Description, string(e.PaymentMethod),
		e.CreatedAt, e.CreatedBy, e.LastUpdatedAt, e.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError("failed to insert expense "+e.ExpenseID, err)
	}
	return nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, ownerID string, page portsrepo.Page) ([]domain.Expense, *string, error) {
	listing := datedListing{
		selectFrom: `SELECT ` + expenseColumns + ` FROM expenses`,
		dateColumn: "expense_date",
		where:      "owner_id = $1",
		args:       []any{ownerID},
	}
	ms, next, err := listDated(ctx, r.Pool, listing, page, func(m models.Expense) (time.Time, time.Time) {
		return m.ExpenseDate, m.CreatedAt
	})
	if err != nil {
		return nil, nil, err
	}
	expenses, err := toDomainExpenses(ms)
	if err != nil {
		return nil, nil, err
	}
	return expenses, next, nil
}

func toDomainExpenses(ms []models.Expense) ([]domain.Expense, error) {
	expenses := make([]domain.Expense, 0, len(ms))
	for _, m := range ms {
		e, err := mapping.ToDomainExpense(m)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

type PgxDonationRepository struct {
	BaseRepository
}

func newPgxDonationRepository(pool *pgxpool.Pool) portsrepo.DonationRepositoryFacade {
	return &PgxDonationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DonationRepositoryFacade = (*PgxDonationRepository)(nil)

func (r *PgxDonationRepository) SaveDonation(ctx context.Context, d domain.Donation) error {
	query := `
		INSERT INTO donations (` + donationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		d.DonationID, d.OwnerID, d.Date, d.Amount, d.Donor, string(d.PaymentMethod),
		d.CreatedAt, d.CreatedBy, d.LastUpdatedAt, d.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError("failed to insert donation "+d.DonationID, err)
	}
	return nil
}

func (r *PgxDonationRepository) ListDonations(ctx context.Context, ownerID string, page portsrepo.Page) ([]domain.Donation, *string, error) {
	listing := datedListing{
		selectFrom: `SELECT ` + donationColumns + ` FROM donations`,
		dateColumn: "donation_date",
		where:      "owner_id = $1",
		args:       []any{ownerID},
	}
	ms, next, err := listDated(ctx, r.Pool, listing, page, func(m models.Donation) (time.Time, time.Time) {
		return m.DonationDate, m.CreatedAt
	})
	if err != nil {
		return nil, nil, err
	}
	donations, err := toDomainDonations(ms)
	if err != nil {
		return nil, nil, err
	}
	return donations, next, nil
}

func toDomainDonations(ms []models.Donation) ([]domain.Donation, error) {
	donations := make([]domain.Donation, 0, len(ms))
	for _, m := range ms {
		d, err := mapping.ToDomainDonation(m)
		if err != nil {
			return nil, err
		}
		donations = append(donations, d)
	}
	return donations, nil
}
