package pgsql

import (
	"context"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	"github.com/SscSPs/bookstore_manager/internal/models"
	"github.com/SscSPs/bookstore_manager/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = `customer_id, owner_id, name, phone, email,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, c domain.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		c.CustomerID, c.OwnerID, c.Name, c.Phone, c.Email,
		c.CreatedAt, c.CreatedBy, c.LastUpdatedAt, c.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError("failed to insert customer "+c.CustomerID, err)
	}
	return nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, c domain.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, phone = $2, email = $3, last_updated_at = $4, last_updated_by = $5
		WHERE owner_id = $6 AND customer_id = $7;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, c.Name, c.Phone, c.Email, c.LastUpdatedAt, c.LastUpdatedBy, c.OwnerID, c.CustomerID)
	if err != nil {
		return mapWriteError("failed to update customer "+c.CustomerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return notFound("customer", c.CustomerID)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, ownerID, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE owner_id = $1 AND customer_id = $2;`
	m, err := collectOne[models.Customer](ctx, r.Pool, "customer", customerID, query, ownerID, customerID)
	if err != nil {
		return nil, err
	}
	c := mapping.ToDomainCustomer(*m)
	return &c, nil
}

// ListCustomers returns every customer of the owner by name.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, ownerID string) ([]domain.Customer, error) {
	return listCustomers(ctx, r.Pool, ownerID)
}

func listCustomers(ctx context.Context, q querier, ownerID string) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE owner_id = $1 ORDER BY name, customer_id;`
	ms, err := collectAll[models.Customer](ctx, q, "failed to list customers for owner "+ownerID, query, ownerID)
	if err != nil {
		return nil, err
	}
	customers := make([]domain.Customer, 0, len(ms))
	for _, m := range ms {
		customers = append(customers, mapping.ToDomainCustomer(m))
	}
	return customers, nil
}
