package repository

import (
	"context"

	"shalean-booking-api/internal/domain/customer"
	"shalean-booking-api/internal/infra"
	sqlc "shalean-booking-api/internal/infra/sqlc/generated"
	"shalean-booking-api/internal/pkg/pgconv"
	"shalean-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerQueries interface {
	FindCustomerByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Customers, error)
	FindCustomerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindCustomerByIDRow, error)
	UpdateCustomerLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type CustomerRepository struct {
	queries CustomerQueries
	db      sqlc.DBTX
}

func NewCustomerRepository(queries *sqlc.Queries, db sqlc.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email customer.Email) (*queries.AuthorizedCustomerView, string, error) {
	row, err := r.queries.FindCustomerByEmail(ctx, r.db, email.Value())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find customer by email", err)
	}

	view := &queries.AuthorizedCustomerView{
		ID:       row.ID,
		Email:    row.Email,
		FullName: row.FullName,
		Phone:    pgconv.StringPtrFromPgtype(row.Phone),
	}
	return view, row.PasswordHash, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedCustomerView, error) {
	row, err := r.queries.FindCustomerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}

	return &queries.AuthorizedCustomerView{
		ID:       row.ID,
		Email:    row.Email,
		FullName: row.FullName,
		Phone:    pgconv.StringPtrFromPgtype(row.Phone),
	}, nil
}

func (r *CustomerRepository) UpdateLastLogin(ctx context.Context, customerID uuid.UUID) error {
	if err := r.queries.UpdateCustomerLastLogin(ctx, r.db, customerID); err != nil {
		return infra.WrapRepoErr("failed to update customer last login", err)
	}
	return nil
}
