package repository

import (
	"context"

	"shalean-booking-api/internal/domain/booking"
	"shalean-booking-api/internal/infra"
	sqlc "shalean-booking-api/internal/infra/sqlc/generated"
	"shalean-booking-api/internal/pkg/pgconv"
	"shalean-booking-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CatalogWriteQueries interface {
	GetServiceBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.Services, error)
	GetServiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Services, error)
	GetServiceExtraByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ServiceExtras, error)
	GetRegionByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Regions, error)
	GetSuburbByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Suburbs, error)
	GetCleanerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Cleaners, error)
}

type CatalogRepository struct {
	queries CatalogWriteQueries
	db      sqlc.DBTX
}

func NewCatalogRepository(queries *sqlc.Queries, db sqlc.DBTX) *CatalogRepository {
	return &CatalogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogRepository) FindServiceBySlug(ctx context.Context, slug string) (*booking.ServiceSnapshot, error) {
	row, err := r.queries.GetServiceBySlug(ctx, r.db, slug)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by slug", err)
	}
	return serviceToSnapshot(row), nil
}

func (r *CatalogRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*booking.ServiceSnapshot, error) {
	row, err := r.queries.GetServiceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return serviceToSnapshot(row), nil
}

func (r *CatalogRepository) FindExtraByID(ctx context.Context, id uuid.UUID) (*commands.ExtraSnapshot, error) {
	row, err := r.queries.GetServiceExtraByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service extra not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service extra by ID", err)
	}
	return &commands.ExtraSnapshot{
		ID:        row.ID,
		ServiceID: row.ServiceID,
		Name:      row.Name,
		Price:     booking.NewMoney(row.Price),
	}, nil
}

func (r *CatalogRepository) FindSuburbByID(ctx context.Context, id uuid.UUID) (*commands.SuburbSnapshot, error) {
	row, err := r.queries.GetSuburbByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("suburb not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find suburb by ID", err)
	}
	return &commands.SuburbSnapshot{
		ID:       row.ID,
		RegionID: row.RegionID,
		Name:     row.Name,
	}, nil
}

func (r *CatalogRepository) FindCleanerByID(ctx context.Context, id uuid.UUID) (*booking.CleanerSnapshot, error) {
	row, err := r.queries.GetCleanerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cleaner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cleaner by ID", err)
	}
	return &booking.CleanerSnapshot{
		ID:              row.ID,
		FullName:        row.FullName,
		YearsExperience: row.YearsExperience,
	}, nil
}

func serviceToSnapshot(row sqlc.Services) *booking.ServiceSnapshot {
	return &booking.ServiceSnapshot{
		ID:            row.ID,
		Slug:          row.Slug,
		Name:          row.Name,
		BasePrice:     booking.NewMoney(row.BasePrice),
		BedroomPrice:  booking.NewMoney(row.BedroomPrice),
		BathroomPrice: booking.NewMoney(row.BathroomPrice),
	}
}
