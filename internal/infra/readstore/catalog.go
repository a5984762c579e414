package readstore

import (
	"context"

	"shalean-booking-api/internal/infra"
	sqlc "shalean-booking-api/internal/infra/sqlc/generated"
	"shalean-booking-api/internal/pkg/pgconv"
	"shalean-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogViewQueries interface {
	ListActiveServices(ctx context.Context, db sqlc.DBTX) ([]sqlc.Services, error)
	GetServiceBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.Services, error)
	ListServiceExtras(ctx context.Context, db sqlc.DBTX, serviceID uuid.UUID) ([]sqlc.ServiceExtras, error)
	ListRegions(ctx context.Context, db sqlc.DBTX) ([]sqlc.Regions, error)
	ListSuburbsByRegion(ctx context.Context, db sqlc.DBTX, regionID uuid.UUID) ([]sqlc.Suburbs, error)
	ListActiveCleaners(ctx context.Context, db sqlc.DBTX) ([]sqlc.Cleaners, error)
}

type CatalogReadStore struct {
	queries CatalogViewQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries *sqlc.Queries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) FindActiveServices(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.queries.ListActiveServices(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}

	result := make([]*queries.ServiceView, len(rows))
	for i, row := range rows {
		result[i] = rowToServiceView(row)
	}

	return result, nil
}

func (r *CatalogReadStore) FindServiceBySlug(ctx context.Context, slug string) (*queries.ServiceView, error) {
	row, err := r.queries.GetServiceBySlug(ctx, r.db, slug)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by slug", err)
	}

	return rowToServiceView(row), nil
}

func (r *CatalogReadStore) FindServiceExtras(ctx context.Context, serviceID uuid.UUID) ([]*queries.ServiceExtraView, error) {
	rows, err := r.queries.ListServiceExtras(ctx, r.db, serviceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service extras", err)
	}

	result := make([]*queries.ServiceExtraView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ServiceExtraView{
			ID:    row.ID,
			Name:  row.Name,
			Price: row.Price,
		}
	}

	return result, nil
}

func (r *CatalogReadStore) FindRegions(ctx context.Context) ([]*queries.RegionView, error) {
	rows, err := r.queries.ListRegions(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list regions", err)
	}

	result := make([]*queries.RegionView, len(rows))
	for i, row := range rows {
		result[i] = &queries.RegionView{
			ID:    row.ID,
			Name:  row.Name,
			State: pgconv.StringPtrFromPgtype(row.State),
		}
	}

	return result, nil
}

func (r *CatalogReadStore) FindSuburbsByRegion(ctx context.Context, regionID uuid.UUID) ([]*queries.SuburbView, error) {
	rows, err := r.queries.ListSuburbsByRegion(ctx, r.db, regionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list suburbs", err)
	}

	result := make([]*queries.SuburbView, len(rows))
	for i, row := range rows {
		result[i] = &queries.SuburbView{
			ID:       row.ID,
			RegionID: row.RegionID,
			Name:     row.Name,
			Postcode: pgconv.StringPtrFromPgtype(row.Postcode),
		}
	}

	return result, nil
}

func (r *CatalogReadStore) FindActiveCleaners(ctx context.Context) ([]*queries.CleanerView, error) {
	rows, err := r.queries.ListActiveCleaners(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cleaners", err)
	}

	result := make([]*queries.CleanerView, len(rows))
	for i, row := range rows {
		view := &queries.CleanerView{
			ID:              row.ID,
			FullName:        row.FullName,
			Bio:             pgconv.StringPtrFromPgtype(row.Bio),
			YearsExperience: row.YearsExperience,
		}
		if row.Rating.Valid {
			rating := row.Rating.Float64
			view.Rating = &rating
		}
		result[i] = view
	}

	return result, nil
}

func rowToServiceView(row sqlc.Services) *queries.ServiceView {
	return &queries.ServiceView{
		ID:            row.ID,
		Slug:          row.Slug,
		Name:          row.Name,
		Description:   pgconv.StringPtrFromPgtype(row.Description),
		BasePrice:     row.BasePrice,
		BedroomPrice:  row.BedroomPrice,
		BathroomPrice: row.BathroomPrice,
	}
}
