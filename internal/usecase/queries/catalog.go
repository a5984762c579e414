package queries

import (
	"context"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	ListServices(ctx context.Context) ([]*ServiceView, error)
	GetServiceBySlug(ctx context.Context, slug string) (*ServiceView, error)
	ListServiceExtras(ctx context.Context, serviceID uuid.UUID) ([]*ServiceExtraView, error)
	ListRegions(ctx context.Context) ([]*RegionView, error)
	ListSuburbs(ctx context.Context, regionID uuid.UUID) ([]*SuburbView, error)
	ListCleaners(ctx context.Context) ([]*CleanerView, error)
}

type CatalogViewRepo interface {
	FindActiveServices(ctx context.Context) ([]*ServiceView, error)
	FindServiceBySlug(ctx context.Context, slug string) (*ServiceView, error)
	FindServiceExtras(ctx context.Context, serviceID uuid.UUID) ([]*ServiceExtraView, error)
	FindRegions(ctx context.Context) ([]*RegionView, error)
	FindSuburbsByRegion(ctx context.Context, regionID uuid.UUID) ([]*SuburbView, error)
	FindActiveCleaners(ctx context.Context) ([]*CleanerView, error)
}

type catalogQueriesImpl struct {
	repo CatalogViewRepo
}

func NewCatalogQueries(repo CatalogViewRepo) CatalogQueries {
	return &catalogQueriesImpl{repo: repo}
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context) ([]*ServiceView, error) {
	return q.repo.FindActiveServices(ctx)
}

func (q *catalogQueriesImpl) GetServiceBySlug(ctx context.Context, slug string) (*ServiceView, error) {
	return q.repo.FindServiceBySlug(ctx, slug)
}

func (q *catalogQueriesImpl) ListServiceExtras(ctx context.Context, serviceID uuid.UUID) ([]*ServiceExtraView, error) {
	return q.repo.FindServiceExtras(ctx, serviceID)
}

func (q *catalogQueriesImpl) ListRegions(ctx context.Context) ([]*RegionView, error) {
	return q.repo.FindRegions(ctx)
}

func (q *catalogQueriesImpl) ListSuburbs(ctx context.Context, regionID uuid.UUID) ([]*SuburbView, error) {
	return q.repo.FindSuburbsByRegion(ctx, regionID)
}

func (q *catalogQueriesImpl) ListCleaners(ctx context.Context) ([]*CleanerView, error) {
	return q.repo.FindActiveCleaners(ctx)
}
