package response

import "shalean-booking-api/internal/usecase/queries"

type CatalogResponse struct {
	Services []*queries.ServiceView `json:"services"`
}

type ServiceDetailResponse struct {
	Service *queries.ServiceView        `json:"service"`
	Extras  []*queries.ServiceExtraView `json:"extras"`
}

type RegionsResponse struct {
	Regions []*queries.RegionView `json:"regions"`
}

type SuburbsResponse struct {
	Suburbs []*queries.SuburbView `json:"suburbs"`
}

type CleanersResponse struct {
	Cleaners []*queries.CleanerView `json:"cleaners"`
}
