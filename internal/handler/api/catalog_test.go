//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"shalean-booking-api/internal/handler/api"
	resdto "shalean-booking-api/internal/handler/dto/response"
	"shalean-booking-api/internal/infra"
	"shalean-booking-api/internal/usecase/queries"
	"shalean-booking-api/tests/common/httptest"
	queriesmock "shalean-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/services", s.handler.ListServices)
	s.router.GET("/services/:slug", s.handler.GetService)
	s.router.GET("/regions", s.handler.ListRegions)
	s.router.GET("/regions/:id/suburbs", s.handler.ListSuburbs)
	s.router.GET("/cleaners", s.handler.ListCleaners)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func serviceView(slug, name string) *queries.ServiceView {
	return &queries.ServiceView{
		ID:            uuid.New(),
		Slug:          slug,
		Name:          name,
		BasePrice:     1500000,
		BedroomPrice:  250000,
		BathroomPrice: 200000,
	}
}

func (s *CatalogHandlerTestSuite) TestListServices() {
	s.Run("success", func() {
		services := []*queries.ServiceView{
			serviceView("standard-cleaning", "Standard Cleaning"),
			serviceView("deep-cleaning", "Deep Cleaning"),
		}
		s.mockQueries.EXPECT().ListServices(gomock.Any()).Return(services, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services", nil, "")

		var response resdto.CatalogResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Services, 2)
		s.Equal("standard-cleaning", response.Services[0].Slug)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().ListServices(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CatalogHandlerTestSuite) TestGetService() {
	s.Run("success: service with extras", func() {
		service := serviceView("standard-cleaning", "Standard Cleaning")
		extras := []*queries.ServiceExtraView{
			{ID: uuid.New(), Name: "Inside Fridge", Price: 500000},
			{ID: uuid.New(), Name: "Inside Oven", Price: 500000},
		}
		s.mockQueries.EXPECT().GetServiceBySlug(gomock.Any(), "standard-cleaning").
			Return(service, nil).Times(1)
		s.mockQueries.EXPECT().ListServiceExtras(gomock.Any(), service.ID).
			Return(extras, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services/standard-cleaning", nil, "")

		var response resdto.ServiceDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("standard-cleaning", response.Service.Slug)
		s.Len(response.Extras, 2)
	})

	s.Run("error: 404 on unknown slug", func() {
		s.mockQueries.EXPECT().GetServiceBySlug(gomock.Any(), "no-such-service").
			Return(nil, infra.WrapRepoErr("service not found", pgx.ErrNoRows, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services/no-such-service", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})
}

func (s *CatalogHandlerTestSuite) TestListRegionsAndSuburbs() {
	s.Run("regions", func() {
		regions := []*queries.RegionView{
			{ID: uuid.New(), Name: "Lagos Island"},
			{ID: uuid.New(), Name: "Lagos Mainland"},
		}
		s.mockQueries.EXPECT().ListRegions(gomock.Any()).Return(regions, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/regions", nil, "")

		var response resdto.RegionsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Regions, 2)
	})

	s.Run("suburbs scoped to region", func() {
		regionID := uuid.New()
		suburbs := []*queries.SuburbView{
			{ID: uuid.New(), RegionID: regionID, Name: "Victoria Island"},
		}
		s.mockQueries.EXPECT().ListSuburbs(gomock.Any(), regionID).Return(suburbs, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/regions/"+regionID.String()+"/suburbs", nil, "")

		var response resdto.SuburbsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Suburbs, 1)
		s.Equal(regionID, response.Suburbs[0].RegionID)
	})

	s.Run("error: 400 on malformed region ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/regions/not-a-uuid/suburbs", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid region ID")
	})
}

func (s *CatalogHandlerTestSuite) TestListCleaners() {
	s.Run("success", func() {
		rating := 4.8
		cleaners := []*queries.CleanerView{
			{ID: uuid.New(), FullName: "Adaeze Okafor", Rating: &rating, YearsExperience: 6},
			{ID: uuid.New(), FullName: "Tunde Bakare", YearsExperience: 2},
		}
		s.mockQueries.EXPECT().ListCleaners(gomock.Any()).Return(cleaners, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cleaners", nil, "")

		var response resdto.CleanersResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Cleaners, 2)
		s.Nil(response.Cleaners[1].Rating)
	})
}
