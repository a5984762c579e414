package response

import "shalean-booking-api/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                          `json:"access_token"`
	Customer    *queries.AuthorizedCustomerView `json:"customer"`
}
