package unitedpayment

import "context"

// AgreementDetailRequest bounds the settlement report period. Dates use
// the gateway's dd/mm/yyyy convention and go out as query parameters.
type AgreementDetailRequest struct {
	StartDate string `validate:"required"`
	EndDate   string `validate:"required"`
}

// GetAgreementDetail fetches agreement (settlement) details for the
// period. The endpoint spelling is the gateway's own.
func (c *Client) GetAgreementDetail(ctx context.Context, req AgreementDetailRequest) (Response, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	params := map[string]any{
		"startDate": req.StartDate,
		"endDate":   req.EndDate,
	}
	return c.get(ctx, "/aggrement/GetAggrementDetail", params)
}
