package unitedpayment

import "context"

// CustomerCardsRequest filters the saved-card listing. Both fields are
// optional; the gateway scopes the answer to the merchant either way.
type CustomerCardsRequest struct {
	PartnerID string
	MemberID  string
}

// GetCustomerCards lists the cards saved for a customer.
func (c *Client) GetCustomerCards(ctx context.Context, req CustomerCardsRequest) (Response, error) {
	payload := map[string]any{}
	put(payload, "memberId", req.MemberID)
	put(payload, "partnerId", req.PartnerID)

	return c.post(ctx, "/KapitalBank/GetCustomerCards", payload)
}

// DeleteCardRequest removes a saved card by its gateway-assigned UID.
type DeleteCardRequest struct {
	CardUID string `validate:"required"`

	MemberID  string
	PartnerID string
}

func (c *Client) DeleteCustomerSavedCards(ctx context.Context, req DeleteCardRequest) (Response, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"cardUID": req.CardUID,
	}
	put(payload, "memberId", req.MemberID)
	put(payload, "partnerId", req.PartnerID)

	return c.post(ctx, "/KapitalBank/DeleteCustomerSavedCards", payload)
}
