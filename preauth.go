package unitedpayment

import "context"

// PreauthRequest blocks the amount on the customer's card. The hold is
// settled with PreauthCompletion or released with Reversal; the gateway
// drops unsettled holds after 30 days.
type PreauthRequest struct {
	Amount     string   `validate:"required,amount"`
	Language   Language `validate:"required,oneof=EN AZ RU"`
	SuccessURL string   `validate:"required,url"`
	CancelURL  string   `validate:"required,url"`
	DeclineURL string   `validate:"required,url"`

	MemberID string
}

func (c *Client) Preauth(ctx context.Context, req PreauthRequest) (Response, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"amount":     req.Amount,
		"language":   req.Language.String(),
		"successUrl": req.SuccessURL,
		"cancelUrl":  req.CancelURL,
		"declineUrl": req.DeclineURL,
	}
	put(payload, "memberId", req.MemberID)

	return c.post(ctx, "/transactions/preauth", payload)
}

// RecurringPreauthRequest places a hold using a recurring-registered
// card, with no customer interaction.
type RecurringPreauthRequest struct {
	Amount  string `validate:"required,amount"`
	CardUID string `validate:"required"`

	ClientOrderID string
	MemberID      string
}

func (c *Client) PreauthWithSavedCardRecurring(ctx context.Context, req RecurringPreauthRequest) (Response, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"amount":  req.Amount,
		"cardUid": req.CardUID,
	}
	put(payload, "clientOrderId", req.ClientOrderID)
	put(payload, "memberId", req.MemberID)

	return c.post(ctx, "/transactions/preauth-with-saved-card-recurring", payload)
}

// PreauthCompletionRequest settles a held amount, fully or partially.
type PreauthCompletionRequest struct {
	TransactionID string   `validate:"required"`
	Amount        string   `validate:"required,amount"`
	Language      Language `validate:"required,oneof=EN AZ RU"`

	MemberID  string
	PartnerID string
}

func (c *Client) PreauthCompletion(ctx context.Context, req PreauthCompletionRequest) (Response, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"transactionId": req.TransactionID,
		"amount":        req.Amount,
		"language":      req.Language.String(),
	}
	put(payload, "memberId", req.MemberID)
	put(payload, "partnerId", req.PartnerID)

	return c.post(ctx, "/transactions/preauth-completion", payload)
}
