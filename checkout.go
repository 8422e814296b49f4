package unitedpayment

import "context"

// CheckoutRequest starts a hosted payment page session. Amount is a
// decimal string; the gateway expects it verbatim, so the client never
// converts it through a float.
type CheckoutRequest struct {
	Amount     string   `validate:"required,amount"`
	Language   Language `validate:"required,oneof=EN AZ RU"`
	SuccessURL string   `validate:"required,url"`
	CancelURL  string   `validate:"required,url"`
	DeclineURL string   `validate:"required,url"`

	// ClientOrderID is the merchant's own transaction id, used later for
	// status lookups. The client never generates one.
	ClientOrderID         string
	Description           string
	MemberID              string
	AdditionalInformation string
	Email                 string
	PhoneNumber           string
	ClientName            string
	Currency              Currency `validate:"omitempty,oneof=AZN USD EUR"`
	PartnerID             string
}

// Checkout opens a payment session and returns the gateway's response,
// which carries the redirect URL for the hosted page.
func (c *Client) Checkout(ctx context.Context, req CheckoutRequest) (Response, error) {
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
	put(payload, "clientOrderId", req.ClientOrderID)
	put(payload, "description", req.Description)
	put(payload, "memberId", req.MemberID)
	put(payload, "additionalInformation", req.AdditionalInformation)
	put(payload, "email", req.Email)
	put(payload, "phoneNumber", req.PhoneNumber)
	put(payload, "clientName", req.ClientName)
	put(payload, "currency", req.Currency.String())
	put(payload, "partnerId", req.PartnerID)

	return c.post(ctx, "/transactions/checkout", payload)
}

// CardRegistrationRequest stores a customer card for later 3DS use.
type CardRegistrationRequest struct {
	Language   Language `validate:"required,oneof=EN AZ RU"`
	SuccessURL string   `validate:"required,url"`
	CancelURL  string   `validate:"required,url"`
	DeclineURL string   `validate:"required,url"`

	ClientOrderID string
	MemberID      string
}

func (c *Client) CardRegistration(ctx context.Context, req CardRegistrationRequest) (Response, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"language":   req.Language.String(),
		"successUrl": req.SuccessURL,
		"cancelUrl":  req.CancelURL,
		"declineUrl": req.DeclineURL,
	}
	put(payload, "clientOrderId", req.ClientOrderID)
	put(payload, "memberId", req.MemberID)

	return c.post(ctx, "/transactions/card-registration", payload)
}

// SavedCardPurchase3DSRequest charges a previously registered card with
// a 3DS challenge on the hosted page.
type SavedCardPurchase3DSRequest struct {
	Amount     string   `validate:"required,amount"`
	CardUID    string   `validate:"required"`
	Language   Language `validate:"required,oneof=EN AZ RU"`
	SuccessURL string   `validate:"required,url"`
	CancelURL  string   `validate:"required,url"`
	DeclineURL string   `validate:"required,url"`

	ClientOrderID string
	MemberID      string
}

func (c *Client) PurchaseWithSavedCard3DS(ctx context.Context, req SavedCardPurchase3DSRequest) (Response, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"amount":     req.Amount,
		"cardUID":    req.CardUID,
		"language":   req.Language.String(),
		"successUrl": req.SuccessURL,
		"cancelUrl":  req.CancelURL,
		"declineUrl": req.DeclineURL,
	}
	put(payload, "clientOrderId", req.ClientOrderID)
	put(payload, "memberId", req.MemberID)

	return c.post(ctx, "/transactions/purchase-with-saved-card-3ds", payload)
}

// RecurringCardRegistrationRequest stores a card for recurring charges
// without a per-charge 3DS challenge.
type RecurringCardRegistrationRequest struct {
	SuccessURL string `validate:"required,url"`
	CancelURL  string `validate:"required,url"`
	DeclineURL string `validate:"required,url"`

	ClientOrderID string
	MemberID      string
	Language      Language `validate:"omitempty,oneof=EN AZ RU"`
}

func (c *Client) CardRegistrationRecurring(ctx context.Context, req RecurringCardRegistrationRequest) (Response, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"successUrl": req.SuccessURL,
		"cancelUrl":  req.CancelURL,
		"declineUrl": req.DeclineURL,
	}
	put(payload, "clientOrderId", req.ClientOrderID)
	put(payload, "memberId", req.MemberID)
	put(payload, "language", req.Language.String())

	return c.post(ctx, "/transactions/card-registration-recurring", payload)
}

// RecurringPurchaseRequest charges a recurring-registered card directly,
// with no customer interaction.
type RecurringPurchaseRequest struct {
	Amount  string `validate:"required,amount"`
	CardUID string `validate:"required"`

	ClientOrderID string
	MemberID      string
}

func (c *Client) PurchaseWithSavedCardRecurring(ctx context.Context, req RecurringPurchaseRequest) (Response, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"amount":  req.Amount,
		"cardUid": req.CardUID,
	}
	put(payload, "clientOrderId", req.ClientOrderID)
	put(payload, "memberId", req.MemberID)

	return c.post(ctx, "/transactions/purchase-with-saved-card-recurring", payload)
}
