package unitedpayment

import "context"

// PayLinkRequest creates a shareable payment link / QR code session.
type PayLinkRequest struct {
	Email string `validate:"required,email"`

	Amount      string `validate:"omitempty,amount"`
	Installment string `validate:"omitempty,oneof=2 3 6 12"`
	Telephone   string
	MemberID    string
	OrderID     string
	Description string
}

// PayByLink returns the gateway's raw answer: this endpoint responds
// with the link itself rather than a JSON document.
func (c *Client) PayByLink(ctx context.Context, req PayLinkRequest) (string, error) {
	if err := checkRequest(req); err != nil {
		return "", err
	}

	payload := map[string]any{
		"email": req.Email,
	}
	put(payload, "installment", req.Installment)
	put(payload, "description", req.Description)
	put(payload, "telephone", req.Telephone)
	put(payload, "memberId", req.MemberID)
	put(payload, "orderId", req.OrderID)
	put(payload, "amount", req.Amount)

	return c.postRaw(ctx, "/transactions/create-pay-link", payload)
}
