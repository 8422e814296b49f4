package unitedpayment

import "context"

// TransactionStatusByOrderID looks a transaction up by the merchant's
// own order id. The gateway expects this one key in PascalCase.
func (c *Client) TransactionStatusByOrderID(ctx context.Context, clientOrderID string) (Response, error) {
	if clientOrderID == "" {
		return nil, &ValidationError{Field: "ClientOrderID", Reason: "required"}
	}
	payload := map[string]any{
		"ClientOrderId": clientOrderID,
	}
	return c.post(ctx, "/transactions/transaction-status-by-order-id", payload)
}

// TransactionStatusByTransactionID looks a transaction up by the
// gateway-assigned transaction id.
func (c *Client) TransactionStatusByTransactionID(ctx context.Context, transactionID string) (Response, error) {
	if transactionID == "" {
		return nil, &ValidationError{Field: "TransactionID", Reason: "required"}
	}
	payload := map[string]any{
		"transactionId": transactionID,
	}
	return c.post(ctx, "/transactions/transaction-status-by-trx-id", payload)
}

// RefundRequest returns funds for a settled transaction, fully or
// partially.
type RefundRequest struct {
	TransactionID string `validate:"required"`
	Amount        string `validate:"required,amount"`
}

func (c *Client) Refund(ctx context.Context, req RefundRequest) (Response, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	payload := map[string]any{
		"transactionId": req.TransactionID,
		"amount":        req.Amount,
	}
	return c.post(ctx, "/transactions/refund", payload)
}

// Reversal cancels an authorized-but-not-settled transaction.
func (c *Client) Reversal(ctx context.Context, transactionID string) (Response, error) {
	if transactionID == "" {
		return nil, &ValidationError{Field: "TransactionID", Reason: "required"}
	}
	payload := map[string]any{
		"transactionId": transactionID,
	}
	return c.post(ctx, "/transactions/reverse", payload)
}

// InstallmentRequest is a checkout split into 2, 3, 6 or 12 scheduled
// parts.
type InstallmentRequest struct {
	Amount      string   `validate:"required,amount"`
	Language    Language `validate:"required,oneof=EN AZ RU"`
	SuccessURL  string   `validate:"required,url"`
	CancelURL   string   `validate:"required,url"`
	DeclineURL  string   `validate:"required,url"`
	Installment string   `validate:"required,oneof=2 3 6 12"`

	MemberID string
}

func (c *Client) Installment(ctx context.Context, req InstallmentRequest) (Response, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"amount":      req.Amount,
		"language":    req.Language.String(),
		"successUrl":  req.SuccessURL,
		"cancelUrl":   req.CancelURL,
		"declineUrl":  req.DeclineURL,
		"installment": req.Installment,
	}
	put(payload, "memberId", req.MemberID)

	return c.post(ctx, "/transactions/taksit", payload)
}
