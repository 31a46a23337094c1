package validation

// SubmissionItem is one raw line item as the order form sends it. Price and
// quantity are left untyped because clients submit them as numbers or numeric
// strings; coercion happens during normalization.
type SubmissionItem struct {
	Name     string      `json:"name"`
	Price    interface{} `json:"price"`
	Quantity interface{} `json:"quantity"`
}

// SubmitOrderRequest is the payload for POST /order-submission.
type SubmitOrderRequest struct {
	FullName         string           `json:"fullName"`
	Phone            string           `json:"phone"`
	Items            []SubmissionItem `json:"items"`
	TotalAmount      interface{}      `json:"totalAmount"`
	ExtraFee         interface{}      `json:"extraFee,omitempty"`
	ReceiptURL       string           `json:"receiptUrl,omitempty"`
	PaymentConfirmed *bool            `json:"paymentConfirmed,omitempty"`
	Notes            string           `json:"notes,omitempty"`
}

// UpdateOrderRequest is the payload for PATCH /orders/:id. paymentConfirmed is
// the only field an administrator may change after creation.
type UpdateOrderRequest struct {
	PaymentConfirmed *bool `json:"paymentConfirmed"`
}
