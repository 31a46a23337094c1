package orders

import "time"

// Item is one validated line item within an order.
type Item struct {
	Name     string  `dynamodbav:"name" json:"name"`
	Price    float64 `dynamodbav:"price" json:"price"`
	Quantity int     `dynamodbav:"quantity" json:"quantity"`
}

// Order represents the document stored in the orders table. JSON field names
// are camelCase to match the public API payloads; storage attributes are
// snake_case. Optional fields are omitted entirely rather than stored blank.
type Order struct {
	OrderID          string    `dynamodbav:"order_id" json:"id"` // PK
	FullName         string    `dynamodbav:"full_name" json:"fullName"`
	Phone            string    `dynamodbav:"phone" json:"phone"`
	Items            []Item    `dynamodbav:"items" json:"items"`
	TotalAmount      float64   `dynamodbav:"total_amount" json:"totalAmount"`
	ExtraFee         *float64  `dynamodbav:"extra_fee,omitempty" json:"extraFee,omitempty"`
	ReceiptURL       string    `dynamodbav:"receipt_url,omitempty" json:"receiptUrl,omitempty"`
	PaymentConfirmed bool      `dynamodbav:"payment_confirmed" json:"paymentConfirmed"`
	Notes            string    `dynamodbav:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt        time.Time `dynamodbav:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `dynamodbav:"updated_at" json:"updatedAt"`
}
