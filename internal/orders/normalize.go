package orders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quickchow/go-food-orders/internal/validation"
)

// Defaults applied to line items during normalization.
const (
	DefaultItemName = "Item"
	DefaultQuantity = 1
)

// ErrInvalidSubmission marks submissions that cannot be normalized into an
// order payload.
var ErrInvalidSubmission = errors.New("invalid order submission")

// Normalize converts a raw submission into an order payload ready for the
// store. It is a pure transformation: no id, no timestamps, no writes.
//
// fullName and phone are trimmed and must be non-empty afterwards. Items must
// be a non-empty array; per item, missing or uncoercible values fall back to
// name "Item", price 0, quantity 1. totalAmount must coerce to a finite
// number and is trusted as submitted — it is not recomputed from items and
// extraFee. Blank receiptUrl/notes are dropped so they never persist as empty
// strings, and a missing extraFee is left nil for the store default.
func Normalize(req *validation.SubmitOrderRequest) (*Order, error) {
	fullName := strings.TrimSpace(req.FullName)
	phone := strings.TrimSpace(req.Phone)
	if fullName == "" || phone == "" {
		return nil, fmt.Errorf("%w: fullName and phone are required", ErrInvalidSubmission)
	}

	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items must be a non-empty array", ErrInvalidSubmission)
	}

	total, ok := validation.ToNumber(req.TotalAmount)
	if !ok {
		return nil, fmt.Errorf("%w: totalAmount must be a valid number", ErrInvalidSubmission)
	}

	items := make([]Item, 0, len(req.Items))
	for _, raw := range req.Items {
		item := Item{
			Name:     strings.TrimSpace(raw.Name),
			Quantity: DefaultQuantity,
		}
		if item.Name == "" {
			item.Name = DefaultItemName
		}
		if price, ok := validation.ToNumber(raw.Price); ok && price >= 0 {
			item.Price = price
		}
		if qty, ok := validation.ToNumber(raw.Quantity); ok && qty >= 1 {
			item.Quantity = int(qty)
		}
		items = append(items, item)
	}

	order := &Order{
		FullName:    fullName,
		Phone:       phone,
		Items:       items,
		TotalAmount: total,
	}

	if fee, ok := validation.ToNumber(req.ExtraFee); ok {
		order.ExtraFee = &fee
	}
	if req.PaymentConfirmed != nil {
		order.PaymentConfirmed = *req.PaymentConfirmed
	}
	if receipt := strings.TrimSpace(req.ReceiptURL); receipt != "" {
		order.ReceiptURL = receipt
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		order.Notes = notes
	}

	return order, nil
}
