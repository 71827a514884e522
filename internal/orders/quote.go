package orders

import (
	"fmt"
	"strconv"
	"time"

	"storefront/internal/domain"
)

const (
	// FreeDeliveryThreshold is the subtotal above which delivery is free.
	FreeDeliveryThreshold = 500.0
	// StandardDeliveryFee applies to delivery subtotals at or below the threshold.
	StandardDeliveryFee = 50.0
)

// Quote is the priced form of a cart.
type Quote struct {
	Subtotal    float64
	DeliveryFee float64
	Total       float64
	Lines       []domain.OrderLine
}

// DeliveryFeeFor returns the delivery fee for a subtotal.
func DeliveryFeeFor(subtotal float64) float64 {
	if subtotal > FreeDeliveryThreshold {
		return 0
	}
	return StandardDeliveryFee
}

// BuildQuote prices dishIDs against prices. Every occurrence of an id counts
// toward the subtotal and its line quantity; lines keep first-occurrence order
// and ids without a price are skipped.
func BuildQuote(orderType domain.OrderType, dishIDs []int64, prices map[int64]float64) (Quote, error) {
	var q Quote
	index := make(map[int64]int, len(dishIDs))
	for _, id := range dishIDs {
		price, ok := prices[id]
		if !ok {
			continue
		}
		q.Subtotal += price
		if i, seen := index[id]; seen {
			q.Lines[i].Quantity++
			continue
		}
		index[id] = len(q.Lines)
		q.Lines = append(q.Lines, domain.OrderLine{DishID: id, Quantity: 1, Price: price})
	}
	if len(q.Lines) == 0 {
		return Quote{}, fmt.Errorf("%w: none of the dish_ids are on the menu", domain.ErrNoDishes)
	}
	if orderType == domain.OrderTypeDelivery {
		q.DeliveryFee = DeliveryFeeFor(q.Subtotal)
	}
	q.Total = q.Subtotal + q.DeliveryFee
	return q, nil
}

// PickupCode is "PICKUP" followed by the last six digits of the Unix
// millisecond clock.
func PickupCode(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "PICKUP" + ms
}

func distinctIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
