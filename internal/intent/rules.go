package intent

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

var (
	reListVerb     = regexp.MustCompile(`\b(list|show|search|find|get|browse|products?|items?)\b`)
	reNotListing   = regexp.MustCompile(`\b(cart|order|checkout|pay)\b`)
	reMaxPrice     = regexp.MustCompile(`(?i)(?:under|below|less than)\s*(?:rs\.?|inr)?\s*(\d+)`)
	reMinPrice     = regexp.MustCompile(`(?i)(?:above|over|more than)\s*(?:rs\.?|inr)?\s*(\d+)`)
	reAddToCart    = regexp.MustCompile(`\b(add|put)\b.*\bcart\b|\bcart\b.*\b(add|put)\b`)
	reAddOrCart    = regexp.MustCompile(`add|cart`)
	reCart         = regexp.MustCompile(`\b(view\s+)?cart\b|\b(my\s+)?cart\b`)
	rePlaceOrder   = regexp.MustCompile(`\bplace\s+order\b|order\s+now\b`)
	reCheckout     = regexp.MustCompile(`\bcheckout\b|\bpay\b|\bpayment\b`)
	reOrderStatus  = regexp.MustCompile(`\b(order\s+status\b|status\s+of\s+order|track\s+order)\b`)
	defaultCartQty = 1
)

// RuleProvider classifies with ordered keyword rules. It is deterministic and
// never declines: anything unmatched is Unknown.
type RuleProvider struct{}

var _ Provider = RuleProvider{}

// NewRuleProvider creates the keyword based classifier.
func NewRuleProvider() RuleProvider {
	return RuleProvider{}
}

func (RuleProvider) Name() string { return ProviderRules }

// Classify applies the rules in order; the first match wins.
func (RuleProvider) Classify(_ context.Context, message string, c Context) (Result, error) {
	lower := strings.ToLower(message)

	switch {
	case reListVerb.MatchString(lower) && !reNotListing.MatchString(lower):
		var p Params
		if v, ok := matchPrice(reMaxPrice, message); ok {
			p.MaxPrice = floatPtr(v)
		}
		if v, ok := matchPrice(reMinPrice, message); ok {
			p.MinPrice = floatPtr(v)
		}
		return Result{Intent: ListProducts, Params: p}, nil

	case reAddToCart.MatchString(lower) || (c.ProductID != "" && reAddOrCart.MatchString(lower)):
		return Result{Intent: AddToCart, Params: Params{ProductID: c.ProductID, Quantity: intPtr(defaultCartQty)}}, nil

	case reCart.MatchString(lower):
		return Result{Intent: GetCart}, nil

	case rePlaceOrder.MatchString(lower):
		return Result{Intent: PlaceOrder}, nil

	case reCheckout.MatchString(lower) || c.OrderID != "":
		return Result{Intent: Checkout, Params: Params{OrderID: c.OrderID}}, nil

	case reOrderStatus.MatchString(lower):
		return Result{Intent: GetOrderStatus, Params: Params{OrderID: c.OrderID}}, nil
	}

	return Result{Intent: Unknown}, nil
}

func matchPrice(re *regexp.Regexp, message string) (float64, bool) {
	m := re.FindStringSubmatch(message)
	if len(m) < 2 {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
