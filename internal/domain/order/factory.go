package order

import (
	"errors"
	"fmt"
	"time"

	"order-engine/internal/domain/authorization"
	"order-engine/internal/domain/party"
)

var (
	ErrProfileIncomplete = errors.New("customer profile is incomplete")
	ErrPricesNotMatched  = errors.New("prices not matched")
	ErrPointBalance      = errors.New("point balance not matched")
	ErrPointAwardExceeds = errors.New("point award exceeds the per-order cap")
	ErrOfferIneligible   = errors.New("offer eligibility unmet")
	ErrItemCountBounds   = errors.New("accepted offer count out of bounds")
	ErrOrderNumberEmpty  = errors.New("order number is required")
	ErrResultMissing     = errors.New("completed authorization is missing its result")
)

// MaxPointAwardPerOrder caps the incentive sum on a single order. A strict
// business rule, not a placeholder.
const MaxPointAwardPerOrder = 1

// BuildParams is the validated-snapshot input to BuildOrder. Authorizations
// must already be filtered to completed records as of the order date.
type BuildParams struct {
	OrderNumber        string
	ConfirmationNumber int64
	Identifier         []IdentifierTag
	Seller             party.Seller
	Customer           party.Person
	Authorizations     []*authorization.Authorization
	OrderDate          time.Time
	PriceCurrency      string
	MinItems           *int
	MaxItems           *int
	URL                string
}

// BuildOrder reconciles the completed authorize actions and assembles the
// immutable Order. Deterministic; any validation failure aborts before any
// Order field is set.
func BuildOrder(p BuildParams) (*Order, error) {
	if p.OrderNumber == "" {
		return nil, ErrOrderNumberEmpty
	}
	if !p.Customer.HasCompleteProfile() {
		return nil, ErrProfileIncomplete
	}

	var (
		sellerPriceSum  int64
		paymentSum      int64
		pointPaymentSum int64
		pointAwardSum   int64
		pointsRequired  int64
		acceptedOffers  []authorization.Offer
		paymentMethods  []PaymentMethod
	)

	for _, a := range p.Authorizations {
		result := a.Result()
		if result == nil {
			return nil, ErrResultMissing
		}

		sellerPriceSum += result.Price

		switch a.Object().Kind {
		case authorization.KindReservation, authorization.KindRecurringMembership:
			for _, offer := range result.AcceptedOffers {
				acceptedOffers = append(acceptedOffers, offer)
				pointsRequired += offer.PriceSpec.PointsRequired
			}
		case authorization.KindCardPayment:
			pm := result.PaymentMethod
			if pm == nil {
				return nil, ErrResultMissing
			}
			if pm.Currency == p.PriceCurrency {
				paymentSum += pm.TotalAmount
			}
			paymentMethods = append(paymentMethods, toPaymentMethod(pm))
		case authorization.KindPointPayment:
			pm := result.PaymentMethod
			if pm == nil {
				return nil, ErrResultMissing
			}
			pointPaymentSum += pm.TotalAmount
			paymentMethods = append(paymentMethods, toPaymentMethod(pm))
		case authorization.KindPointAward:
			if result.PointAward != nil {
				pointAwardSum += result.PointAward.Amount
			}
		}
	}

	if paymentSum != sellerPriceSum {
		return nil, fmt.Errorf("%w: payment total %d, seller total %d %s",
			ErrPricesNotMatched, paymentSum, sellerPriceSum, p.PriceCurrency)
	}
	if pointAwardSum > MaxPointAwardPerOrder {
		return nil, fmt.Errorf("%w: %d awarded", ErrPointAwardExceeds, pointAwardSum)
	}
	if pointPaymentSum != pointsRequired {
		return nil, fmt.Errorf("%w: %d points paid, %d required",
			ErrPointBalance, pointPaymentSum, pointsRequired)
	}

	for _, offer := range acceptedOffers {
		minVolume := offer.PriceSpec.EligibleMinPrice
		if minVolume != nil && sellerPriceSum < *minVolume {
			return nil, fmt.Errorf("%w: offer %s requires a transaction volume of at least %d",
				ErrOfferIneligible, offer.ID, *minVolume)
		}
	}

	if p.MinItems != nil && len(acceptedOffers) < *p.MinItems {
		return nil, fmt.Errorf("%w: %d accepted, at least %d required",
			ErrItemCountBounds, len(acceptedOffers), *p.MinItems)
	}
	if p.MaxItems != nil && len(acceptedOffers) > *p.MaxItems {
		return nil, fmt.Errorf("%w: %d accepted, at most %d allowed",
			ErrItemCountBounds, len(acceptedOffers), *p.MaxItems)
	}

	return &Order{
		OrderNumber:        p.OrderNumber,
		ConfirmationNumber: p.ConfirmationNumber,
		Identifier:         p.Identifier,
		Seller:             p.Seller,
		Customer:           p.Customer,
		AcceptedOffers:     acceptedOffers,
		PaymentMethods:     paymentMethods,
		Price:              sellerPriceSum,
		PriceCurrency:      p.PriceCurrency,
		OrderStatus:        StatusProcessing,
		OrderDate:          p.OrderDate,
		URL:                p.URL,
	}, nil
}

func toPaymentMethod(pm *authorization.PaymentMethodResult) PaymentMethod {
	return PaymentMethod{
		Kind:            pm.Kind,
		Name:            pm.Name,
		PaymentMethodID: pm.PaymentMethodID,
		AccountID:       pm.AccountID,
		TotalAmount:     pm.TotalAmount,
		Currency:        pm.Currency,
	}
}
