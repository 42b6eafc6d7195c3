package plan

import (
	"errors"
	"fmt"
	"time"

	"order-engine/internal/domain/authorization"
	"order-engine/internal/domain/order"
)

var ErrUnsupportedBillingUnit = errors.New("unsupported billing period unit")

// GivePointAwardParams lets the confirm caller override the derived
// incentive entries; when any are supplied they take precedence over the
// awards found in the authorize actions.
type GivePointAwardParams struct {
	AccountID   string
	Amount      int64
	Description string
}

// BuildParams feeds Build. Authorizations must be the confirmation
// snapshot, i.e. completed records as of the order date.
type BuildParams struct {
	Order               *order.Order
	Authorizations      []*authorization.Authorization
	PointAwardParams    []GivePointAwardParams
	NotificationTargets []NotificationTarget
	StandingTargets     []NotificationTarget
}

// Build derives the declarative follow-up plan for a confirmed order.
// Deterministic and free of I/O.
func Build(p BuildParams) (*PotentialActions, error) {
	ctx := OrderContext{
		OrderNumber:        p.Order.OrderNumber,
		ConfirmationNumber: p.Order.ConfirmationNumber,
		Seller:             p.Order.Seller,
		Customer:           p.Order.Customer,
		Price:              p.Order.Price,
		PriceCurrency:      p.Order.PriceCurrency,
		OrderDate:          p.Order.OrderDate,
	}

	pa := &PotentialActions{
		SendOrder: SendOrderAction{OrderContext: ctx},
	}

	for _, a := range p.Authorizations {
		result := a.Result()
		if result == nil {
			continue
		}

		switch a.Object().Kind {
		case authorization.KindReservation:
			pa.SendOrder.PotentialActions.ConfirmReservation = append(
				pa.SendOrder.PotentialActions.ConfirmReservation,
				ConfirmReservationAction{
					OrderContext:        ctx,
					AuthorizationID:     a.ID().String(),
					EventID:             a.Object().Reservation.EventID,
					SeatNumbers:         a.Object().Reservation.SeatNumbers,
					PurchaserIdentifier: p.Order.Identifier,
				})

		case authorization.KindCardPayment, authorization.KindPointPayment:
			if result.PaymentMethod != nil && result.PaymentMethod.Due {
				pa.Pay = append(pa.Pay, PayAction{
					OrderContext:  ctx,
					PaymentMethod: *result.PaymentMethod,
				})
			}

		case authorization.KindPointAward:
			if len(p.PointAwardParams) == 0 && result.PointAward != nil {
				pa.GivePointAward = append(pa.GivePointAward, GivePointAwardAction{
					OrderContext: ctx,
					AccountID:    result.PointAward.AccountID,
					Amount:       result.PointAward.Amount,
					Description:  result.PointAward.Description,
				})
			}

		case authorization.KindRecurringMembership:
			obj := a.Object().Membership
			runsAt, err := nextRunTime(p.Order.OrderDate, obj.BillingPeriod)
			if err != nil {
				return nil, err
			}
			pa.RegisterRecurringMembership = append(pa.RegisterRecurringMembership,
				ScheduleRecurringOrderAction{
					OrderContext: ctx,
					OfferID:      obj.OfferID,
					ProgramName:  obj.ProgramName,
					RunsAt:       runsAt,
				})
		}
	}

	// Explicit award parameters take precedence over derived ones.
	for _, params := range p.PointAwardParams {
		pa.GivePointAward = append(pa.GivePointAward, GivePointAwardAction{
			OrderContext: ctx,
			AccountID:    params.AccountID,
			Amount:       params.Amount,
			Description:  params.Description,
		})
	}

	for _, target := range p.NotificationTargets {
		pa.SendOrder.PotentialActions.SendMessage = append(
			pa.SendOrder.PotentialActions.SendMessage,
			SendMessageAction{OrderContext: ctx, To: target})
	}
	for _, target := range p.StandingTargets {
		pa.SendOrder.PotentialActions.InformOrder = append(
			pa.SendOrder.PotentialActions.InformOrder,
			InformOrderAction{OrderContext: ctx, Recipient: target})
	}

	return pa, nil
}

func nextRunTime(orderDate time.Time, period authorization.BillingPeriod) (time.Time, error) {
	if period.Unit != authorization.UnitSeconds {
		return time.Time{}, fmt.Errorf("%w: %s", ErrUnsupportedBillingUnit, period.Unit)
	}
	return orderDate.Add(time.Duration(period.Length) * time.Second), nil
}
