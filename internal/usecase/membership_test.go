//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"order-engine/internal/domain/authorization"
	"order-engine/internal/domain/party"
	"order-engine/internal/domain/transaction"
	"order-engine/internal/infra/lock"
	"order-engine/internal/pkg/clock"
	"order-engine/internal/pkg/errs"
	"order-engine/internal/usecase"
	"order-engine/tests/common/kvstest"
	usecasemock "order-engine/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MembershipTestSuite wires the real transaction, ledger and confirm
// implementations over repository mocks, so Register is exercised end to
// end through the same path the composed application runs.
type MembershipTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	transactionRepo *usecasemock.MockTransactionRepository
	authRepo        *usecasemock.MockAuthorizationRepository
	sequence        *usecasemock.MockSequenceAllocator
	store           *kvstest.Store
	lockManager     *lock.Manager
	clock           *clock.MockClock
	membership      usecase.MembershipUseCase
}

func (s *MembershipTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.transactionRepo = usecasemock.NewMockTransactionRepository(s.mockCtrl)
	s.authRepo = usecasemock.NewMockAuthorizationRepository(s.mockCtrl)
	s.sequence = usecasemock.NewMockSequenceAllocator(s.mockCtrl)
	s.store = kvstest.NewStore()
	s.lockManager = lock.NewManager(s.store, time.Hour)
	s.clock = clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	voidHandler := usecasemock.NewMockVoidHandler(s.mockCtrl)
	s.membership = usecase.NewMembershipUseCase(
		s.lockManager,
		usecase.NewTransactionUseCase(s.transactionRepo, s.clock),
		usecase.NewAuthorizationLedger(s.transactionRepo, s.authRepo, voidHandler, s.clock),
		usecase.NewConfirmUseCase(s.transactionRepo, s.authRepo, s.sequence, s.clock, "JPY"),
		s.clock,
	)
}

func (s *MembershipTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMembershipSuite(t *testing.T) {
	suite.Run(t, new(MembershipTestSuite))
}

func (s *MembershipTestSuite) params() usecase.RegisterMembershipParams {
	return usecase.RegisterMembershipParams{
		AgentID: uuid.New(),
		Customer: party.Person{
			ID:         uuid.New(),
			GivenName:  "Taro",
			FamilyName: "Yamada",
			Email:      "taro@example.com",
			Telephone:  "+81-90-1234-5678",
		},
		Seller:  party.Seller{ID: uuid.New(), Name: "Membership Seller"},
		Project: party.Project{ID: "test-project"},
		Offer: authorization.MembershipObject{
			OfferID:     "plan-gold",
			ProgramName: "Gold Plan",
			BillingPeriod: authorization.BillingPeriod{
				Unit:   authorization.UnitSeconds,
				Length: 3600,
			},
		},
		Price:           2400,
		Currency:        "JPY",
		PaymentMethodID: "pm-001",
	}
}

func (s *MembershipTestSuite) TestRegister() {
	params := s.params()

	var txn *transaction.Transaction
	var records []*authorization.Authorization

	s.transactionRepo.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, created *transaction.Transaction) error {
			txn = created
			return nil
		})
	s.transactionRepo.EXPECT().FindByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID) (*transaction.Transaction, error) {
			return txn, nil
		}).AnyTimes()
	s.authRepo.EXPECT().Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *authorization.Authorization) error {
			records = append(records, record)
			return nil
		}).Times(2)
	s.authRepo.EXPECT().ListCompleted(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ time.Time) ([]*authorization.Authorization, error) {
			return records, nil
		})
	s.sequence.EXPECT().AllocateOrderNumber(gomock.Any(), gomock.Any()).Return(testOrderNumber, nil)
	s.transactionRepo.EXPECT().SetOrderNumberIfAbsent(gomock.Any(), gomock.Any(), testOrderNumber).
		Return(testOrderNumber, nil)
	s.sequence.EXPECT().AllocateConfirmationNumber(gomock.Any()).Return(int64(7), nil)
	s.transactionRepo.EXPECT().SetConfirmationNumberIfAbsent(gomock.Any(), gomock.Any(), int64(7)).
		Return(int64(7), nil)
	s.transactionRepo.EXPECT().Confirm(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	ord, err := s.membership.Register(context.Background(), params)
	s.Require().NoError(err)

	s.Equal(testOrderNumber, ord.OrderNumber)
	s.Equal(int64(2400), ord.Price)
	s.Require().Len(ord.AcceptedOffers, 1)
	s.Equal("plan-gold", ord.AcceptedOffers[0].ID)

	s.Require().NotNil(txn)
	s.Equal(transaction.StatusConfirmed, txn.Status())
	actions := txn.PotentialActions()
	s.Require().NotNil(actions)
	s.Require().Len(actions.RegisterRecurringMembership, 1)
	s.Equal("plan-gold", actions.RegisterRecurringMembership[0].OfferID)
	s.Equal(s.clock.Now().Add(3600*time.Second), actions.RegisterRecurringMembership[0].RunsAt)
	s.Require().Len(actions.Pay, 1)
	s.Equal("pm-001", actions.Pay[0].PaymentMethod.PaymentMethodID)

	s.False(s.store.Has("lock:"+lock.Key(params.AgentID.String(), "plan-gold")),
		"lock must be released after a successful registration")
}

func (s *MembershipTestSuite) TestRegisterContention() {
	params := s.params()
	key := lock.Key(params.AgentID.String(), params.Offer.OfferID)
	s.Require().NoError(s.lockManager.Acquire(context.Background(), key, "someone-else"))

	_, err := s.membership.Register(context.Background(), params)
	s.ErrorIs(err, errs.ErrAlreadyLocked)

	// The holder keeps the lock; a losing attempt must not release it.
	s.True(s.store.Has("lock:" + key))
}

func (s *MembershipTestSuite) TestRegisterReleasesLockOnFailure() {
	params := s.params()

	s.transactionRepo.EXPECT().Start(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	_, err := s.membership.Register(context.Background(), params)
	s.ErrorIs(err, errs.ErrServiceUnavailable)

	s.False(s.store.Has("lock:" + lock.Key(params.AgentID.String(), params.Offer.OfferID)))
}
