//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"order-engine/internal/domain/authorization"
	"order-engine/internal/domain/transaction"
	"order-engine/internal/infra"
	"order-engine/internal/pkg/clock"
	"order-engine/internal/pkg/errs"
	"order-engine/internal/usecase"
	"order-engine/tests/common/builder"
	usecasemock "order-engine/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LedgerTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	transactionRepo *usecasemock.MockTransactionRepository
	authRepo        *usecasemock.MockAuthorizationRepository
	voidHandler     *usecasemock.MockVoidHandler
	clock           *clock.MockClock
	ledger          usecase.AuthorizationLedger
}

func (s *LedgerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.transactionRepo = usecasemock.NewMockTransactionRepository(s.mockCtrl)
	s.authRepo = usecasemock.NewMockAuthorizationRepository(s.mockCtrl)
	s.voidHandler = usecasemock.NewMockVoidHandler(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.ledger = usecase.NewAuthorizationLedger(s.transactionRepo, s.authRepo, s.voidHandler, s.clock)
}

func (s *LedgerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) openTransaction() *transaction.Transaction {
	b := builder.NewTransactionBuilder()
	b.Now = s.clock.Now().Add(-time.Minute)
	b.Expires = s.clock.Now().Add(time.Hour)
	txn, err := b.BuildDomain()
	s.Require().NoError(err)
	return txn
}

func (s *LedgerTestSuite) addParams(txn *transaction.Transaction) usecase.AddAuthorizationParams {
	return usecase.AddAuthorizationParams{
		TransactionID: txn.ID(),
		AgentID:       txn.AgentID(),
		Object: authorization.Object{
			Kind:        authorization.KindReservation,
			Reservation: &authorization.ReservationObject{EventID: "event-001", SeatNumbers: []string{"A-1"}},
		},
		Result: authorization.Result{Price: 1000, Currency: "JPY"},
	}
}

func (s *LedgerTestSuite) TestAdd() {
	s.Run("stores a completed record", func() {
		txn := s.openTransaction()
		s.transactionRepo.EXPECT().FindByID(gomock.Any(), txn.ID()).Return(txn, nil)
		s.authRepo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)

		record, err := s.ledger.Add(context.Background(), s.addParams(txn))
		s.Require().NoError(err)
		s.Equal(authorization.StatusCompleted, record.Status())
		s.Equal(txn.ID(), record.Purpose())
		s.Require().NotNil(record.EndDate())
		s.Equal(s.clock.Now(), *record.EndDate())
	})

	s.Run("rejects a terminal transaction", func() {
		txn := s.openTransaction()
		terminal := transaction.Reconstruct(
			txn.ID(), transaction.StatusCanceled, txn.AgentID(), txn.Seller(), txn.Project(),
			txn.Object(), txn.Expires(), nil, nil, txn.StartedAt(), nil,
		)
		s.transactionRepo.EXPECT().FindByID(gomock.Any(), txn.ID()).Return(terminal, nil)

		_, err := s.ledger.Add(context.Background(), s.addParams(txn))
		s.ErrorIs(err, usecase.ErrTransactionTerminal)
		s.ErrorIs(err, errs.ErrArgument)
	})

	s.Run("rejects a foreign agent", func() {
		txn := s.openTransaction()
		s.transactionRepo.EXPECT().FindByID(gomock.Any(), txn.ID()).Return(txn, nil)

		params := s.addParams(txn)
		params.AgentID = uuid.New()
		_, err := s.ledger.Add(context.Background(), params)
		s.ErrorIs(err, usecase.ErrAgentMismatch)
		s.ErrorIs(err, errs.ErrForbidden)
	})

	s.Run("rejects a malformed object", func() {
		txn := s.openTransaction()
		s.transactionRepo.EXPECT().FindByID(gomock.Any(), txn.ID()).Return(txn, nil)

		params := s.addParams(txn)
		params.Object = authorization.Object{Kind: authorization.KindCardPayment}
		_, err := s.ledger.Add(context.Background(), params)
		s.ErrorIs(err, authorization.ErrObjectMismatch)
		s.ErrorIs(err, errs.ErrArgument)
	})
}

func (s *LedgerTestSuite) TestCancel() {
	s.Run("voids the external hold and cancels", func() {
		txn := s.openTransaction()
		record, err := builder.NewAuthorizationBuilder().
			WithTransactionID(txn.ID()).
			WithAgentID(txn.AgentID()).
			BuildDomain()
		s.Require().NoError(err)

		s.transactionRepo.EXPECT().FindByID(gomock.Any(), txn.ID()).Return(txn, nil)
		s.authRepo.EXPECT().FindByID(gomock.Any(), record.ID()).Return(record, nil)
		s.voidHandler.EXPECT().Void(gomock.Any(), record).Return(nil)
		s.authRepo.EXPECT().Update(gomock.Any(), record).Return(nil)

		s.Require().NoError(s.ledger.Cancel(context.Background(), txn.ID(), txn.AgentID(), record.ID()))
		s.Equal(authorization.StatusCanceled, record.Status())
	})

	s.Run("void failure does not block the cancel", func() {
		txn := s.openTransaction()
		record, err := builder.NewAuthorizationBuilder().
			WithTransactionID(txn.ID()).
			WithAgentID(txn.AgentID()).
			BuildDomain()
		s.Require().NoError(err)

		s.transactionRepo.EXPECT().FindByID(gomock.Any(), txn.ID()).Return(txn, nil)
		s.authRepo.EXPECT().FindByID(gomock.Any(), record.ID()).Return(record, nil)
		s.voidHandler.EXPECT().Void(gomock.Any(), record).Return(errors.New("upstream timeout"))
		s.authRepo.EXPECT().Update(gomock.Any(), record).Return(nil)

		s.NoError(s.ledger.Cancel(context.Background(), txn.ID(), txn.AgentID(), record.ID()))
		s.Equal(authorization.StatusCanceled, record.Status())
	})

	s.Run("record owned by another transaction is not found", func() {
		txn := s.openTransaction()
		record, err := builder.NewAuthorizationBuilder().
			WithAgentID(txn.AgentID()).
			BuildDomain() // random transaction id
		s.Require().NoError(err)

		s.transactionRepo.EXPECT().FindByID(gomock.Any(), txn.ID()).Return(txn, nil)
		s.authRepo.EXPECT().FindByID(gomock.Any(), record.ID()).Return(record, nil)

		err = s.ledger.Cancel(context.Background(), txn.ID(), txn.AgentID(), record.ID())
		s.ErrorIs(err, usecase.ErrWrongTransaction)
		s.ErrorIs(err, errs.ErrNotFound)
	})

	s.Run("missing record", func() {
		txn := s.openTransaction()
		id := uuid.New()
		s.transactionRepo.EXPECT().FindByID(gomock.Any(), txn.ID()).Return(txn, nil)
		s.authRepo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "no rows", nil))

		err := s.ledger.Cancel(context.Background(), txn.ID(), txn.AgentID(), id)
		s.ErrorIs(err, usecase.ErrAuthorizationNotFound)
	})
}

func (s *LedgerTestSuite) TestReplace() {
	txn := s.openTransaction()
	old, err := builder.NewAuthorizationBuilder().
		WithTransactionID(txn.ID()).
		WithAgentID(txn.AgentID()).
		BuildDomain()
	s.Require().NoError(err)

	// Replace is cancel + add, so the transaction is guarded twice.
	s.transactionRepo.EXPECT().FindByID(gomock.Any(), txn.ID()).Return(txn, nil).Times(2)
	s.authRepo.EXPECT().FindByID(gomock.Any(), old.ID()).Return(old, nil)
	s.voidHandler.EXPECT().Void(gomock.Any(), old).Return(nil)
	s.authRepo.EXPECT().Update(gomock.Any(), old).Return(nil)
	s.authRepo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)

	record, err := s.ledger.Replace(context.Background(), old.ID(), s.addParams(txn))
	s.Require().NoError(err)
	s.Equal(authorization.StatusCanceled, old.Status())
	s.Equal(authorization.StatusCompleted, record.Status())
	s.NotEqual(old.ID(), record.ID())
}
