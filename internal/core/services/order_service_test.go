package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/changifyhq/changify-backend/internal/apperrors"
	"github.com/changifyhq/changify-backend/internal/core/domain"
	portssvc "github.com/changifyhq/changify-backend/internal/core/ports/services"
	"github.com/changifyhq/changify-backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByRequester(ctx context.Context, requesterID string, limit int) ([]domain.Order, error) {
	args := m.Called(ctx, requesterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListActiveOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListCompletedOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, order domain.Order, change domain.OrderStatusChange) error {
	args := m.Called(ctx, order, change)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, updated domain.Order, expectedStatus domain.OrderStatus, change domain.OrderStatusChange) error {
	args := m.Called(ctx, updated, expectedStatus, change)
	return args.Error(0)
}

// --- Mock RoleResolver ---
type MockRoleResolver struct {
	mock.Mock
}

func (m *MockRoleResolver) ResolveRole(ctx context.Context, actorID string) (domain.UserRole, error) {
	args := m.Called(ctx, actorID)
	return args.Get(0).(domain.UserRole), args.Error(1)
}

// --- Mock Dispatcher ---
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) DispatchOrderEvent(ctx context.Context, event domain.OrderEvent) {
	m.Called(ctx, event)
}

// --- Test Suite ---
type OrderServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockOrderRepository
	mockRoles      *MockRoleResolver
	mockDispatcher *MockDispatcher
	service        portssvc.OrderSvcFacade

	requesterID string
	operatorID  string
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockOrderRepository)
	suite.mockRoles = new(MockRoleResolver)
	suite.mockDispatcher = new(MockDispatcher)
	suite.service = services.NewOrderService(suite.mockRepo, suite.mockRoles, suite.mockDispatcher)
	suite.requesterID = uuid.NewString()
	suite.operatorID = uuid.NewString()
}

func (suite *OrderServiceTestSuite) newOrder(status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		OrderID:                 uuid.NewString(),
		RequesterID:             suite.requesterID,
		FromCurrencyCode:        "USDT",
		ToCurrencyCode:          "UAH",
		AmountFrom:              decimal.NewFromInt(100),
		AmountTo:                decimal.RequireFromString("4170"),
		Rate:                    decimal.RequireFromString("41.70"),
		RequesterPaymentDetails: "5375 4141 0000 1111",
		Status:                  status,
		CreatedAt:               time.Now().Add(-time.Hour),
		UpdatedAt:               time.Now().Add(-time.Hour),
	}
}

func (suite *OrderServiceTestSuite) expectOperator(actorID string) {
	suite.mockRoles.On("ResolveRole", mock.Anything, actorID).Return(domain.RoleManager, nil).Once()
}

// --- CreateOrderFromDraft ---

func (suite *OrderServiceTestSuite) TestCreateOrderFromDraft_Success() {
	ctx := context.Background()
	bankID := uuid.NewString()
	draft := domain.DraftSession{
		ActorID:          suite.requesterID,
		Step:             domain.DraftStepConfirm,
		FromCurrencyCode: "USDT",
		ToCurrencyCode:   "UAH",
		Rate:             decimal.RequireFromString("41.70"),
		AmountFrom:       decimal.NewFromInt(100),
		AmountTo:         decimal.RequireFromString("4170"),
		BankID:           &bankID,
		PaymentDetails:   "5375 4141 0000 1111",
	}

	suite.mockRepo.On("CreateOrder", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.Status == domain.OrderStatusCreated &&
			o.RequesterID == suite.requesterID &&
			o.OperatorID == nil &&
			o.Rate.Equal(draft.Rate) &&
			o.AmountTo.Equal(draft.AmountTo) &&
			o.BankID == &bankID
	}), mock.MatchedBy(func(c domain.OrderStatusChange) bool {
		return c.ToStatus == domain.OrderStatusCreated && c.ActorID == suite.requesterID
	})).Return(nil).Once()
	suite.mockDispatcher.On("DispatchOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Kind == domain.OrderEventCreated && e.ActorID == suite.requesterID
	})).Once()

	order, err := suite.service.CreateOrderFromDraft(ctx, draft)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.NotEmpty(order.OrderID)
	suite.Equal(domain.OrderStatusCreated, order.Status)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockDispatcher.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrderFromDraft_RepoError() {
	ctx := context.Background()
	draft := domain.DraftSession{ActorID: suite.requesterID, Step: domain.DraftStepConfirm}

	suite.mockRepo.On("CreateOrder", ctx, mock.AnythingOfType("domain.Order"), mock.AnythingOfType("domain.OrderStatusChange")).Return(assert.AnError).Once()

	order, err := suite.service.CreateOrderFromDraft(ctx, draft)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, assert.AnError)
	suite.mockDispatcher.AssertNotCalled(suite.T(), "DispatchOrderEvent", mock.Anything, mock.Anything)
}

// --- Accept ---

func (suite *OrderServiceTestSuite) TestAccept_Success() {
	ctx := context.Background()
	order := suite.newOrder(domain.OrderStatusCreated)

	suite.expectOperator(suite.operatorID)
	suite.mockRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockRepo.On("UpdateOrderStatus", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.Status == domain.OrderStatusAwaitingPayment && o.OperatorID != nil && *o.OperatorID == suite.operatorID
	}), domain.OrderStatusCreated, mock.MatchedBy(func(c domain.OrderStatusChange) bool {
		return c.FromStatus == domain.OrderStatusCreated && c.ToStatus == domain.OrderStatusAwaitingPayment && c.ActorID == suite.operatorID
	})).Return(nil).Once()
	suite.mockDispatcher.On("DispatchOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Kind == domain.OrderEventAccepted
	})).Once()

	updated, err := suite.service.Accept(ctx, order.OrderID, suite.operatorID)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderStatusAwaitingPayment, updated.Status)
	suite.Require().NotNil(updated.OperatorID)
	suite.Equal(suite.operatorID, *updated.OperatorID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockDispatcher.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestAccept_ForbiddenForPlainUser() {
	ctx := context.Background()

	suite.mockRoles.On("ResolveRole", mock.Anything, suite.requesterID).Return(domain.RoleUser, nil).Once()

	updated, err := suite.service.Accept(ctx, uuid.NewString(), suite.requesterID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindOrderByID", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestAccept_AlreadyAccepted() {
	ctx := context.Background()
	order := suite.newOrder(domain.OrderStatusAwaitingPayment)

	suite.expectOperator(suite.operatorID)
	suite.mockRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()

	updated, err := suite.service.Accept(ctx, order.OrderID, suite.operatorID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrStaleState)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockDispatcher.AssertNotCalled(suite.T(), "DispatchOrderEvent", mock.Anything, mock.Anything)
}

// Two operators race for the same order: the second conditional write loses
// and must surface as stale state without dispatching anything.
func (suite *OrderServiceTestSuite) TestAccept_LostRace() {
	ctx := context.Background()
	order := suite.newOrder(domain.OrderStatusCreated)

	suite.expectOperator(suite.operatorID)
	suite.mockRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockRepo.On("UpdateOrderStatus", ctx, mock.AnythingOfType("domain.Order"), domain.OrderStatusCreated, mock.AnythingOfType("domain.OrderStatusChange")).Return(apperrors.ErrStaleState).Once()

	updated, err := suite.service.Accept(ctx, order.OrderID, suite.operatorID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrStaleState)
	suite.mockDispatcher.AssertNotCalled(suite.T(), "DispatchOrderEvent", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestAccept_NotFound() {
	ctx := context.Background()
	orderID := uuid.NewString()

	suite.expectOperator(suite.operatorID)
	suite.mockRepo.On("FindOrderByID", ctx, orderID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.Accept(ctx, orderID, suite.operatorID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Release ---

func (suite *OrderServiceTestSuite) TestRelease_Success() {
	ctx := context.Background()
	order := suite.newOrder(domain.OrderStatusAwaitingPayment)
	order.OperatorID = &suite.operatorID
	details := "IBAN UA00 0000"
	order.OperatorPaymentDetails = &details

	suite.expectOperator(suite.operatorID)
	suite.mockRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockRepo.On("UpdateOrderStatus", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.Status == domain.OrderStatusCreated && o.OperatorID == nil && o.OperatorPaymentDetails == nil
	}), domain.OrderStatusAwaitingPayment, mock.AnythingOfType("domain.OrderStatusChange")).Return(nil).Once()
	suite.mockDispatcher.On("DispatchOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Kind == domain.OrderEventReleased
	})).Once()

	updated, err := suite.service.Release(ctx, order.OrderID, suite.operatorID)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderStatusCreated, updated.Status)
	suite.Nil(updated.OperatorID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestRelease_OtherOperatorForbidden() {
	ctx := context.Background()
	order := suite.newOrder(domain.OrderStatusAwaitingPayment)
	boundOperator := uuid.NewString()
	order.OperatorID = &boundOperator

	suite.expectOperator(suite.operatorID)
	suite.mockRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()

	updated, err := suite.service.Release(ctx, order.OrderID, suite.operatorID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- Payment details / confirmation ---

func (suite *OrderServiceTestSuite) TestProvidePaymentDetails_Success() {
	ctx := context.Background()
	order := suite.newOrder(domain.OrderStatusAwaitingPayment)
	order.OperatorID = &suite.operatorID

	suite.expectOperator(suite.operatorID)
	suite.mockRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockRepo.On("UpdateOrderStatus", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.Status == domain.OrderStatusAwaitingPayment && o.OperatorPaymentDetails != nil && *o.OperatorPaymentDetails == "IBAN UA12 3456"
	}), domain.OrderStatusAwaitingPayment, mock.AnythingOfType("domain.OrderStatusChange")).Return(nil).Once()
	suite.mockDispatcher.On("DispatchOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Kind == domain.OrderEventPaymentDetails
	})).Once()

	updated, err := suite.service.ProvidePaymentDetails(ctx, order.OrderID, suite.operatorID, "IBAN UA12 3456")

	suite.Require().NoError(err)
	suite.Require().NotNil(updated.OperatorPaymentDetails)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestProvidePaymentDetails_EmptyRejected() {
	ctx := context.Background()

	suite.expectOperator(suite.operatorID)

	updated, err := suite.service.ProvidePaymentDetails(ctx, uuid.NewString(), suite.operatorID, "   ")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestMarkPaid_Success() {
	ctx := context.Background()
	order := suite.newOrder(domain.OrderStatusAwaitingPayment)

	suite.mockRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockRepo.On("UpdateOrderStatus", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.Status == domain.OrderStatusPaymentConfirmed
	}), domain.OrderStatusAwaitingPayment, mock.AnythingOfType("domain.OrderStatusChange")).Return(nil).Once()
	suite.mockDispatcher.On("DispatchOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Kind == domain.OrderEventPaymentConfirmed
	})).Once()

	updated, err := suite.service.MarkPaid(ctx, order.OrderID, suite.requesterID)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderStatusPaymentConfirmed, updated.Status)
}

func (suite *OrderServiceTestSuite) TestMarkPaid_StrangerForbidden() {
	ctx := context.Background()
	order := suite.newOrder(domain.OrderStatusAwaitingPayment)
	stranger := uuid.NewString()

	suite.mockRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()

	updated, err := suite.service.MarkPaid(ctx, order.OrderID, stranger)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- Complete ---

func (suite *OrderServiceTestSuite) TestComplete_SetsCompletedAt() {
	ctx := context.Background()
	order := suite.newOrder(domain.OrderStatusPaymentConfirmed)
	order.OperatorID = &suite.operatorID

	suite.expectOperator(suite.operatorID)
	suite.mockRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockRepo.On("UpdateOrderStatus", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.Status == domain.OrderStatusCompleted && o.CompletedAt != nil
	}), domain.OrderStatusPaymentConfirmed, mock.AnythingOfType("domain.OrderStatusChange")).Return(nil).Once()
	suite.mockDispatcher.On("DispatchOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Kind == domain.OrderEventCompleted
	})).Once()

	updated, err := suite.service.Complete(ctx, order.OrderID, suite.operatorID)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderStatusCompleted, updated.Status)
	suite.Require().NotNil(updated.CompletedAt)
}

// --- Reject ---

func (suite *OrderServiceTestSuite) TestReject_RequiresReason() {
	ctx := context.Background()

	suite.expectOperator(suite.operatorID)

	updated, err := suite.service.Reject(ctx, uuid.NewString(), suite.operatorID, "  ")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindOrderByID", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestReject_Success() {
	ctx := context.Background()
	order := suite.newOrder(domain.OrderStatusAwaitingPayment)

	suite.expectOperator(suite.operatorID)
	suite.mockRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockRepo.On("UpdateOrderStatus", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.Status == domain.OrderStatusCancelled && o.RejectionReason != nil && *o.RejectionReason == "rate expired"
	}), domain.OrderStatusAwaitingPayment, mock.MatchedBy(func(c domain.OrderStatusChange) bool {
		return c.Reason != nil && *c.Reason == "rate expired"
	})).Return(nil).Once()
	suite.mockDispatcher.On("DispatchOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Kind == domain.OrderEventRejected
	})).Once()

	updated, err := suite.service.Reject(ctx, order.OrderID, suite.operatorID, "rate expired")

	suite.Require().NoError(err)
	suite.Equal(domain.OrderStatusCancelled, updated.Status)
}

func (suite *OrderServiceTestSuite) TestReject_TerminalOrderStale() {
	ctx := context.Background()
	order := suite.newOrder(domain.OrderStatusCompleted)

	suite.expectOperator(suite.operatorID)
	suite.mockRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()

	updated, err := suite.service.Reject(ctx, order.OrderID, suite.operatorID, "too late")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrStaleState)
}

// --- Cancel ---

func (suite *OrderServiceTestSuite) TestCancel_Success() {
	ctx := context.Background()
	order := suite.newOrder(domain.OrderStatusCreated)

	suite.mockRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockRepo.On("UpdateOrderStatus", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.Status == domain.OrderStatusCancelled
	}), domain.OrderStatusCreated, mock.AnythingOfType("domain.OrderStatusChange")).Return(nil).Once()
	suite.mockDispatcher.On("DispatchOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Kind == domain.OrderEventCancelled
	})).Once()

	updated, err := suite.service.Cancel(ctx, order.OrderID, suite.requesterID)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderStatusCancelled, updated.Status)
}

func (suite *OrderServiceTestSuite) TestCancel_CompletedOrderStale() {
	ctx := context.Background()
	order := suite.newOrder(domain.OrderStatusCompleted)

	suite.mockRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()

	updated, err := suite.service.Cancel(ctx, order.OrderID, suite.requesterID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrStaleState)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCancel_StrangerForbidden() {
	ctx := context.Background()
	order := suite.newOrder(domain.OrderStatusCreated)
	stranger := uuid.NewString()

	suite.mockRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()

	updated, err := suite.service.Cancel(ctx, order.OrderID, stranger)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- Queries ---

func (suite *OrderServiceTestSuite) TestGetOrder_RequesterSeesOwn() {
	ctx := context.Background()
	order := suite.newOrder(domain.OrderStatusCreated)

	suite.mockRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()

	found, err := suite.service.GetOrder(ctx, order.OrderID, suite.requesterID)

	suite.Require().NoError(err)
	suite.Equal(order, found)
	suite.mockRoles.AssertNotCalled(suite.T(), "ResolveRole", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestGetOrder_StrangerForbidden() {
	ctx := context.Background()
	order := suite.newOrder(domain.OrderStatusCreated)
	stranger := uuid.NewString()

	suite.mockRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockRoles.On("ResolveRole", mock.Anything, stranger).Return(domain.RoleUser, nil).Once()

	found, err := suite.service.GetOrder(ctx, order.OrderID, stranger)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *OrderServiceTestSuite) TestGetOrder_OperatorSeesAll() {
	ctx := context.Background()
	order := suite.newOrder(domain.OrderStatusCreated)

	suite.mockRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.expectOperator(suite.operatorID)

	found, err := suite.service.GetOrder(ctx, order.OrderID, suite.operatorID)

	suite.Require().NoError(err)
	suite.Equal(order, found)
}

func (suite *OrderServiceTestSuite) TestListQueue_OperatorOnly() {
	ctx := context.Background()

	suite.mockRoles.On("ResolveRole", mock.Anything, suite.requesterID).Return(domain.RoleUser, nil).Once()

	orders, err := suite.service.ListQueue(ctx, suite.requesterID)

	suite.Require().Error(err)
	suite.Nil(orders)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListActiveOrders", mock.Anything)
}

func (suite *OrderServiceTestSuite) TestListMyOrders_EmptyIsNotNil() {
	ctx := context.Background()

	suite.mockRepo.On("ListOrdersByRequester", ctx, suite.requesterID, 20).Return(nil, nil).Once()

	orders, err := suite.service.ListMyOrders(ctx, suite.requesterID, 20)

	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
