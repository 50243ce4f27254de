package services

import (
	"context"
	"testing"

	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReturnService(t *testing.T) (ReturnService, *fakeReturnRepo) {
	t.Helper()
	repo := newFakeReturnRepo()
	return NewReturnService(repo, testLogger()), repo
}

func createReturnRequest() *models.CreateReturnRequest {
	return &models.CreateReturnRequest{
		Name:    "Amina Berrada",
		Phone:   "+212600000000",
		Email:   "amina@example.com",
		Reason:  models.ReturnReasonSize,
		OrderID: "o_12345678",
		Details: "Too small",
	}
}

func TestReturnCreate(t *testing.T) {
	service, _ := newReturnService(t)
	ctx := context.Background()

	request, err := service.Create(ctx, createReturnRequest())
	require.NoError(t, err)

	assert.Equal(t, models.ReturnStatusRequested, request.Status)
	assert.Equal(t, models.ReturnReasonSize, request.Reason)
	assert.NotEmpty(t, request.ID)

	fetched, err := service.GetByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, request.Email, fetched.Email)
}

// The order id on a return is a label: creating a return for an order
// that does not exist still succeeds.
func TestReturnCreateDoesNotCheckOrder(t *testing.T) {
	service, _ := newReturnService(t)

	req := createReturnRequest()
	req.OrderID = "o_never_existed"

	request, err := service.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "o_never_existed", request.OrderID)
}

func TestReturnTransition(t *testing.T) {
	ctx := context.Background()

	create := func(t *testing.T, service ReturnService) *models.ReturnRequest {
		t.Helper()
		request, err := service.Create(ctx, createReturnRequest())
		require.NoError(t, err)
		return request
	}

	t.Run("approval path ends refunded", func(t *testing.T) {
		service, _ := newReturnService(t)
		request := create(t, service)

		for _, status := range []models.ReturnStatus{
			models.ReturnStatusApproved,
			models.ReturnStatusReceived,
			models.ReturnStatusRefunded,
		} {
			updated, err := service.Transition(ctx, request.ID, status)
			require.NoError(t, err)
			assert.Equal(t, status, updated.Status)
		}

		_, err := service.Transition(ctx, request.ID, models.ReturnStatusRequested)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		service, _ := newReturnService(t)
		request := create(t, service)

		_, err := service.Transition(ctx, request.ID, models.ReturnStatusRejected)
		require.NoError(t, err)

		_, err = service.Transition(ctx, request.ID, models.ReturnStatusApproved)
		domainErr, ok := AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, utils.CodeInvalidTransition, domainErr.Code)
	})

	t.Run("cannot skip the received step", func(t *testing.T) {
		service, _ := newReturnService(t)
		request := create(t, service)

		_, err := service.Transition(ctx, request.ID, models.ReturnStatusApproved)
		require.NoError(t, err)

		_, err = service.Transition(ctx, request.ID, models.ReturnStatusRefunded)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown status", func(t *testing.T) {
		service, _ := newReturnService(t)
		request := create(t, service)

		_, err := service.Transition(ctx, request.ID, "misplaced")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}
