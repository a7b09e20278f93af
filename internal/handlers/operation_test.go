package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-operation-ledger/internal/logger"
	"github.com/sbilibin2017/gw-operation-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
	"github.com/sbilibin2017/gw-operation-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-operation-ledger/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCreateOperationHandler(t *testing.T) {
	ownerOpID := uuid.New()
	walletID := uuid.New()

	validBody := fmt.Sprintf(`{
		"transaction_type": "PIX_TRANSFER",
		"owner": {
			"operation_id": %q,
			"wallet_id": %q,
			"currency": "BRL",
			"raw_value": 100,
			"fee": 5,
			"description": "pix out"
		}
	}`, ownerOpID, walletID)

	tests := []struct {
		name               string
		body               string
		setupMocks         func(m *MockOperationCreator)
		expectedStatusCode int
		expectedCode       string
	}{
		{
			name: "created",
			body: validBody,
			setupMocks: func(m *MockOperationCreator) {
				m.EXPECT().
					Create(gomock.Any(), "PIX_TRANSFER", gomock.Any(), gomock.Nil()).
					DoAndReturn(func(_ context.Context, _ string, owner, _ *models.OperationParticipant) (*models.Operation, *models.Operation, error) {
						require.NotNil(t, owner)
						assert.Equal(t, ownerOpID, owner.OperationID)
						assert.Equal(t, walletID, owner.WalletID)
						assert.True(t, owner.RawValue.Equal(decimal.NewFromInt(100)))
						assert.True(t, owner.Fee.Equal(decimal.NewFromInt(5)))
						return &models.Operation{ID: ownerOpID, State: models.OperationStatePending}, nil, nil
					})
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "invalid body",
			body:               "not-json",
			setupMocks:         func(m *MockOperationCreator) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "0002",
		},
		{
			name: "missing data",
			body: validBody,
			setupMocks: func(m *MockOperationCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil, &services.FieldError{Err: services.ErrMissingData, Field: "owner.description"})
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "0001",
		},
		{
			name: "wallet not found",
			body: validBody,
			setupMocks: func(m *MockOperationCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil, fmt.Errorf("owner: %w", services.ErrWalletNotFound))
			},
			expectedStatusCode: http.StatusNotFound,
			expectedCode:       "0007",
		},
		{
			name: "duplicate operation",
			body: validBody,
			setupMocks: func(m *MockOperationCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil, repositories.ErrOperationAlreadyExists)
			},
			expectedStatusCode: http.StatusConflict,
			expectedCode:       "0017",
		},
		{
			name: "insufficient funds",
			body: validBody,
			setupMocks: func(m *MockOperationCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil, &services.FundsError{
						WalletAccountID: uuid.New(),
						Available:       decimal.NewFromInt(10),
						Value:           decimal.NewFromInt(105),
					})
			},
			expectedStatusCode: http.StatusUnprocessableEntity,
			expectedCode:       "0019",
		},
		{
			name: "daily limit exceeded",
			body: validBody,
			setupMocks: func(m *MockOperationCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil, &services.LimitError{
						Kind:   services.ErrInsufficientLimit,
						Period: services.PeriodDaily,
						Tier:   services.TierCompliance,
						Limit:  decimal.NewFromInt(50),
						Used:   decimal.NewFromInt(0),
						Value:  decimal.NewFromInt(105),
					})
			},
			expectedStatusCode: http.StatusUnprocessableEntity,
			expectedCode:       "0020",
		},
		{
			name: "quotation unavailable",
			body: validBody,
			setupMocks: func(m *MockOperationCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil, services.ErrQuotationNotFound)
			},
			expectedStatusCode: http.StatusFailedDependency,
			expectedCode:       "0026",
		},
		{
			name: "internal error",
			body: validBody,
			setupMocks: func(m *MockOperationCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "0000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockOperationCreator(ctrl)
			tt.setupMocks(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/operations", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			NewCreateOperationHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			if tt.expectedStatusCode == http.StatusCreated {
				var resp models.CreateOperationResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				require.NotNil(t, resp.OwnerOperation)
				assert.Equal(t, ownerOpID, resp.OwnerOperation.ID)
				assert.Nil(t, resp.BeneficiaryOperation)
				return
			}

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCode, resp.Code)
			assert.NotEmpty(t, resp.Title)
		})
	}
}

func TestToErrorResponse_Details(t *testing.T) {
	t.Run("limit error carries the rule", func(t *testing.T) {
		status, resp := toErrorResponse(&services.LimitError{
			Kind:   services.ErrAboveMaxAmount,
			Period: services.PeriodAmount,
			Tier:   services.TierUser,
			Limit:  decimal.NewFromInt(100),
			Value:  decimal.NewFromInt(150),
		})
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "UserLimit", resp.Entity)

		details, ok := resp.Details.(*services.LimitError)
		require.True(t, ok)
		assert.Equal(t, services.TierUser, details.Tier)
	})

	t.Run("field error carries the field", func(t *testing.T) {
		status, resp := toErrorResponse(&services.FieldError{Err: services.ErrInvalidFormat, Field: "owner.raw_value"})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, map[string]string{"field": "owner.raw_value"}, resp.Details)
	})

	t.Run("concurrent modification", func(t *testing.T) {
		status, resp := toErrorResponse(fmt.Errorf("block balance: %w", repositories.ErrConcurrentModification))
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "0018", resp.Code)
	})

	t.Run("unknown errors hide the message", func(t *testing.T) {
		status, resp := toErrorResponse(fmt.Errorf("pq: connection reset"))
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "Internal server error", resp.Message)
		assert.Nil(t, resp.Details)
	})
}

func TestCreateOperationHandler_LogsRequestID(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = prev })

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockOperationCreator(ctrl)
	svc.EXPECT().Create(gomock.Any(), "PIX_TRANSFER", gomock.Any(), gomock.Any()).
		Return(nil, nil, services.ErrInsufficientFunds)

	handler := middlewares.LoggingMiddleware(NewCreateOperationHandler(svc))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/operations", strings.NewReader(`{"transaction_type":"PIX_TRANSFER"}`))
	req.Header.Set("X-Request-ID", "req-42")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	entries := logs.FilterMessage("operation rejected").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
}
