package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-operation-ledger/internal/logger"
	"github.com/sbilibin2017/gw-operation-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
)

// OperationCreator defines the interface that the service must implement.
type OperationCreator interface {
	Create(
		ctx context.Context,
		transactionTypeTag string,
		owner, beneficiary *models.OperationParticipant,
	) (ownerOp, beneficiaryOp *models.Operation, err error)
}

// NewCreateOperationHandler returns an HTTP handler that creates pending ledger operations.
// @Summary Create operation
// @Description Creates one shared, one single-sided or two linked pending operations. Stages balance deltas, checks funds, credit and user limits, and blocks the owner balance.
// @Tags operations
// @Accept json
// @Produce json
// @Param request body models.CreateOperationRequest true "Create Operation Request"
// @Success 201 {object} models.CreateOperationResponse "Operations created"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Referenced entity not found"
// @Failure 409 {object} models.ErrorResponse "Entity state conflict"
// @Failure 422 {object} models.ErrorResponse "Insufficient funds or limit"
// @Failure 424 {object} models.ErrorResponse "Quotation unavailable"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /operations [post]
// @Security BearerAuth
func NewCreateOperationHandler(svc OperationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.Log.With(
			"request_id", middlewares.GetRequestIDFromContext(ctx),
			"caller_id", middlewares.GetUserIDFromContext(ctx),
		)

		var req models.CreateOperationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorw("failed to decode create operation request", "error", err)
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
				Code:    "0002",
				Title:   "Invalid Field Format",
				Message: "Invalid request body",
			})
			return
		}

		ownerOp, beneficiaryOp, err := svc.Create(ctx, req.TransactionType, req.Owner, req.Beneficiary)
		if err != nil {
			status, resp := toErrorResponse(err)
			if status == http.StatusInternalServerError {
				log.Errorw("failed to create operation", "transaction_type", req.TransactionType, "error", err)
			} else {
				log.Warnw("operation rejected", "transaction_type", req.TransactionType, "code", resp.Code, "error", err)
			}
			writeJSON(w, status, resp)
			return
		}

		writeJSON(w, http.StatusCreated, models.CreateOperationResponse{
			OwnerOperation:       ownerOp,
			BeneficiaryOperation: beneficiaryOp,
		})
	}
}
