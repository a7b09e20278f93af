package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
	"github.com/sbilibin2017/gw-operation-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-operation-ledger/internal/services"
)

type errorMapping struct {
	target error
	status int
	code   string
	title  string
	entity string
}

// errorMappings is ordered: the first errors.Is match wins.
var errorMappings = []errorMapping{
	{services.ErrMissingData, http.StatusBadRequest, "0001", "Missing Fields in Request", ""},
	{services.ErrInvalidFormat, http.StatusBadRequest, "0002", "Invalid Field Format", ""},
	{services.ErrDataConsistency, http.StatusBadRequest, "0003", "Inconsistent Operation Data", "Operation"},
	{services.ErrParticipantsMismatch, http.StatusBadRequest, "0004", "Participants Mismatch", "TransactionType"},
	{services.ErrTransactionTypeNotFound, http.StatusNotFound, "0005", "Transaction Type Not Found", "TransactionType"},
	{services.ErrCurrencyNotFound, http.StatusNotFound, "0006", "Currency Not Found", "Currency"},
	{services.ErrWalletNotFound, http.StatusNotFound, "0007", "Wallet Not Found", "Wallet"},
	{services.ErrWalletAccountNotFound, http.StatusNotFound, "0008", "Wallet Account Not Found", "WalletAccount"},
	{services.ErrLimitTypeNotFound, http.StatusNotFound, "0009", "Limit Type Not Found", "LimitType"},
	{services.ErrGlobalLimitNotFound, http.StatusNotFound, "0010", "Global Limit Not Found", "GlobalLimit"},
	{services.ErrWalletAccountCacheNotFound, http.StatusNotFound, "0011", "Wallet Account Cache Not Found", "WalletAccount"},
	{services.ErrTransactionTypeNotActive, http.StatusConflict, "0012", "Transaction Type Not Active", "TransactionType"},
	{services.ErrUnsupportedTransactionTypeState, http.StatusConflict, "0013", "Unsupported Transaction Type State", "TransactionType"},
	{services.ErrCurrencyNotActive, http.StatusConflict, "0014", "Currency Not Active", "Currency"},
	{services.ErrWalletNotActive, http.StatusConflict, "0015", "Wallet Not Active", "Wallet"},
	{services.ErrWalletAccountNotActive, http.StatusConflict, "0016", "Wallet Account Not Active", "WalletAccount"},
	{repositories.ErrOperationAlreadyExists, http.StatusConflict, "0017", "Operation Already Exists", "Operation"},
	{repositories.ErrConcurrentModification, http.StatusConflict, "0018", "Concurrent Modification", ""},
	{services.ErrInsufficientFunds, http.StatusUnprocessableEntity, "0019", "Insufficient Funds", "WalletAccount"},
	{services.ErrInsufficientLimit, http.StatusUnprocessableEntity, "0020", "Insufficient Limit", "UserLimit"},
	{services.ErrInsufficientAvailableLimit, http.StatusUnprocessableEntity, "0021", "Insufficient Available Limit", "UserLimit"},
	{services.ErrAboveMaxAmount, http.StatusUnprocessableEntity, "0022", "Value Above Maximum Amount", "UserLimit"},
	{services.ErrUnderMinAmount, http.StatusUnprocessableEntity, "0023", "Value Under Minimum Amount", "UserLimit"},
	{services.ErrAboveMaxNighttimeAmount, http.StatusUnprocessableEntity, "0024", "Value Above Maximum Nighttime Amount", "UserLimit"},
	{services.ErrUnderMinNighttimeAmount, http.StatusUnprocessableEntity, "0025", "Value Under Minimum Nighttime Amount", "UserLimit"},
	{services.ErrQuotationNotFound, http.StatusFailedDependency, "0026", "Quotation Not Found", "StreamQuotation"},
}

var internalError = models.ErrorResponse{
	Code:    "0000",
	Title:   "Internal Server Error",
	Message: "Internal server error",
}

// toErrorResponse maps err to an HTTP status and a response body.
// Unknown errors become a 500 with a generic message.
func toErrorResponse(err error) (int, models.ErrorResponse) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}

		resp := models.ErrorResponse{
			Code:    m.code,
			Title:   m.title,
			Message: err.Error(),
			Entity:  m.entity,
		}

		var limitErr *services.LimitError
		var fundsErr *services.FundsError
		var fieldErr *services.FieldError
		switch {
		case errors.As(err, &limitErr):
			resp.Details = limitErr
		case errors.As(err, &fundsErr):
			resp.Details = fundsErr
		case errors.As(err, &fieldErr):
			resp.Details = map[string]string{"field": fieldErr.Field}
		}

		return m.status, resp
	}

	return http.StatusInternalServerError, internalError
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
