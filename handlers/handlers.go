package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/commercegate/helcim-gateway/config"
	"github.com/commercegate/helcim-gateway/conversions"
	"github.com/commercegate/helcim-gateway/fields"
	"github.com/commercegate/helcim-gateway/gateway"
	"github.com/commercegate/helcim-gateway/keys"
	"github.com/commercegate/helcim-gateway/models"
	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/pat"
)

var validate = validator.New()

// Init registers the gateway endpoints beneath the application base path
func Init(r *pat.Router, gw *gateway.Gateway) {
	log.Info("initialising endpoints beneath basePath: /helcim-gateway")

	appRouter := r.PathPrefix("/helcim-gateway").Subrouter()

	appRouter.Path("/healthcheck").Methods("GET").HandlerFunc(HealthCheck)
	appRouter.Path("/transactions/purchase").Methods("POST").HandlerFunc(cardTransactionHandler(gw.Purchase))
	appRouter.Path("/transactions/preauthorize").Methods("POST").HandlerFunc(cardTransactionHandler(gw.Preauthorize))
	appRouter.Path("/transactions/refund").Methods("POST").HandlerFunc(cardTransactionHandler(gw.Refund))
	appRouter.Path("/transactions/verify").Methods("POST").HandlerFunc(cardTransactionHandler(gw.Verify))
	appRouter.Path("/transactions/capture").Methods("POST").HandlerFunc(captureHandler(gw))
	appRouter.Path("/tokens").Methods("GET").HandlerFunc(listTokensHandler(gw))
}

// TransactionRequest is the JSON body accepted by the transaction endpoints.
// Only supplied fields are forwarded to the engine; field-level schema checks
// remain the engine's job, these tags just reject obviously malformed input
// before a vendor call is attempted.
type TransactionRequest struct {
	Amount             string `json:"amount" validate:"omitempty,numeric"`
	OrderNumber        string `json:"order_number"`
	CustomerCode       string `json:"customer_code"`
	Token              string `json:"token"`
	TokenF4L4          string `json:"token_f4l4" validate:"omitempty,len=8,numeric"`
	TokenF4L4Skip      bool   `json:"token_f4l4_skip"`
	CCNumber           string `json:"cc_number" validate:"omitempty,numeric"`
	CCExpiry           string `json:"cc_expiry" validate:"omitempty,len=4,numeric"`
	CCCVV              string `json:"cc_cvv" validate:"omitempty,min=3,max=4,numeric"`
	CCName             string `json:"cc_name"`
	CCAddress          string `json:"cc_address"`
	CCPostalCode       string `json:"cc_postal_code"`
	Mag                string `json:"mag"`
	MagEnc             string `json:"mag_enc"`
	MagEncSerialNumber string `json:"mag_enc_serial_number"`
	Ecommerce          bool   `json:"ecommerce"`
	Comments           string `json:"comments"`
	IPAddress          string `json:"ip_address" validate:"omitempty,ip"`
	TransactionID      int    `json:"transaction_id"`
	SaveToken          bool   `json:"save_token"`
	UserReference      string `json:"user_reference"`
}

// TransactionResponse is the JSON reply for a completed transaction. Values
// come from the redacted record, so policy-scrubbed fields are empty.
type TransactionResponse struct {
	TransactionSuccess bool   `json:"transaction_success"`
	ResponseMessage    string `json:"response_message"`
	Notice             string `json:"notice"`
	TransactionType    string `json:"transaction_type"`
	TransactionID      int    `json:"transaction_id"`
	Amount             string `json:"amount,omitempty"`
	Currency           string `json:"currency,omitempty"`
	CCNumber           string `json:"cc_number,omitempty"`
	CCType             string `json:"cc_type,omitempty"`
	Token              string `json:"token,omitempty"`
	TokenF4L4          string `json:"token_f4l4,omitempty"`
	ApprovalCode       string `json:"approval_code,omitempty"`
	AVSResponse        string `json:"avs_response,omitempty"`
	CVVResponse        string `json:"cvv_response,omitempty"`
	OrderNumber        string `json:"order_number,omitempty"`
	CustomerCode       string `json:"customer_code,omitempty"`
}

// TokenResponse is a single stored vault token, decorated with its canonical
// card brand for display.
type TokenResponse struct {
	ID           string `json:"id"`
	TokenF4L4    string `json:"token_f4l4"`
	CCType       string `json:"cc_type,omitempty"`
	Brand        string `json:"brand,omitempty"`
	CustomerCode string `json:"customer_code,omitempty"`
}

type cardTransaction func(details conversions.FieldSet, opts gateway.Options) (*models.TransactionResourceDao, *models.TokenResourceDao, error)

func cardTransactionHandler(transact cardTransaction) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {

		request, ok := decodeTransactionRequest(w, req)
		if !ok {
			return
		}

		transaction, _, err := transact(request.fieldSet(), request.options())
		if err != nil {
			writeTransactionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newTransactionResponse(transaction))
	}
}

func captureHandler(gw *gateway.Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {

		request, ok := decodeTransactionRequest(w, req)
		if !ok {
			return
		}

		transaction, err := gw.Capture(request.fieldSet(), request.options())
		if err != nil {
			writeTransactionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newTransactionResponse(transaction))
	}
}

func listTokensHandler(gw *gateway.Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {

		owner := req.URL.Query().Get("owner")
		if owner == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "owner query parameter is required"})
			return
		}

		tokens, err := gw.SavedTokens(owner)
		if err != nil {
			log.Error(err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "unable to list tokens"})
			return
		}

		brandMap, err := config.GetCardBrandMap()
		if err != nil {
			log.Error(err)
			brandMap = &config.CardBrandMap{}
		}

		response := make([]TokenResponse, 0, len(tokens))
		for _, token := range tokens {
			response = append(response, TokenResponse{
				ID:           token.ID.Hex(),
				TokenF4L4:    token.TokenF4L4,
				CCType:       token.CCType,
				Brand:        brandMap.Brands[token.CCType],
				CustomerCode: token.CustomerCode,
			})
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func decodeTransactionRequest(w http.ResponseWriter, req *http.Request) (*TransactionRequest, bool) {

	var request TransactionRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return nil, false
	}

	if err := validate.Struct(&request); err != nil {
		log.Trace("transaction request failed validation", log.Data{keys.Request: err.Error()})
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return nil, false
	}

	return &request, true
}

// fieldSet converts the request into the engine's field map, carrying only
// the fields the caller actually supplied.
func (r *TransactionRequest) fieldSet() conversions.FieldSet {
	details := conversions.FieldSet{}

	strings := map[string]string{
		"amount":                r.Amount,
		"order_number":          r.OrderNumber,
		"customer_code":         r.CustomerCode,
		"token":                 r.Token,
		"token_f4l4":            r.TokenF4L4,
		"cc_number":             r.CCNumber,
		"cc_expiry":             r.CCExpiry,
		"cc_cvv":                r.CCCVV,
		"cc_name":               r.CCName,
		"cc_address":            r.CCAddress,
		"cc_postal_code":        r.CCPostalCode,
		"mag":                   r.Mag,
		"mag_enc":               r.MagEnc,
		"mag_enc_serial_number": r.MagEncSerialNumber,
		"comments":              r.Comments,
		"ip_address":            r.IPAddress,
	}
	for name, value := range strings {
		if value != "" {
			details[name] = value
		}
	}

	if r.TokenF4L4Skip {
		details["token_f4l4_skip"] = true
	}
	if r.Ecommerce {
		details["ecommerce"] = true
	}
	if r.TransactionID != 0 {
		details["transaction_id"] = r.TransactionID
	}

	return details
}

func (r *TransactionRequest) options() gateway.Options {
	return gateway.Options{
		SaveToken:     r.SaveToken,
		UserReference: r.UserReference,
	}
}

func newTransactionResponse(transaction *models.TransactionResourceDao) TransactionResponse {
	return TransactionResponse{
		TransactionSuccess: transaction.TransactionSuccess,
		ResponseMessage:    transaction.ResponseMessage,
		Notice:             transaction.Notice,
		TransactionType:    transaction.TransactionType,
		TransactionID:      transaction.TransactionID,
		Amount:             transaction.Amount,
		Currency:           transaction.Currency,
		CCNumber:           transaction.CCNumber,
		CCType:             transaction.CCType,
		Token:              transaction.Token,
		TokenF4L4:          transaction.TokenF4L4,
		ApprovalCode:       transaction.ApprovalCode,
		AVSResponse:        transaction.AVSResponse,
		CVVResponse:        transaction.CVVResponse,
		OrderNumber:        transaction.OrderNumber,
		CustomerCode:       transaction.CustomerCode,
	}
}

// writeTransactionError maps engine and gateway errors onto HTTP statuses:
// caller mistakes are 400s, vendor declines are 402s, connectivity is a 502.
func writeTransactionError(w http.ResponseWriter, err error) {

	var (
		unknownField  *fields.UnknownFieldError
		noMethod      *conversions.NoPaymentMethodError
		payment       *gateway.PaymentError
		refund        *gateway.RefundError
		verification  *gateway.VerificationError
		processing    *gateway.ProcessingError
		missingField  *conversions.MissingRequiredFieldError
		tokenSaveFail *gateway.TokenSaveProcessingError
	)

	status := http.StatusBadRequest
	switch {
	case errors.As(err, &payment), errors.As(err, &refund), errors.As(err, &verification):
		status = http.StatusPaymentRequired
	case errors.As(err, &processing):
		status = http.StatusBadGateway
	case errors.As(err, &missingField):
		status = http.StatusBadGateway
	case errors.As(err, &tokenSaveFail):
		status = http.StatusConflict
	case errors.As(err, &unknownField), errors.As(err, &noMethod):
		status = http.StatusBadRequest
	}

	log.Trace("transaction failed", log.Data{keys.Request: err.Error(), keys.StatusCode: status})
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error(err)
	}
}
