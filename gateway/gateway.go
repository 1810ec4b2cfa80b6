// Package gateway orchestrates transactions against the vendor commerce API:
// it resolves the payment method, validates and assembles the request,
// submits it, normalises and redacts the reply, persists the audit record and
// publishes a processed event.
package gateway

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/commercegate/helcim-gateway/config"
	"github.com/commercegate/helcim-gateway/conversions"
	"github.com/commercegate/helcim-gateway/dao"
	"github.com/commercegate/helcim-gateway/data"
	"github.com/commercegate/helcim-gateway/events"
	"github.com/commercegate/helcim-gateway/keys"
	"github.com/commercegate/helcim-gateway/models"
	"github.com/commercegate/helcim-gateway/redact"
	"github.com/companieshouse/chs.go/log"
)

// Transaction type codes persisted against each record.
const (
	TypePurchase     = "s"
	TypePreauthorize = "p"
	TypeCapture      = "c"
	TypeRefund       = "r"
	TypeVerify       = "v"
)

// wireTransactionTypes maps a type code to the transactionType value the
// vendor api expects.
var wireTransactionTypes = map[string]string{
	TypePurchase:     "purchase",
	TypePreauthorize: "preauth",
	TypeCapture:      "capture",
	TypeRefund:       "refund",
	TypeVerify:       "verify",
}

// Options carries per-transaction settings from the caller.
type Options struct {
	// SaveToken requests that the card token returned by the vendor is saved
	// to the vault. Honoured only when the vault is enabled.
	SaveToken bool
	// UserReference identifies the application user a saved token belongs to.
	UserReference string
	// Passthrough fields are appended to the wire request verbatim, without
	// validation.
	Passthrough map[string]string
}

// Gateway executes transactions against the vendor commerce API
type Gateway struct {
	APIURL          string
	Credentials     conversions.APICredentials
	APITest         bool
	Policy          redact.Policy
	VaultEnabled    bool
	VaultIdentifier string
	Client          *http.Client
	Poster          Poster
	Parser          *conversions.Parser
	DAO             dao.DAO
	Publisher       events.Publisher
}

// New creates a Gateway from the service config and its collaborators.
// publisher may be nil, in which case no events are published.
func New(cfg *config.Config, daoService dao.DAO, publisher events.Publisher) *Gateway {

	return &Gateway{
		APIURL: cfg.APIURL,
		Credentials: conversions.APICredentials{
			AccountID:  cfg.AccountID,
			APIToken:   cfg.APIToken,
			TerminalID: cfg.TerminalID,
		},
		APITest:         cfg.APITest,
		Policy:          cfg.RedactionPolicy(),
		VaultEnabled:    cfg.EnableTokenVault,
		VaultIdentifier: cfg.TokenVaultIdentifier,
		Client:          &http.Client{},
		Poster:          NewPoster(),
		Parser:          conversions.NewParser(),
		DAO:             daoService,
		Publisher:       publisher,
	}
}

// RedactionPolicy returns the policy applied to every persisted record.
func (g *Gateway) RedactionPolicy() redact.Policy {
	return g.Policy
}

// Purchase makes a purchase transaction.
func (g *Gateway) Purchase(details conversions.FieldSet, opts Options) (*models.TransactionResourceDao, *models.TokenResourceDao, error) {
	return g.cardTransaction(details, opts, TypePurchase)
}

// Preauthorize makes a pre-authorization transaction.
func (g *Gateway) Preauthorize(details conversions.FieldSet, opts Options) (*models.TransactionResourceDao, *models.TokenResourceDao, error) {
	return g.cardTransaction(details, opts, TypePreauthorize)
}

// Refund makes a refund transaction.
func (g *Gateway) Refund(details conversions.FieldSet, opts Options) (*models.TransactionResourceDao, *models.TokenResourceDao, error) {
	return g.cardTransaction(details, opts, TypeRefund)
}

// Verify makes a card verification transaction.
func (g *Gateway) Verify(details conversions.FieldSet, opts Options) (*models.TransactionResourceDao, *models.TokenResourceDao, error) {
	return g.cardTransaction(details, opts, TypeVerify)
}

// Capture completes a previously pre-authorized transaction. No payment
// method is resolved; the pre-auth transaction id identifies the funds.
func (g *Gateway) Capture(details conversions.FieldSet, opts Options) (*models.TransactionResourceDao, error) {

	if _, ok := details["transaction_id"]; !ok {
		return nil, &PaymentError{Message: "transaction ID must be provided with capture request"}
	}

	transaction, _, err := g.process(details, opts, TypeCapture)
	return transaction, err
}

// cardTransaction runs the shared flow for transactions funded by a payment
// method: resolve, validate, submit, persist, and optionally save the token.
func (g *Gateway) cardTransaction(details conversions.FieldSet, opts Options, transactionType string) (*models.TransactionResourceDao, *models.TokenResourceDao, error) {

	method, narrowed, err := conversions.ResolvePaymentMethod(details)
	if err != nil {
		return nil, nil, err
	}

	log.Trace("resolved payment method", log.Data{
		keys.Method:          method.String(),
		keys.TransactionType: transactionType,
	})

	transaction, processed, err := g.process(conversions.ApplyPaymentMethod(details, narrowed), opts, transactionType)
	if err != nil {
		return nil, nil, err
	}

	var token *models.TokenResourceDao
	if opts.SaveToken && g.VaultEnabled {
		token, err = g.saveTokenToVault(processed, opts.UserReference)
		if err != nil {
			return transaction, nil, err
		}
	}

	return transaction, token, nil
}

// process validates the field set, submits the request and persists the
// redacted record. It returns the stored record and the unredacted response;
// the latter is needed for token saving and must never be persisted.
func (g *Gateway) process(details conversions.FieldSet, opts Options, transactionType string) (*models.TransactionResourceDao, conversions.FieldSet, error) {

	cleaned, err := conversions.ValidateRequestFields(details)
	if err != nil {
		return nil, nil, err
	}

	// The caller's explicit test flag takes precedence over the config one.
	if g.APITest {
		if _, ok := cleaned["test"]; !ok {
			cleaned["test"] = 1
		}
	}

	additional := map[string]string{"transactionType": wireTransactionTypes[transactionType]}
	for name, value := range opts.Passthrough {
		additional[name] = value
	}

	requestData := conversions.ProcessRequestFields(g.Credentials, cleaned, additional)

	apiResponse, rawBody, err := g.Poster.Post(g.APIURL, g.Client, requestData)
	if err != nil {
		return nil, nil, &ProcessingError{
			Message: fmt.Sprintf("vendor api request failed: %s", err),
		}
	}

	if apiResponse.Response != nil && *apiResponse.Response == "0" {
		return nil, nil, declineError(transactionType, apiResponse.ResponseMessage)
	}

	processed, err := g.Parser.ProcessAPIResponse(apiResponse, requestData, rawBody)
	if err != nil {
		return nil, nil, err
	}

	redacted := redact.Redact(processed, g.Policy)

	transaction := models.NewTransactionResourceDao(redacted, transactionType)
	if err := g.DAO.CreateTransactionResource(&transaction); err != nil {
		return nil, nil, err
	}

	g.publishProcessed(&transaction)

	return &transaction, processed, nil
}

// declineError maps a vendor rejection to the error type for the transaction.
func declineError(transactionType string, responseMessage *string) error {
	message := "vendor api request failed"
	if responseMessage != nil {
		message = fmt.Sprintf("vendor api request failed: %s", *responseMessage)
	}

	switch transactionType {
	case TypeRefund:
		return &RefundError{Message: message}
	case TypeVerify:
		return &VerificationError{Message: message}
	case TypePurchase, TypePreauthorize, TypeCapture:
		return &PaymentError{Message: message}
	}
	return &ProcessingError{Message: message}
}

// publishProcessed emits a transaction-processed event. Publishing is best
// effort: a failure is logged and never fails the payment flow.
func (g *Gateway) publishProcessed(transaction *models.TransactionResourceDao) {
	if g.Publisher == nil {
		return
	}

	err := g.Publisher.TransactionProcessed(&data.TransactionProcessed{
		TransactionID:   strconv.Itoa(transaction.TransactionID),
		TransactionType: transaction.TransactionType,
		Successful:      transaction.TransactionSuccess,
	})
	if err != nil {
		log.Error(fmt.Errorf("error publishing transaction processed event: %s", err), log.Data{
			keys.TransactionID: transaction.TransactionID,
		})
	}
}

// saveTokenToVault stores the card token returned by the vendor. The vault
// refuses a save without a customer code, and without a user reference unless
// tokens are identified by customer code alone.
func (g *Gateway) saveTokenToVault(processed conversions.FieldSet, userReference string) (*models.TokenResourceDao, error) {

	customerCode := stringValue(processed, "customer_code")
	if customerCode == "" {
		return nil, &TokenSaveProcessingError{Message: "unable to save token - customer code not provided"}
	}

	if g.VaultIdentifier != "customer" && userReference == "" {
		return nil, &TokenSaveProcessingError{Message: "unable to save token - user reference not provided"}
	}

	token := stringValue(processed, "token")
	tokenF4L4 := stringValue(processed, "token_f4l4")
	if token == "" || tokenF4L4 == "" {
		return nil, nil
	}

	tokenResource := &models.TokenResourceDao{
		Token:         token,
		TokenF4L4:     tokenF4L4,
		CCType:        stringValue(processed, "cc_type"),
		CustomerCode:  customerCode,
		UserReference: userReference,
	}

	if err := g.DAO.UpsertTokenResource(tokenResource); err != nil {
		return nil, err
	}

	return tokenResource, nil
}

func stringValue(fieldSet conversions.FieldSet, name string) string {
	value, _ := fieldSet[name].(string)
	return value
}
