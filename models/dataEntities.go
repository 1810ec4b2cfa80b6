package models

import (
	"strconv"
	"time"

	"github.com/commercegate/helcim-gateway/conversions"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionResourceDao represents the persisted audit record for a gateway
// transaction. It is always built from a redacted response, never from the
// raw one.
type TransactionResourceDao struct {
	ID                 primitive.ObjectID `bson:"_id"`
	RawRequest         string             `bson:"rawRequest"`
	RawResponse        string             `bson:"rawResponse"`
	TransactionSuccess bool               `bson:"transactionSuccess"`
	ResponseMessage    string             `bson:"responseMessage"`
	Notice             string             `bson:"notice"`
	DateResponse       *time.Time         `bson:"dateResponse"`
	TransactionType    string             `bson:"transactionType"`
	TransactionID      int                `bson:"transactionID"`
	Amount             string             `bson:"amount"`
	Currency           string             `bson:"currency"`
	CCName             string             `bson:"ccName"`
	CCNumber           string             `bson:"ccNumber"`
	CCExpiry           *time.Time         `bson:"ccExpiry"`
	CCType             string             `bson:"ccType"`
	Token              string             `bson:"token"`
	TokenF4L4          string             `bson:"tokenF4L4"`
	AVSResponse        string             `bson:"avsResponse"`
	CVVResponse        string             `bson:"cvvResponse"`
	ApprovalCode       string             `bson:"approvalCode"`
	OrderNumber        string             `bson:"orderNumber"`
	CustomerCode       string             `bson:"customerCode"`
}

// TokenResourceDao represents a vault entry for a stored card token
type TokenResourceDao struct {
	ID            primitive.ObjectID `bson:"_id"`
	Token         string             `bson:"token"`
	TokenF4L4     string             `bson:"tokenF4L4"`
	CCType        string             `bson:"ccType"`
	CustomerCode  string             `bson:"customerCode"`
	UserReference string             `bson:"userReference"`
	DateAdded     time.Time          `bson:"dateAdded"`
}

// NewTransactionResourceDao maps a redacted response into the transaction
// record persisted for audit. Redacted fields arrive as nils and are stored
// as zero values. transactionType is the single letter code for the
// transaction ("s", "p", "c", "r" or "v").
func NewTransactionResourceDao(redacted conversions.FieldSet, transactionType string) TransactionResourceDao {
	return TransactionResourceDao{
		RawRequest:         stringField(redacted, "raw_request"),
		RawResponse:        stringField(redacted, "raw_response"),
		TransactionSuccess: boolField(redacted, "transaction_success"),
		ResponseMessage:    stringField(redacted, "response_message"),
		Notice:             stringField(redacted, "notice"),
		DateResponse:       combineDateTime(redacted),
		TransactionType:    transactionType,
		TransactionID:      intField(redacted, "transaction_id"),
		Amount:             decimalField(redacted, "amount"),
		Currency:           stringField(redacted, "currency"),
		CCName:             stringField(redacted, "cc_name"),
		CCNumber:           stringField(redacted, "cc_number"),
		CCExpiry:           expiryDate(stringField(redacted, "cc_expiry")),
		CCType:             stringField(redacted, "cc_type"),
		Token:              stringField(redacted, "token"),
		TokenF4L4:          stringField(redacted, "token_f4l4"),
		AVSResponse:        stringField(redacted, "avs_response"),
		CVVResponse:        stringField(redacted, "cvv_response"),
		ApprovalCode:       stringField(redacted, "approval_code"),
		OrderNumber:        stringField(redacted, "order_number"),
		CustomerCode:       stringField(redacted, "customer_code"),
	}
}

// combineDateTime merges the response's separate date and time fields into a
// single timestamp, or nil when either half is missing.
func combineDateTime(response conversions.FieldSet) *time.Time {
	date, dateOK := response["transaction_date"].(time.Time)
	clock, timeOK := response["transaction_time"].(time.Time)
	if !dateOK || !timeOK {
		return nil
	}

	combined := time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(),
		0, time.UTC,
	)
	return &combined
}

// expiryDate expands an MMYY credit card expiry into the last day of that
// month. Two digit years are treated as 20YY.
func expiryDate(expiry string) *time.Time {
	if len(expiry) != 4 {
		return nil
	}

	month, monthErr := strconv.Atoi(expiry[:2])
	year, yearErr := strconv.Atoi(expiry[2:])
	if monthErr != nil || yearErr != nil || month < 1 || month > 12 {
		return nil
	}
	year += 2000

	// Day zero of the following month is the last day of this one.
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return &lastDay
}

func stringField(response conversions.FieldSet, name string) string {
	value, _ := response[name].(string)
	return value
}

func boolField(response conversions.FieldSet, name string) bool {
	value, _ := response[name].(bool)
	return value
}

func intField(response conversions.FieldSet, name string) int {
	value, _ := response[name].(int)
	return value
}

func decimalField(response conversions.FieldSet, name string) string {
	value, ok := response[name].(decimal.Decimal)
	if !ok {
		return ""
	}
	return value.String()
}
