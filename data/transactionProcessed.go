package data

// TransactionProcessed represents the transaction-processed avro schema
// published once a gateway transaction record has been persisted.
type TransactionProcessed struct {
	TransactionID   string `avro:"transaction_id"`
	TransactionType string `avro:"transaction_type"`
	Successful      bool   `avro:"successful"`
}

// TransactionProcessedSchema is the avro schema definition used to encode
// TransactionProcessed events.
const TransactionProcessedSchema = `{
	"type": "record",
	"name": "transaction_processed",
	"namespace": "payments",
	"fields": [
		{"name": "transaction_id", "type": "string"},
		{"name": "transaction_type", "type": "string"},
		{"name": "successful", "type": "boolean"}
	]
}`
