package data

import (
	"testing"

	"github.com/companieshouse/chs.go/avro"
	. "github.com/smartystreets/goconvey/convey"
	. "github.com/stretchr/testify/assert"
)

func TestUnitTransactionProcessedSchema(t *testing.T) {

	schema := &avro.Schema{Definition: TransactionProcessedSchema}

	Convey("transaction processed events marshal against the schema", t, func() {
		event := TransactionProcessed{
			TransactionID:   "1111111",
			TransactionType: "s",
			Successful:      true,
		}

		message, err := schema.Marshal(event)
		Nil(t, err, "a well formed event should marshal")
		NotEmpty(t, message)

		var decoded TransactionProcessed
		Nil(t, schema.Unmarshal(message, &decoded))
		Equal(t, event, decoded, "the message should round-trip")
	})
}
