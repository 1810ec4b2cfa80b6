package keys

// Keys used to identify log message data items.
const Field = "field"
const Method = "payment_method"
const TransactionID = "transaction_id"
const TransactionType = "transaction_type"
const StatusCode = "status_code"
const Request = "request"
const Topic = "topic"
const CustomerCode = "customer_code"
const TokenID = "token_id"
const Brands = "brands"
