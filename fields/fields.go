// Package fields holds the schema contract between internal field names and
// the vendor API field names. The outbound registry is used when building a
// request, the inbound registry when parsing a response; the two sides may map
// the same concept to different external names (e.g. cardExpiry/expiryDate).
package fields

import "fmt"

// Kind identifies the data type a field is coerced to.
type Kind int

const (
	String Kind = iota
	Decimal
	Integer
	Boolean
	Date
	Time
)

// String returns a short name for the kind, for error messages and logs.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Decimal:
		return "decimal"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case Date:
		return "date"
	case Time:
		return "time"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Spec describes a single API field.
//
// Min and Max bound string lengths for String fields and values for Integer
// and Decimal fields. A zero bound means unbounded.
type Spec struct {
	InternalName string
	ExternalName string
	Kind         Kind
	Min          int
	Max          int
}

// UnknownFieldError is returned when a caller supplies a field name that is
// not present in the outbound registry.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown request field: %s", e.Field)
}

// outbound maps internal field names to their vendor request field specs.
var outbound = map[string]Spec{
	"amount":                 {Kind: Decimal, ExternalName: "amount"},
	"amount_shipping":        {Kind: Decimal, ExternalName: "amountShipping"},
	"amount_tax":             {Kind: Decimal, ExternalName: "amountTax"},
	"billing_business_name":  {Kind: String, ExternalName: "billing_businessName"},
	"billing_city":           {Kind: String, ExternalName: "billing_city"},
	"billing_contact_name":   {Kind: String, ExternalName: "billing_contactName"},
	"billing_country":        {Kind: String, ExternalName: "billing_country"},
	"billing_email":          {Kind: String, ExternalName: "billing_email"},
	"billing_fax":            {Kind: String, ExternalName: "billing_fax"},
	"billing_phone":          {Kind: String, ExternalName: "billing_phone"},
	"billing_postal_code":    {Kind: String, ExternalName: "billing_postalCode"},
	"billing_province":       {Kind: String, ExternalName: "billing_province"},
	"billing_street_1":       {Kind: String, ExternalName: "billing_street1"},
	"billing_street_2":       {Kind: String, ExternalName: "billing_street2"},
	"cc_address":             {Kind: String, ExternalName: "cardHolderAddress"},
	"cc_cvv":                 {Kind: String, ExternalName: "cardCVV", Min: 3, Max: 4},
	"cc_expiry":              {Kind: String, ExternalName: "cardExpiry", Min: 4, Max: 4},
	"cc_name":                {Kind: String, ExternalName: "cardHolderName"},
	"cc_number":              {Kind: String, ExternalName: "cardNumber", Min: 13, Max: 19},
	"cc_postal_code":         {Kind: String, ExternalName: "cardHolderPostalCode"},
	"comments":               {Kind: String, ExternalName: "comments"},
	"customer_code":          {Kind: String, ExternalName: "customerCode"},
	"ecommerce":              {Kind: Boolean, ExternalName: "ecommerce"},
	"ip_address":             {Kind: String, ExternalName: "ipAddress", Min: 7, Max: 45},
	"mag":                    {Kind: String, ExternalName: "cardMag"},
	"mag_enc":                {Kind: String, ExternalName: "cardMagEnc"},
	"mag_enc_serial_number":  {Kind: String, ExternalName: "serialNumber"},
	"order_number":           {Kind: String, ExternalName: "orderNumber"},
	"product_id":             {Kind: Integer, ExternalName: "productId", Min: 1},
	"shipping_business_name": {Kind: String, ExternalName: "shipping_businessName"},
	"shipping_city":          {Kind: String, ExternalName: "shipping_city"},
	"shipping_contact_name":  {Kind: String, ExternalName: "shipping_contactName"},
	"shipping_country":       {Kind: String, ExternalName: "shipping_country"},
	"shipping_email":         {Kind: String, ExternalName: "shipping_email"},
	"shipping_fax":           {Kind: String, ExternalName: "shipping_fax"},
	"shipping_method":        {Kind: String, ExternalName: "shipping_method"},
	"shipping_phone":         {Kind: String, ExternalName: "shipping_phone"},
	"shipping_postal_code":   {Kind: String, ExternalName: "shipping_postalCode"},
	"shipping_province":      {Kind: String, ExternalName: "shipping_province"},
	"shipping_street_1":      {Kind: String, ExternalName: "shipping_street1"},
	"shipping_street_2":      {Kind: String, ExternalName: "shipping_street2"},
	"tax_details":            {Kind: String, ExternalName: "taxDetails"},
	"test":                   {Kind: Boolean, ExternalName: "test"},
	"token":                  {Kind: String, ExternalName: "cardToken", Min: 22, Max: 23},
	"token_f4l4":             {Kind: String, ExternalName: "cardF4L4", Min: 8, Max: 8},
	"token_f4l4_skip":        {Kind: Boolean, ExternalName: "cardF4L4Skip"},
	"transaction_id":         {Kind: Integer, ExternalName: "transactionId"},
}

// inbound maps vendor response field names to their internal field specs.
var inbound = map[string]Spec{
	"amount":         {Kind: Decimal, InternalName: "amount"},
	"availability":   {Kind: Boolean, InternalName: "availability"},
	"approvalCode":   {Kind: String, InternalName: "approval_code"},
	"avsResponse":    {Kind: String, InternalName: "avs_response"},
	"cardExpiry":     {Kind: String, InternalName: "cc_expiry"},
	"cardHolderName": {Kind: String, InternalName: "cc_name"},
	"cardNumber":     {Kind: String, InternalName: "cc_number"},
	"cardToken":      {Kind: String, InternalName: "token"},
	"cardType":       {Kind: String, InternalName: "cc_type"},
	"currency":       {Kind: String, InternalName: "currency"},
	"customerCode":   {Kind: String, InternalName: "customer_code"},
	"cvvResponse":    {Kind: String, InternalName: "cvv_response"},
	"date":           {Kind: Date, InternalName: "transaction_date"},
	"expiryDate":     {Kind: String, InternalName: "cc_expiry"},
	"orderNumber":    {Kind: String, InternalName: "order_number"},
	"time":           {Kind: Time, InternalName: "transaction_time"},
	"transactionId":  {Kind: Integer, InternalName: "transaction_id"},
	"type":           {Kind: String, InternalName: "transaction_type"},
}

func init() {
	for name, spec := range outbound {
		spec.InternalName = name
		outbound[name] = spec
	}
	for name, spec := range inbound {
		spec.ExternalName = name
		inbound[name] = spec
	}
}

// LookupOutbound returns the request spec for an internal field name.
func LookupOutbound(internalName string) (Spec, error) {
	spec, ok := outbound[internalName]
	if !ok {
		return Spec{}, &UnknownFieldError{Field: internalName}
	}
	return spec, nil
}

// LookupInbound returns the response spec for a vendor field name. Unknown
// names are not an error: the vendor adds response fields over time, so they
// fall back to an untyped string spec keyed by the external name. The second
// return value reports whether the field was registered.
func LookupInbound(externalName string) (Spec, bool) {
	spec, ok := inbound[externalName]
	if !ok {
		return Spec{
			InternalName: externalName,
			ExternalName: externalName,
			Kind:         String,
		}, false
	}
	return spec, true
}

// OutboundNames returns all registered internal request field names.
func OutboundNames() []string {
	names := make([]string, 0, len(outbound))
	for name := range outbound {
		names = append(names, name)
	}
	return names
}
