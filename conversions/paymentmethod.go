package conversions

// PaymentMethod identifies how a transaction is funded.
type PaymentMethod int

const (
	// MethodToken pays with a stored card token plus customer code.
	MethodToken PaymentMethod = iota
	// MethodCustomerCode pays with the customer's default stored card.
	MethodCustomerCode
	// MethodCard pays with raw card details.
	MethodCard
	// MethodMagEncrypted pays with encrypted magnetic strip data.
	MethodMagEncrypted
	// MethodMag pays with raw magnetic strip data.
	MethodMag
)

// String returns the method name used in logs.
func (m PaymentMethod) String() string {
	switch m {
	case MethodToken:
		return "token"
	case MethodCustomerCode:
		return "customer_code"
	case MethodCard:
		return "card"
	case MethodMagEncrypted:
		return "mag_encrypted"
	case MethodMag:
		return "mag"
	}
	return "unknown"
}

// methodOptionalCardFields are carried along with a raw card payment when the
// caller supplies them.
var methodOptionalCardFields = []string{"cc_name", "cc_cvv", "cc_address", "cc_postal_code"}

// PaymentFields lists every field that describes a payment method. After
// resolution, any of these not in the narrowed set must be dropped from the
// request so only the chosen method's details are transmitted.
var PaymentFields = []string{
	"token", "customer_code", "token_f4l4", "token_f4l4_skip",
	"cc_number", "cc_expiry", "cc_name", "cc_cvv", "cc_address",
	"cc_postal_code", "mag_enc", "mag_enc_serial_number", "mag",
}

// ApplyPaymentMethod replaces the payment fields in details with the resolved
// narrowed set, leaving non-payment fields (amount, billing details and so on)
// untouched. The input is not mutated.
func ApplyPaymentMethod(details FieldSet, narrowed FieldSet) FieldSet {
	merged := make(FieldSet, len(details))
	for name, value := range details {
		merged[name] = value
	}

	for _, name := range PaymentFields {
		delete(merged, name)
	}
	for name, value := range narrowed {
		merged[name] = value
	}

	return merged
}

// ResolvePaymentMethod determines the payment method for the supplied fields
// and narrows the set down to the fields that method uses. Methods are
// evaluated in strict priority order by the presence of their primary key:
// token, then customer code, then raw card, then encrypted magnetic strip,
// then raw magnetic strip. Stored identifiers deliberately win over raw card
// data when both are supplied, so the least sensitive method is always used.
func ResolvePaymentMethod(details FieldSet) (PaymentMethod, FieldSet, error) {
	if _, ok := details["token"]; ok {
		return resolveToken(details)
	}

	if value, ok := details["customer_code"]; ok {
		return MethodCustomerCode, FieldSet{"customer_code": value}, nil
	}

	if _, ok := details["cc_number"]; ok {
		return resolveCard(details)
	}

	if _, ok := details["mag_enc"]; ok {
		return resolveMagEncrypted(details)
	}

	if value, ok := details["mag"]; ok {
		return MethodMag, FieldSet{"mag": value}, nil
	}

	return 0, nil, &NoPaymentMethodError{}
}

func resolveToken(details FieldSet) (PaymentMethod, FieldSet, error) {
	customerCode, ok := details["customer_code"]
	if !ok {
		return 0, nil, &NoPaymentMethodError{Reason: "token requires a customer code"}
	}

	narrowed := FieldSet{
		"token":         details["token"],
		"customer_code": customerCode,
	}

	// F4L4 verification is required unless explicitly skipped; exactly one of
	// the two fields must be in effect.
	f4l4, hasF4L4 := details["token_f4l4"]
	skip := truthy(details["token_f4l4_skip"])

	switch {
	case hasF4L4 && skip:
		return 0, nil, &NoPaymentMethodError{
			Reason: "token_f4l4 and token_f4l4_skip are mutually exclusive",
		}
	case skip:
		narrowed["token_f4l4_skip"] = 1
	case hasF4L4:
		narrowed["token_f4l4"] = f4l4
	default:
		return 0, nil, &NoPaymentMethodError{
			Reason: "token requires token_f4l4 or token_f4l4_skip",
		}
	}

	return MethodToken, narrowed, nil
}

func resolveCard(details FieldSet) (PaymentMethod, FieldSet, error) {
	expiry, ok := details["cc_expiry"]
	if !ok {
		return 0, nil, &NoPaymentMethodError{Reason: "card number requires an expiry"}
	}

	narrowed := FieldSet{
		"cc_number": details["cc_number"],
		"cc_expiry": expiry,
	}

	for _, name := range methodOptionalCardFields {
		if value, ok := details[name]; ok {
			narrowed[name] = value
		}
	}

	return MethodCard, narrowed, nil
}

func resolveMagEncrypted(details FieldSet) (PaymentMethod, FieldSet, error) {
	serial, ok := details["mag_enc_serial_number"]
	if !ok {
		return 0, nil, &NoPaymentMethodError{
			Reason: "encrypted magnetic strip data requires a terminal serial number",
		}
	}

	narrowed := FieldSet{
		"mag_enc":               details["mag_enc"],
		"mag_enc_serial_number": serial,
	}

	return MethodMagEncrypted, narrowed, nil
}
