// Package redact scrubs sensitive payment data from a normalised response
// before it is persisted or logged. Redaction covers three representations of
// every field: the structured map entry, the key=value pair inside the raw
// request audit string, and the XML element inside the raw response audit
// string.
package redact

import (
	"fmt"
	"regexp"

	"github.com/commercegate/helcim-gateway/conversions"
)

// Sentinel replaces redacted values in the raw audit strings.
const Sentinel = "REDACTED"

// credentialFields are always scrubbed from the raw request, regardless of
// policy: API credentials are sensitive independent of payment data settings.
var credentialFields = []string{"accountId", "apiToken", "terminalId"}

// fieldPair ties a vendor API field name to its internal counterpart.
type fieldPair struct {
	External string
	Internal string
}

// categoryFields lists the field pairs each redaction category covers. The
// expiry category spans two external names because the request and response
// registries name the same concept differently.
var categoryFields = map[string][]fieldPair{
	"name":   {{"cardHolderName", "cc_name"}},
	"number": {{"cardNumber", "cc_number"}},
	"expiry": {{"cardExpiry", "cc_expiry"}, {"expiryDate", "cc_expiry"}},
	"cvv":    {{"cardCVV", "cc_cvv"}},
	"type":   {{"cardType", "cc_type"}},
	"token":  {{"cardToken", "token"}, {"cardF4L4", "token_f4l4"}},
	"mag":    {{"cardMag", "mag"}},
	"mag_enc": {
		{"cardMagEnc", "mag_enc"},
		{"serialNumber", "mag_enc_serial_number"},
	},
}

// Policy controls which redaction categories are applied. All, when set,
// overrides every category flag uniformly.
type Policy struct {
	All    *bool
	Name   bool
	Number bool
	Expiry bool
	CVV    bool
	Type   bool
	Token  bool
	Mag    bool
	MagEnc bool
}

// DefaultPolicy redacts everything except the token fields: a stored token is
// the mechanism for future reuse and is not itself raw card data.
func DefaultPolicy() Policy {
	return Policy{
		Name:   true,
		Number: true,
		Expiry: true,
		CVV:    true,
		Type:   true,
		Mag:    true,
		MagEnc: true,
		Token:  false,
	}
}

// Resolve returns the effective redact flag per category, applying the
// redact-all override when set.
func (p Policy) Resolve() map[string]bool {
	resolved := map[string]bool{
		"name":    p.Name,
		"number":  p.Number,
		"expiry":  p.Expiry,
		"cvv":     p.CVV,
		"type":    p.Type,
		"token":   p.Token,
		"mag":     p.Mag,
		"mag_enc": p.MagEnc,
	}

	if p.All != nil {
		for category := range resolved {
			resolved[category] = *p.All
		}
	}

	return resolved
}

// Redact produces a safe-to-persist copy of a normalised response. The input
// is never mutated. API credentials are always stripped from the raw request;
// payment data categories follow the supplied policy. Redaction is idempotent:
// applying it to an already redacted response yields the same result.
func Redact(response conversions.FieldSet, policy Policy) conversions.FieldSet {
	redacted := make(conversions.FieldSet, len(response))
	for name, value := range response {
		redacted[name] = value
	}

	redactCredentials(redacted)

	for category, apply := range policy.Resolve() {
		if !apply {
			continue
		}
		for _, pair := range categoryFields[category] {
			redactField(redacted, pair.External, pair.Internal)
		}
	}

	return redacted
}

func redactCredentials(redacted conversions.FieldSet) {
	rawRequest, ok := redacted["raw_request"].(string)
	if !ok {
		redacted["raw_request"] = nil
		return
	}

	for _, name := range credentialFields {
		rawRequest = replaceRequestValue(rawRequest, name)
	}
	redacted["raw_request"] = rawRequest
}

// redactField scrubs one field pair from the raw request, the raw response
// and the structured map. Fields absent from any representation are no-ops.
func redactField(redacted conversions.FieldSet, externalName, internalName string) {
	if rawRequest, ok := redacted["raw_request"].(string); ok {
		redacted["raw_request"] = replaceRequestValue(rawRequest, externalName)
	}

	if rawResponse, ok := redacted["raw_response"].(string); ok {
		redacted["raw_response"] = replaceResponseValue(rawResponse, externalName)
	}

	if _, ok := redacted[internalName]; ok {
		redacted[internalName] = nil
	}
}

// replaceRequestValue replaces a name=value pair, up to the next ampersand or
// the end of the string, with name=REDACTED.
func replaceRequestValue(rawRequest, name string) string {
	pattern := regexp.MustCompile(fmt.Sprintf(`%s=.*?(&|$)`, regexp.QuoteMeta(name)))
	return pattern.ReplaceAllString(rawRequest, name+"="+Sentinel+"${1}")
}

// replaceResponseValue replaces an XML element's content with REDACTED.
func replaceResponseValue(rawResponse, name string) string {
	quoted := regexp.QuoteMeta(name)
	pattern := regexp.MustCompile(fmt.Sprintf(`<%s>.*</%s>`, quoted, quoted))
	return pattern.ReplaceAllString(rawResponse, fmt.Sprintf("<%s>%s</%s>", name, Sentinel, name))
}
