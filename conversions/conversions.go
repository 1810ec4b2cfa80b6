// Package conversions validates and converts data to and from the vendor API:
// request field validation and coercion, payment method resolution, wire map
// assembly and response normalisation.
package conversions

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/commercegate/helcim-gateway/fields"
	"github.com/shopspring/decimal"
)

// FieldSet maps internal field names to raw or coerced values.
type FieldSet map[string]interface{}

// APICredentials are the three credential fields merged into every request.
type APICredentials struct {
	AccountID  string
	APIToken   string
	TerminalID string
}

// ValidateRequestFields validates and coerces request field data prior to
// submission, using the outbound field registry to determine the type and
// bounds to apply. The first failing field aborts the whole call; no partially
// cleaned result is ever returned.
func ValidateRequestFields(details FieldSet) (FieldSet, error) {
	cleaned := FieldSet{}

	for name, value := range details {
		spec, err := fields.LookupOutbound(name)
		if err != nil {
			return nil, err
		}

		switch spec.Kind {
		case fields.String:
			cleanedValue := coerceString(value)

			if spec.Min > 0 && len(cleanedValue) < spec.Min {
				return nil, &FieldTooShortError{Field: name}
			}
			if spec.Max > 0 && len(cleanedValue) > spec.Max {
				return nil, &FieldTooLongError{Field: name}
			}
			cleaned[name] = cleanedValue

		case fields.Integer:
			cleanedValue, err := coerceInt(value)
			if err != nil {
				return nil, &InvalidFieldValueError{Field: name, Kind: spec.Kind.String()}
			}

			if spec.Min > 0 && cleanedValue < spec.Min {
				return nil, &FieldTooSmallError{Field: name}
			}
			if spec.Max > 0 && cleanedValue > spec.Max {
				return nil, &FieldTooLargeError{Field: name}
			}
			cleaned[name] = cleanedValue

		case fields.Decimal:
			cleanedValue, err := coerceDecimal(value)
			if err != nil {
				return nil, &InvalidFieldValueError{Field: name, Kind: spec.Kind.String()}
			}

			if spec.Min > 0 && cleanedValue.LessThan(decimal.NewFromInt(int64(spec.Min))) {
				return nil, &FieldTooSmallError{Field: name}
			}
			if spec.Max > 0 && cleanedValue.GreaterThan(decimal.NewFromInt(int64(spec.Max))) {
				return nil, &FieldTooLargeError{Field: name}
			}
			cleaned[name] = cleanedValue

		case fields.Boolean:
			// Booleans are normalised to the canonical 1/0 the API expects.
			if truthy(value) {
				cleaned[name] = 1
			} else {
				cleaned[name] = 0
			}

		default:
			cleaned[name] = coerceString(value)
		}
	}

	return cleaned, nil
}

// ProcessRequestFields converts cleaned data into the flat wire map POSTed to
// the vendor: the three credential fields, the cleaned fields renamed to their
// external names, and any additional pass-through fields appended verbatim.
func ProcessRequestFields(creds APICredentials, cleaned FieldSet, additional map[string]string) map[string]string {
	requestData := map[string]string{
		"accountId":  creds.AccountID,
		"apiToken":   creds.APIToken,
		"terminalId": creds.TerminalID,
	}

	for name, value := range cleaned {
		spec, err := fields.LookupOutbound(name)
		if err != nil {
			// Cleaned data only ever holds registered names.
			continue
		}
		requestData[spec.ExternalName] = formatWireValue(value)
	}

	for name, value := range additional {
		requestData[name] = value
	}

	return requestData
}

// CreateRawRequest serialises a wire map into the audit string stored against
// the transaction record: key=value pairs joined by ampersands, keys sorted
// for a stable trace. Values are deliberately not URL encoded; this is a raw
// trace, not a resendable request.
func CreateRawRequest(requestData map[string]string) string {
	keys := make([]string, 0, len(requestData))
	for key := range requestData {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+requestData[key])
	}

	return strings.Join(pairs, "&")
}

// CreateF4L4 derives the first four plus last four digits of a card number,
// the minimal identifier retained so a user can recognise a saved card.
// Returns "" when no card number is available.
func CreateF4L4(ccNumber string) string {
	stripped := strings.TrimSpace(ccNumber)
	if len(stripped) < 8 {
		return stripped
	}
	return stripped[:4] + stripped[len(stripped)-4:]
}

func coerceString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func coerceInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		return strconv.Atoi(v)
	default:
		return 0, fmt.Errorf("cannot convert %T to integer", value)
	}
}

func coerceDecimal(value interface{}) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		return decimal.NewFromString(v)
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("cannot convert %T to decimal", value)
	}
}

func truthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "0" && !strings.EqualFold(v, "false")
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}

func formatWireValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case decimal.Decimal:
		return v.String()
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}
