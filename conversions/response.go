package conversions

import (
	"time"

	"github.com/commercegate/helcim-gateway/data"
	"github.com/commercegate/helcim-gateway/fields"
	"github.com/commercegate/helcim-gateway/keys"
	"github.com/companieshouse/chs.go/log"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// WarningNotifier receives non-fatal observations made while parsing a vendor
// response. Injected so the parser stays side effect free in tests.
type WarningNotifier interface {
	UnregisteredResponseField(externalName string)
}

// LogNotifier reports parser warnings through the application logger.
type LogNotifier struct{}

// UnregisteredResponseField logs a response field missing from the inbound registry.
func (LogNotifier) UnregisteredResponseField(externalName string) {
	log.Info("response field not in inbound registry, passing through as string",
		log.Data{keys.Field: externalName})
}

// Parser normalises vendor API responses into internal field sets.
type Parser struct {
	Notifier WarningNotifier
}

// NewParser returns a Parser that logs warnings.
func NewParser() *Parser {
	return &Parser{Notifier: LogNotifier{}}
}

// ProcessAPIResponse converts a vendor reply into a normalised field set. The
// three top level status fields are always required; transaction fields are
// coerced per the inbound registry, with unregistered names passed through as
// strings rather than failing the response. The raw request and response are
// appended for the audit trail: rawRequest as an ampersand-joined key=value
// string (nil map yields a nil entry), rawResponse as an opaque string ("" is
// treated as absent).
func (p *Parser) ProcessAPIResponse(response *data.APIResponse, rawRequest map[string]string, rawResponse string) (FieldSet, error) {
	if response.Response == nil {
		return nil, &MissingRequiredFieldError{Field: "response"}
	}
	if response.ResponseMessage == nil {
		return nil, &MissingRequiredFieldError{Field: "responseMessage"}
	}
	if response.Notice == nil {
		return nil, &MissingRequiredFieldError{Field: "notice"}
	}

	processed := FieldSet{
		"transaction_success": *response.Response == "1",
		"response_message":    *response.ResponseMessage,
		"notice":              *response.Notice,
	}

	if response.Transaction != nil {
		converted, err := p.convertResponseFields(response.Transaction.Fields)
		if err != nil {
			return nil, err
		}
		for name, value := range converted {
			processed[name] = value
		}

		if ccNumber, ok := converted["cc_number"].(string); ok && ccNumber != "" {
			processed["token_f4l4"] = CreateF4L4(ccNumber)
		} else {
			processed["token_f4l4"] = nil
		}
	}

	if rawRequest != nil {
		processed["raw_request"] = CreateRawRequest(rawRequest)
	} else {
		processed["raw_request"] = nil
	}

	if rawResponse != "" {
		processed["raw_response"] = rawResponse
	} else {
		processed["raw_response"] = nil
	}

	return processed, nil
}

// convertResponseFields renames external transaction fields to their internal
// names and coerces values to their registered kinds.
func (p *Parser) convertResponseFields(apiFields []data.APIField) (FieldSet, error) {
	converted := FieldSet{}

	for _, field := range apiFields {
		spec, registered := fields.LookupInbound(field.Name())
		if !registered {
			p.Notifier.UnregisteredResponseField(field.Name())
			converted[spec.InternalName] = field.Value
			continue
		}

		value, err := coerceResponseValue(field.Value, spec)
		if err != nil {
			return nil, err
		}
		converted[spec.InternalName] = value
	}

	return converted, nil
}

func coerceResponseValue(raw string, spec fields.Spec) (interface{}, error) {
	switch spec.Kind {
	case fields.String:
		return raw, nil

	case fields.Decimal:
		value, err := coerceDecimal(raw)
		if err != nil {
			return nil, &InvalidFieldValueError{Field: spec.InternalName, Kind: spec.Kind.String()}
		}
		return value, nil

	case fields.Integer:
		value, err := coerceInt(raw)
		if err != nil {
			return nil, &InvalidFieldValueError{Field: spec.InternalName, Kind: spec.Kind.String()}
		}
		return value, nil

	case fields.Boolean:
		return raw == "1", nil

	case fields.Date:
		value, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, &InvalidFieldValueError{Field: spec.InternalName, Kind: spec.Kind.String()}
		}
		return value, nil

	case fields.Time:
		value, err := time.Parse(timeLayout, raw)
		if err != nil {
			return nil, &InvalidFieldValueError{Field: spec.InternalName, Kind: spec.Kind.String()}
		}
		return value, nil
	}

	return raw, nil
}
