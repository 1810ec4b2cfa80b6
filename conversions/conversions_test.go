package conversions

import (
	"testing"

	"github.com/commercegate/helcim-gateway/fields"
	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"
)

var testCredentials = APICredentials{
	AccountID:  "12345",
	APIToken:   "token-value",
	TerminalID: "67890",
}

func TestUnitValidateRequestFields(t *testing.T) {

	Convey("Given a request with valid fields of every kind", t, func() {
		details := FieldSet{
			"amount":         "50.01",
			"cc_number":      "4111111111111111",
			"cc_expiry":      "0125",
			"ecommerce":      true,
			"transaction_id": "1111111",
		}

		Convey("When the fields are validated", func() {
			cleaned, err := ValidateRequestFields(details)

			Convey("Then each value is coerced to its registered kind", func() {
				So(err, ShouldBeNil)
				So(cleaned["amount"], ShouldHaveSameTypeAs, decimal.Decimal{})
				So(cleaned["amount"].(decimal.Decimal).String(), ShouldEqual, "50.01")
				So(cleaned["cc_number"], ShouldEqual, "4111111111111111")
				So(cleaned["ecommerce"], ShouldEqual, 1)
				So(cleaned["transaction_id"], ShouldEqual, 1111111)
			})
		})
	})

	Convey("Given a request with a field that is not registered", t, func() {
		details := FieldSet{"fake_field": "value"}

		Convey("When the fields are validated", func() {
			_, err := ValidateRequestFields(details)

			Convey("Then an unknown field error aborts the call", func() {
				So(err, ShouldHaveSameTypeAs, &fields.UnknownFieldError{})
			})
		})
	})

	Convey("Given string fields breaching their length bounds", t, func() {

		Convey("When a CVV is too short", func() {
			_, err := ValidateRequestFields(FieldSet{"cc_cvv": "12"})

			Convey("Then a field too short error is returned", func() {
				So(err, ShouldHaveSameTypeAs, &FieldTooShortError{})
			})
		})

		Convey("When a CVV is too long", func() {
			_, err := ValidateRequestFields(FieldSet{"cc_cvv": "12345"})

			Convey("Then a field too long error is returned", func() {
				So(err, ShouldHaveSameTypeAs, &FieldTooLongError{})
			})
		})
	})

	Convey("Given numeric fields breaching their value bounds", t, func() {

		Convey("When a product ID is below its minimum", func() {
			_, err := ValidateRequestFields(FieldSet{"product_id": 0})

			Convey("Then a field too small error is returned", func() {
				So(err, ShouldHaveSameTypeAs, &FieldTooSmallError{})
			})
		})

		Convey("When an integer field carries a non-numeric value", func() {
			_, err := ValidateRequestFields(FieldSet{"transaction_id": "not-a-number"})

			Convey("Then an invalid field value error is returned", func() {
				So(err, ShouldHaveSameTypeAs, &InvalidFieldValueError{})
			})
		})

		Convey("When a decimal field carries a non-numeric value", func() {
			_, err := ValidateRequestFields(FieldSet{"amount": "fifty"})

			Convey("Then an invalid field value error is returned", func() {
				So(err, ShouldHaveSameTypeAs, &InvalidFieldValueError{})
			})
		})
	})

	Convey("Given boolean fields in assorted representations", t, func() {
		details := FieldSet{
			"ecommerce": "false",
			"test":      true,
		}

		Convey("When the fields are validated", func() {
			cleaned, err := ValidateRequestFields(details)

			Convey("Then values are normalised to 1 or 0", func() {
				So(err, ShouldBeNil)
				So(cleaned["ecommerce"], ShouldEqual, 0)
				So(cleaned["test"], ShouldEqual, 1)
			})
		})
	})
}

func TestUnitProcessRequestFields(t *testing.T) {

	Convey("Given cleaned field data and additional pass-through fields", t, func() {
		cleaned := FieldSet{
			"amount":    decimal.RequireFromString("50.01"),
			"cc_number": "4111111111111111",
			"ecommerce": 1,
		}
		additional := map[string]string{"transactionType": "purchase"}

		Convey("When the wire map is assembled", func() {
			requestData := ProcessRequestFields(testCredentials, cleaned, additional)

			Convey("Then the credentials are merged in", func() {
				So(requestData["accountId"], ShouldEqual, "12345")
				So(requestData["apiToken"], ShouldEqual, "token-value")
				So(requestData["terminalId"], ShouldEqual, "67890")
			})

			Convey("Then cleaned fields are renamed to their external names", func() {
				So(requestData["amount"], ShouldEqual, "50.01")
				So(requestData["cardNumber"], ShouldEqual, "4111111111111111")
				So(requestData["ecommerce"], ShouldEqual, "1")
			})

			Convey("Then additional fields are appended verbatim", func() {
				So(requestData["transactionType"], ShouldEqual, "purchase")
			})
		})
	})
}

func TestUnitCreateRawRequest(t *testing.T) {

	Convey("Given a wire request map", t, func() {
		requestData := map[string]string{
			"cardNumber": "4111111111111111",
			"accountId":  "12345",
			"amount":     "50.01",
		}

		Convey("When the audit string is built", func() {
			rawRequest := CreateRawRequest(requestData)

			Convey("Then pairs are ampersand-joined in key order", func() {
				So(rawRequest, ShouldEqual, "accountId=12345&amount=50.01&cardNumber=4111111111111111")
			})
		})
	})
}

func TestUnitCreateF4L4(t *testing.T) {

	Convey("Given a masked card number", t, func() {

		Convey("When the F4L4 is derived", func() {
			f4l4 := CreateF4L4("1111********9999")

			Convey("Then it holds the first four and last four digits", func() {
				So(f4l4, ShouldEqual, "11119999")
			})
		})
	})

	Convey("Given a card number with surrounding whitespace", t, func() {

		Convey("When the F4L4 is derived", func() {
			f4l4 := CreateF4L4(" 4111111111111111 ")

			Convey("Then the whitespace is stripped first", func() {
				So(f4l4, ShouldEqual, "41111111")
			})
		})
	})

	Convey("Given a value too short to split", t, func() {

		Convey("When the F4L4 is derived", func() {
			f4l4 := CreateF4L4("41111")

			Convey("Then the stripped value is returned unchanged", func() {
				So(f4l4, ShouldEqual, "41111")
			})
		})
	})
}
