package conversions

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitResolvePaymentMethod(t *testing.T) {

	Convey("Given details holding both a token and raw card data", t, func() {
		details := FieldSet{
			"token":         "abcdefghijklmnopqrstuv",
			"token_f4l4":    "11119999",
			"customer_code": "CST1000",
			"cc_number":     "4111111111111111",
			"cc_expiry":     "0125",
		}

		Convey("When the payment method is resolved", func() {
			method, narrowed, err := ResolvePaymentMethod(details)

			Convey("Then the stored token wins over the raw card", func() {
				So(err, ShouldBeNil)
				So(method, ShouldEqual, MethodToken)
				So(narrowed, ShouldResemble, FieldSet{
					"token":         "abcdefghijklmnopqrstuv",
					"token_f4l4":    "11119999",
					"customer_code": "CST1000",
				})
			})
		})
	})

	Convey("Given details holding only a customer code", t, func() {
		details := FieldSet{"customer_code": "CST1000", "amount": "50.01"}

		Convey("When the payment method is resolved", func() {
			method, narrowed, err := ResolvePaymentMethod(details)

			Convey("Then the customer's default card is used", func() {
				So(err, ShouldBeNil)
				So(method, ShouldEqual, MethodCustomerCode)
				So(narrowed, ShouldResemble, FieldSet{"customer_code": "CST1000"})
			})
		})
	})

	Convey("Given details holding raw card data", t, func() {
		details := FieldSet{
			"cc_number": "4111111111111111",
			"cc_expiry": "0125",
			"cc_cvv":    "100",
			"cc_name":   "Test Person",
		}

		Convey("When the payment method is resolved", func() {
			method, narrowed, err := ResolvePaymentMethod(details)

			Convey("Then the card and its optional fields are carried", func() {
				So(err, ShouldBeNil)
				So(method, ShouldEqual, MethodCard)
				So(narrowed, ShouldResemble, FieldSet{
					"cc_number": "4111111111111111",
					"cc_expiry": "0125",
					"cc_cvv":    "100",
					"cc_name":   "Test Person",
				})
			})
		})
	})

	Convey("Given a card number without an expiry", t, func() {
		details := FieldSet{"cc_number": "4111111111111111"}

		Convey("When the payment method is resolved", func() {
			_, _, err := ResolvePaymentMethod(details)

			Convey("Then resolution fails", func() {
				So(err, ShouldHaveSameTypeAs, &NoPaymentMethodError{})
				So(err.Error(), ShouldContainSubstring, "expiry")
			})
		})
	})

	Convey("Given encrypted magnetic strip data with a serial number", t, func() {
		details := FieldSet{
			"mag_enc":               "encrypted-data",
			"mag_enc_serial_number": "SERIAL1000",
		}

		Convey("When the payment method is resolved", func() {
			method, narrowed, err := ResolvePaymentMethod(details)

			Convey("Then both fields are carried", func() {
				So(err, ShouldBeNil)
				So(method, ShouldEqual, MethodMagEncrypted)
				So(narrowed, ShouldResemble, FieldSet{
					"mag_enc":               "encrypted-data",
					"mag_enc_serial_number": "SERIAL1000",
				})
			})
		})
	})

	Convey("Given encrypted magnetic strip data without a serial number", t, func() {
		details := FieldSet{"mag_enc": "encrypted-data"}

		Convey("When the payment method is resolved", func() {
			_, _, err := ResolvePaymentMethod(details)

			Convey("Then resolution fails", func() {
				So(err, ShouldHaveSameTypeAs, &NoPaymentMethodError{})
			})
		})
	})

	Convey("Given raw magnetic strip data", t, func() {
		details := FieldSet{"mag": "strip-data"}

		Convey("When the payment method is resolved", func() {
			method, narrowed, err := ResolvePaymentMethod(details)

			Convey("Then the strip data alone is carried", func() {
				So(err, ShouldBeNil)
				So(method, ShouldEqual, MethodMag)
				So(narrowed, ShouldResemble, FieldSet{"mag": "strip-data"})
			})
		})
	})

	Convey("Given details with no payment method at all", t, func() {
		details := FieldSet{"amount": "50.01"}

		Convey("When the payment method is resolved", func() {
			_, _, err := ResolvePaymentMethod(details)

			Convey("Then resolution fails", func() {
				So(err, ShouldHaveSameTypeAs, &NoPaymentMethodError{})
				So(err.Error(), ShouldEqual, "no valid payment details provided")
			})
		})
	})
}

func TestUnitResolveToken(t *testing.T) {

	Convey("Given a token without a customer code", t, func() {
		details := FieldSet{"token": "abcdefghijklmnopqrstuv", "token_f4l4": "11119999"}

		Convey("When the payment method is resolved", func() {
			_, _, err := ResolvePaymentMethod(details)

			Convey("Then resolution fails", func() {
				So(err, ShouldHaveSameTypeAs, &NoPaymentMethodError{})
				So(err.Error(), ShouldContainSubstring, "customer code")
			})
		})
	})

	Convey("Given a token with the F4L4 check explicitly skipped", t, func() {
		details := FieldSet{
			"token":           "abcdefghijklmnopqrstuv",
			"token_f4l4_skip": true,
			"customer_code":   "CST1000",
		}

		Convey("When the payment method is resolved", func() {
			method, narrowed, err := ResolvePaymentMethod(details)

			Convey("Then the skip flag is carried in its normalised form", func() {
				So(err, ShouldBeNil)
				So(method, ShouldEqual, MethodToken)
				So(narrowed["token_f4l4_skip"], ShouldEqual, 1)
				So(narrowed, ShouldNotContainKey, "token_f4l4")
			})
		})
	})

	Convey("Given a token with neither an F4L4 nor the skip flag", t, func() {
		details := FieldSet{
			"token":         "abcdefghijklmnopqrstuv",
			"customer_code": "CST1000",
		}

		Convey("When the payment method is resolved", func() {
			_, _, err := ResolvePaymentMethod(details)

			Convey("Then resolution fails", func() {
				So(err, ShouldHaveSameTypeAs, &NoPaymentMethodError{})
				So(err.Error(), ShouldContainSubstring, "token_f4l4")
			})
		})
	})

	Convey("Given a token with both an F4L4 and the skip flag", t, func() {
		details := FieldSet{
			"token":           "abcdefghijklmnopqrstuv",
			"token_f4l4":      "11119999",
			"token_f4l4_skip": true,
			"customer_code":   "CST1000",
		}

		Convey("When the payment method is resolved", func() {
			_, _, err := ResolvePaymentMethod(details)

			Convey("Then resolution fails rather than guessing", func() {
				So(err, ShouldHaveSameTypeAs, &NoPaymentMethodError{})
				So(err.Error(), ShouldContainSubstring, "mutually exclusive")
			})
		})
	})
}

func TestUnitApplyPaymentMethod(t *testing.T) {

	Convey("Given raw details and a narrowed payment field set", t, func() {
		details := FieldSet{
			"amount":        "50.01",
			"token":         "abcdefghijklmnopqrstuv",
			"token_f4l4":    "11119999",
			"customer_code": "CST1000",
			"cc_number":     "4111111111111111",
			"cc_expiry":     "0125",
		}
		narrowed := FieldSet{
			"token":         "abcdefghijklmnopqrstuv",
			"token_f4l4":    "11119999",
			"customer_code": "CST1000",
		}

		Convey("When the narrowed set is applied", func() {
			merged := ApplyPaymentMethod(details, narrowed)

			Convey("Then unresolved payment fields are dropped and the rest kept", func() {
				So(merged, ShouldResemble, FieldSet{
					"amount":        "50.01",
					"token":         "abcdefghijklmnopqrstuv",
					"token_f4l4":    "11119999",
					"customer_code": "CST1000",
				})
			})

			Convey("Then the input details are not mutated", func() {
				So(details, ShouldContainKey, "cc_number")
			})
		})
	})
}
