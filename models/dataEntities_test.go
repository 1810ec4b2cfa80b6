package models

import (
	"testing"
	"time"

	"github.com/commercegate/helcim-gateway/conversions"
	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitNewTransactionResourceDao(t *testing.T) {

	Convey("Given a redacted response for an approved purchase", t, func() {
		redacted := conversions.FieldSet{
			"transaction_success": true,
			"response_message":    "APPROVED",
			"notice":              "",
			"transaction_date":    time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC),
			"transaction_time":    time.Date(0, time.January, 1, 11, 32, 2, 0, time.UTC),
			"transaction_id":      1111111,
			"amount":              decimal.RequireFromString("50.01"),
			"currency":            "CAD",
			"cc_name":             nil,
			"cc_number":           nil,
			"cc_expiry":           "0125",
			"token":               "80defad45bae30e557da0e",
			"token_f4l4":          "11119999",
			"approval_code":       "T6E1ST",
			"order_number":        "INV1000",
			"customer_code":       "CST1000",
			"raw_request":         "accountId=REDACTED",
			"raw_response":        "<message></message>",
		}

		Convey("When the transaction record is built", func() {
			record := NewTransactionResourceDao(redacted, "s")

			Convey("Then the response fields map onto the record", func() {
				So(record.TransactionSuccess, ShouldBeTrue)
				So(record.ResponseMessage, ShouldEqual, "APPROVED")
				So(record.TransactionType, ShouldEqual, "s")
				So(record.TransactionID, ShouldEqual, 1111111)
				So(record.Amount, ShouldEqual, "50.01")
				So(record.Currency, ShouldEqual, "CAD")
				So(record.Token, ShouldEqual, "80defad45bae30e557da0e")
				So(record.TokenF4L4, ShouldEqual, "11119999")
				So(record.ApprovalCode, ShouldEqual, "T6E1ST")
				So(record.OrderNumber, ShouldEqual, "INV1000")
				So(record.CustomerCode, ShouldEqual, "CST1000")
				So(record.RawRequest, ShouldEqual, "accountId=REDACTED")
			})

			Convey("Then redacted nils are stored as zero values", func() {
				So(record.CCName, ShouldEqual, "")
				So(record.CCNumber, ShouldEqual, "")
			})

			Convey("Then the response date and time are combined", func() {
				So(record.DateResponse, ShouldNotBeNil)
				So(*record.DateResponse, ShouldResemble,
					time.Date(2026, time.August, 30, 11, 32, 2, 0, time.UTC))
			})

			Convey("Then the card expiry is expanded to the end of its month", func() {
				So(record.CCExpiry, ShouldNotBeNil)
				So(*record.CCExpiry, ShouldResemble,
					time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC))
			})
		})
	})

	Convey("Given a redacted response with the date half missing", t, func() {
		redacted := conversions.FieldSet{
			"transaction_success": true,
			"transaction_time":    time.Date(0, time.January, 1, 11, 32, 2, 0, time.UTC),
		}

		Convey("When the transaction record is built", func() {
			record := NewTransactionResourceDao(redacted, "s")

			Convey("Then no response date is stored", func() {
				So(record.DateResponse, ShouldBeNil)
			})
		})
	})
}

func TestUnitExpiryDate(t *testing.T) {

	Convey("Given assorted expiry values", t, func() {

		Convey("When a December expiry is expanded", func() {
			expanded := expiryDate("1226")

			Convey("Then it resolves to the 31st of December", func() {
				So(expanded, ShouldNotBeNil)
				So(*expanded, ShouldResemble, time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC))
			})
		})

		Convey("When a February expiry in a leap year is expanded", func() {
			expanded := expiryDate("0228")

			Convey("Then it resolves to the 29th of February", func() {
				So(expanded, ShouldNotBeNil)
				So(*expanded, ShouldResemble, time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC))
			})
		})

		Convey("When the expiry is empty or malformed", func() {

			Convey("Then no date is produced", func() {
				So(expiryDate(""), ShouldBeNil)
				So(expiryDate("125"), ShouldBeNil)
				So(expiryDate("ab25"), ShouldBeNil)
				So(expiryDate("1325"), ShouldBeNil)
				So(expiryDate("0025"), ShouldBeNil)
			})
		})
	})
}
