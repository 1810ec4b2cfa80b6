package config

import (
	"testing"

	_ "github.com/commercegate/helcim-gateway/testing"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitRedactionPolicy(t *testing.T) {

	Convey("Given a config with per-category redaction flags", t, func() {
		cfg := &Config{
			RedactCCName:   true,
			RedactCCNumber: true,
			RedactToken:    false,
		}

		Convey("When the redact-all flag is unset", func() {
			policy := cfg.RedactionPolicy()

			Convey("Then the per-category flags stand", func() {
				So(policy.All, ShouldBeNil)
				So(policy.Name, ShouldBeTrue)
				So(policy.Number, ShouldBeTrue)
				So(policy.Token, ShouldBeFalse)
			})
		})

		Convey("When the redact-all flag is 'true'", func() {
			cfg.RedactAll = "true"
			policy := cfg.RedactionPolicy()

			Convey("Then the override is set", func() {
				So(policy.All, ShouldNotBeNil)
				So(*policy.All, ShouldBeTrue)
			})
		})

		Convey("When the redact-all flag is 'false'", func() {
			cfg.RedactAll = "false"
			policy := cfg.RedactionPolicy()

			Convey("Then the override is cleared", func() {
				So(policy.All, ShouldNotBeNil)
				So(*policy.All, ShouldBeFalse)
			})
		})

		Convey("When the redact-all flag is not a boolean", func() {
			cfg.RedactAll = "maybe"
			policy := cfg.RedactionPolicy()

			Convey("Then the per-category flags stand", func() {
				So(policy.All, ShouldBeNil)
			})
		})
	})
}

func TestUnitGetCardBrandMap(t *testing.T) {

	Convey("Given the card brand asset file", t, func() {

		Convey("When the brand map is loaded", func() {
			brandMap, err := GetCardBrandMap()

			Convey("Then vendor card types resolve to brand slugs", func() {
				So(err, ShouldBeNil)
				So(brandMap, ShouldNotBeNil)
				So(brandMap.Brands["MasterCard"], ShouldEqual, "mastercard")
				So(brandMap.Brands["Visa"], ShouldEqual, "visa")
			})
		})
	})
}
