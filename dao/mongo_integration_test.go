package dao

import (
	"context"
	"testing"

	"github.com/commercegate/helcim-gateway/models"
	testutils "github.com/commercegate/helcim-gateway/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestIntegrationGetMongoClient(t *testing.T) {

	Convey("Given that testcontainers has started a mongo container", t, func() {
		container, uri, _ := testutils.SetupMongoContainer()
		defer container.Terminate(context.Background())

		mongoClient := getMongoClient(uri)
		defer mongoClient.Disconnect(context.Background())

		Convey("Then getMongoClient should create a valid mongo client instance using the supplied uri", func() {
			So(mongoClient, ShouldNotBeNil)
		})

		Convey("Test MongoDatabaseConnection", func() {
			getMongoDatabase(uri, "test")
		})

		Convey("Create transaction resource will store into the new database", func() {
			transactionResource := &models.TransactionResourceDao{
				TransactionID:      1111111,
				TransactionType:    "s",
				TransactionSuccess: true,
				ResponseMessage:    "APPROVED",
				Amount:             "50.01",
			}
			m := &MongoService{
				db:                     getMongoDatabase(uri, "test"),
				TransactionsCollection: "gateway_transactions",
				TokensCollection:       "gateway_tokens",
			}
			err := m.CreateTransactionResource(transactionResource)
			So(err, ShouldBeNil)
			// Verify that the resource was created

			db := getMongoDatabase(uri, "test")
			So(db.Collection("gateway_transactions").FindOne(context.Background(), map[string]interface{}{"transactionID": 1111111}).Err(), ShouldBeNil)
		})

		Convey("Upsert token resource will store into the new database exactly once", func() {
			tokenResource := &models.TokenResourceDao{
				Token:         "80defad45bae30e557da0e",
				TokenF4L4:     "11119999",
				CCType:        "MasterCard",
				CustomerCode:  "CST1000",
				UserReference: "user-1000",
			}
			m := &MongoService{
				db:                     getMongoDatabase(uri, "test"),
				TransactionsCollection: "gateway_transactions",
				TokensCollection:       "gateway_tokens",
			}
			err := m.UpsertTokenResource(tokenResource)
			So(err, ShouldBeNil)
			So(tokenResource.DateAdded.IsZero(), ShouldBeFalse)

			// A second save of the same token for the same owner keeps the stored entry
			duplicate := &models.TokenResourceDao{
				Token:         "80defad45bae30e557da0e",
				TokenF4L4:     "11119999",
				CustomerCode:  "CST1000",
				UserReference: "user-1000",
			}
			err = m.UpsertTokenResource(duplicate)
			So(err, ShouldBeNil)

			tokens, err := m.ListTokenResources("CST1000", "user-1000")
			So(err, ShouldBeNil)
			So(len(tokens), ShouldEqual, 1)
		})

		Convey("Get token resource is scoped to its owner", func() {
			tokenResource := &models.TokenResourceDao{
				Token:         "90defad45bae30e557da0e",
				TokenF4L4:     "22228888",
				CustomerCode:  "CST2000",
				UserReference: "user-2000",
			}
			m := &MongoService{
				db:                     getMongoDatabase(uri, "test"),
				TransactionsCollection: "gateway_transactions",
				TokensCollection:       "gateway_tokens",
			}
			err := m.UpsertTokenResource(tokenResource)
			So(err, ShouldBeNil)

			fetched, err := m.GetTokenResource(tokenResource.ID.Hex(), "", "user-2000")
			So(err, ShouldBeNil)
			So(fetched.Token, ShouldEqual, "90defad45bae30e557da0e")

			_, err = m.GetTokenResource(tokenResource.ID.Hex(), "", "some-other-user")
			So(err, ShouldHaveSameTypeAs, &TokenNotFoundError{})
		})
	})
}
