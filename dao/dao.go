package dao

import (
	"fmt"

	"github.com/commercegate/helcim-gateway/config"
	"github.com/commercegate/helcim-gateway/models"
)

// TokenNotFoundError is returned when a vault token cannot be retrieved for
// the specified owner.
type TokenNotFoundError struct {
	TokenID string
}

func (e *TokenNotFoundError) Error() string {
	return fmt.Sprintf("unable to retrieve token details for specified customer: [%s]", e.TokenID)
}

// DAO provides access to the record store
type DAO interface {
	CreateTransactionResource(dao *models.TransactionResourceDao) error
	UpsertTokenResource(dao *models.TokenResourceDao) error
	GetTokenResource(tokenID string, customerCode string, userReference string) (*models.TokenResourceDao, error)
	ListTokenResources(customerCode string, userReference string) ([]models.TokenResourceDao, error)
	Shutdown()
}

// NewGatewayDAOService returns a Mongo-backed DAO for gateway records
func NewGatewayDAOService(cfg *config.Config) DAO {
	database := getMongoDatabase(cfg.MongoDBURL, cfg.Database)
	return &MongoService{
		db:                     database,
		TransactionsCollection: cfg.TransactionsCollection,
		TokensCollection:       cfg.TokensCollection,
	}
}
