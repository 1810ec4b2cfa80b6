package gateway

import (
	"github.com/commercegate/helcim-gateway/conversions"
	"github.com/commercegate/helcim-gateway/models"
)

// ownerFilter splits an owner reference into the customer code / user
// reference pair the DAO filters on, according to the vault identifier.
func (g *Gateway) ownerFilter(owner string) (customerCode, userReference string) {
	if g.VaultIdentifier == "customer" {
		return owner, ""
	}
	return "", owner
}

// RetrieveTokenDetails fetches a stored vault token owned by the given
// customer and maps it into the field set for a token payment. The returned
// set can be passed straight into a card transaction.
func (g *Gateway) RetrieveTokenDetails(tokenID string, owner string) (conversions.FieldSet, error) {

	customerCode, userReference := g.ownerFilter(owner)

	token, err := g.DAO.GetTokenResource(tokenID, customerCode, userReference)
	if err != nil {
		return nil, err
	}

	return conversions.FieldSet{
		"token":         token.Token,
		"token_f4l4":    token.TokenF4L4,
		"customer_code": token.CustomerCode,
	}, nil
}

// SavedTokens lists the vault tokens stored for the given owner.
func (g *Gateway) SavedTokens(owner string) ([]models.TokenResourceDao, error) {
	customerCode, userReference := g.ownerFilter(owner)
	return g.DAO.ListTokenResources(customerCode, userReference)
}
