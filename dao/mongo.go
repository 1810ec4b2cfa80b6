package dao

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/commercegate/helcim-gateway/models"
	"github.com/companieshouse/chs.go/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	client, err := mongo.Connect(ctx, clientOptions)

	// assume the caller of this func cannot handle the case where there is no database connection so the prog must
	// crash here as the service cannot continue.
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	// check we can connect to the mongodb instance. failure here should result in a crash.
	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = client.Ping(pingContext, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		os.Exit(1)
	}

	log.Info("connected to mongodb successfully")

	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB as the backend driver.
type MongoService struct {
	db                     MongoDatabaseInterface
	TransactionsCollection string
	TokensCollection       string
}

// CreateTransactionResource stores a redacted transaction record
func (m *MongoService) CreateTransactionResource(dao *models.TransactionResourceDao) error {

	dao.ID = primitive.NewObjectID()

	collection := m.db.Collection(m.TransactionsCollection)
	_, err := collection.InsertOne(context.Background(), dao)
	if err != nil {
		log.Error(err)
		return err
	}

	return nil
}

// UpsertTokenResource stores a vault token unless an identical token already
// exists for the same owner, in which case the stored entry is kept.
func (m *MongoService) UpsertTokenResource(dao *models.TokenResourceDao) error {

	collection := m.db.Collection(m.TokensCollection)

	filter := bson.M{
		"token":         dao.Token,
		"tokenF4L4":     dao.TokenF4L4,
		"customerCode":  dao.CustomerCode,
		"userReference": dao.UserReference,
	}

	err := collection.FindOne(context.Background(), filter).Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Error(err)
		return err
	}

	dao.ID = primitive.NewObjectID()
	dao.DateAdded = time.Now().UTC()

	_, err = collection.InsertOne(context.Background(), dao)
	if err != nil {
		log.Error(err)
		return err
	}

	return nil
}

// GetTokenResource retrieves a vault token by id, scoped to its owner. The
// owner filter uses whichever of customerCode and userReference are set, so a
// token can never be fetched across customers.
func (m *MongoService) GetTokenResource(tokenID string, customerCode string, userReference string) (*models.TokenResourceDao, error) {

	id, err := primitive.ObjectIDFromHex(tokenID)
	if err != nil {
		return nil, &TokenNotFoundError{TokenID: tokenID}
	}

	filter := bson.M{"_id": id}
	if customerCode != "" {
		filter["customerCode"] = customerCode
	}
	if userReference != "" {
		filter["userReference"] = userReference
	}

	var token models.TokenResourceDao
	err = m.db.Collection(m.TokensCollection).FindOne(context.Background(), filter).Decode(&token)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &TokenNotFoundError{TokenID: tokenID}
	}
	if err != nil {
		log.Error(err)
		return nil, err
	}

	return &token, nil
}

// ListTokenResources returns the stored tokens for an owner
func (m *MongoService) ListTokenResources(customerCode string, userReference string) ([]models.TokenResourceDao, error) {

	filter := bson.M{}
	if customerCode != "" {
		filter["customerCode"] = customerCode
	}
	if userReference != "" {
		filter["userReference"] = userReference
	}

	cursor, err := m.db.Collection(m.TokensCollection).Find(context.Background(), filter)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	defer cursor.Close(context.Background())

	var tokens []models.TokenResourceDao
	if err := cursor.All(context.Background(), &tokens); err != nil {
		log.Error(err)
		return nil, err
	}

	return tokens, nil
}

// Shutdown is a hook that can be used to clean up db resources
func (m *MongoService) Shutdown() {
	if client != nil {
		err := client.Disconnect(context.Background())
		if err != nil {
			log.Error(err)
			return
		}
		log.Info("disconnected from mongodb successfully")
	}
}
