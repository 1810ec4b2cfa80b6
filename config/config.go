package config

import (
	"io/ioutil"
	"path/filepath"
	"strconv"

	"github.com/commercegate/helcim-gateway/redact"
	"github.com/ian-kent/gofigure"
	"gopkg.in/yaml.v2"
)

// Config is the gateway service config
type Config struct {
	gofigure                  interface{} `order:"env,flag"`
	APIURL                    string      `env:"GATEWAY_API_URL"                       flag:"api-url"                             flagDesc:"Vendor commerce API URL"`
	AccountID                 string      `env:"GATEWAY_ACCOUNT_ID"                    flag:"account-id"                          flagDesc:"Vendor account ID"`
	APIToken                  string      `env:"GATEWAY_API_TOKEN"                     flag:"api-token"                           flagDesc:"Vendor API access token"`
	TerminalID                string      `env:"GATEWAY_TERMINAL_ID"                   flag:"terminal-id"                         flagDesc:"Vendor terminal ID"`
	APITest                   bool        `env:"GATEWAY_API_TEST"                      flag:"api-test"                            flagDesc:"Send all transactions as test transactions"`
	RedactAll                 string      `env:"GATEWAY_REDACT_ALL"                    flag:"redact-all"                          flagDesc:"Override all redaction flags (true/false, empty for per-flag settings)"`
	RedactCCName              bool        `env:"GATEWAY_REDACT_CC_NAME"                flag:"redact-cc-name"                      flagDesc:"Redact cardholder names before persistence"`
	RedactCCNumber            bool        `env:"GATEWAY_REDACT_CC_NUMBER"              flag:"redact-cc-number"                    flagDesc:"Redact card numbers before persistence"`
	RedactCCExpiry            bool        `env:"GATEWAY_REDACT_CC_EXPIRY"              flag:"redact-cc-expiry"                    flagDesc:"Redact card expiries before persistence"`
	RedactCCCVV               bool        `env:"GATEWAY_REDACT_CC_CVV"                 flag:"redact-cc-cvv"                       flagDesc:"Redact card CVV values before persistence"`
	RedactCCType              bool        `env:"GATEWAY_REDACT_CC_TYPE"                flag:"redact-cc-type"                      flagDesc:"Redact card types before persistence"`
	RedactCCMagnetic          bool        `env:"GATEWAY_REDACT_CC_MAGNETIC"            flag:"redact-cc-magnetic"                  flagDesc:"Redact magnetic strip data before persistence"`
	RedactCCMagneticEncrypted bool        `env:"GATEWAY_REDACT_CC_MAGNETIC_ENCRYPTED"  flag:"redact-cc-magnetic-encrypted"        flagDesc:"Redact encrypted magnetic strip data before persistence"`
	RedactToken               bool        `env:"GATEWAY_REDACT_TOKEN"                  flag:"redact-token"                        flagDesc:"Redact card tokens before persistence"`
	EnableTokenVault          bool        `env:"GATEWAY_ENABLE_TOKEN_VAULT"            flag:"enable-token-vault"                  flagDesc:"Allow card tokens to be saved for reuse"`
	TokenVaultIdentifier      string      `env:"GATEWAY_TOKEN_VAULT_IDENTIFIER"        flag:"token-vault-identifier"              flagDesc:"Token owner identifier: user or customer"`
	MongoDBURL                string      `env:"MONGODB_URL"                           flag:"mongodb-url"                         flagDesc:"MongoDB server URL"`
	Database                  string      `env:"GATEWAY_MONGODB_DATABASE"              flag:"mongodb-database"                    flagDesc:"MongoDB database for gateway data"`
	TransactionsCollection    string      `env:"MONGODB_GATEWAY_TRANSACTIONS_COLLECTION" flag:"mongodb-transactions-collection"   flagDesc:"MongoDB collection for transaction records"`
	TokensCollection          string      `env:"MONGODB_GATEWAY_TOKENS_COLLECTION"     flag:"mongodb-tokens-collection"           flagDesc:"MongoDB collection for vault tokens"`
	BrokerAddr                []string    `env:"KAFKA_BROKER_ADDR"                     flag:"broker-addr"                         flagDesc:"Kafka broker cluster address (empty disables event publishing)"`
	TransactionProcessedTopic string      `env:"TRANSACTION_PROCESSED_TOPIC"           flag:"transaction-processed-topic"         flagDesc:"Transaction processed topic"`
}

// Namespace returns the application namespace used for logging
func (c *Config) Namespace() string {
	return "helcim-gateway"
}

// RedactionPolicy resolves the process-wide redaction policy from the
// configured flags. The redact-all flag is tri-state: "true" or "false"
// overrides every category, anything else leaves the per-flag settings in force.
func (c *Config) RedactionPolicy() redact.Policy {
	policy := redact.Policy{
		Name:   c.RedactCCName,
		Number: c.RedactCCNumber,
		Expiry: c.RedactCCExpiry,
		CVV:    c.RedactCCCVV,
		Type:   c.RedactCCType,
		Mag:    c.RedactCCMagnetic,
		MagEnc: c.RedactCCMagneticEncrypted,
		Token:  c.RedactToken,
	}

	if all, err := strconv.ParseBool(c.RedactAll); err == nil {
		policy.All = &all
	}

	return policy
}

// CardBrandMap contains a map of vendor card type names to canonical brand slugs
type CardBrandMap struct {
	Brands map[string]string `yaml:"card_brands"`
}

var cardBrandMap *CardBrandMap

// GetCardBrandMap fetches the card brand display map
func GetCardBrandMap() (*CardBrandMap, error) {

	if cardBrandMap != nil {
		return cardBrandMap, nil
	}

	filename, err := filepath.Abs("assets/card_brands.yml")
	if err != nil {
		return nil, err
	}

	yamlFile, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, &cardBrandMap)
	if err != nil {
		return nil, err
	}

	return cardBrandMap, nil
}

var cfg *Config

// Get configures the application and returns the configuration
func Get() (*Config, error) {

	if cfg != nil {
		return cfg, nil
	}

	cfg = &Config{
		APIURL:                    "https://secure.myhelcim.com/api/",
		RedactCCName:              true,
		RedactCCNumber:            true,
		RedactCCExpiry:            true,
		RedactCCCVV:               true,
		RedactCCType:              true,
		RedactCCMagnetic:          true,
		RedactCCMagneticEncrypted: true,
		RedactToken:               false,
		TokenVaultIdentifier:      "user",
		Database:                  "gateway",
		TransactionsCollection:    "gateway_transactions",
		TokensCollection:          "gateway_tokens",
	}

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
