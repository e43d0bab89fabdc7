// Package config loads service settings from the environment (and a .env file when present).
package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	EstimatesTable     string
	PaymentsTable      string

	CatalogDSN     string
	CatalogMigrate bool

	LogLevel string

	MercadoPagoAccessToken     string
	MercadoPagoTestPayerEmail  string
	MercadoPagoTestPayerUserID string
	PaymentGatewayMock         bool
}

// Load reads the configuration. Unset variables fall back to local-friendly defaults.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("ESTIMATES_TABLE", "estimates")
	v.SetDefault("PAYMENTS_TABLE", "claim_payments")
	v.SetDefault("CATALOG_MIGRATE", true)
	v.SetDefault("LOG_LEVEL", "info")

	return Config{
		Port:                       v.GetString("PORT"),
		AWSRegion:                  v.GetString("AWS_REGION"),
		AWSAccessKeyID:             v.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:         v.GetString("AWS_SECRET_ACCESS_KEY"),
		DynamoDBEndpoint:           v.GetString("DYNAMODB_ENDPOINT"),
		EstimatesTable:             v.GetString("ESTIMATES_TABLE"),
		PaymentsTable:              v.GetString("PAYMENTS_TABLE"),
		CatalogDSN:                 v.GetString("CATALOG_DATABASE_URL"),
		CatalogMigrate:             v.GetBool("CATALOG_MIGRATE"),
		LogLevel:                   v.GetString("LOG_LEVEL"),
		MercadoPagoAccessToken:     strings.TrimSpace(v.GetString("MERCADOPAGO_ACCESS_TOKEN")),
		MercadoPagoTestPayerEmail:  strings.TrimSpace(v.GetString("MERCADOPAGO_TEST_PAYER_EMAIL")),
		MercadoPagoTestPayerUserID: strings.TrimSpace(v.GetString("MERCADOPAGO_TEST_PAYER_USER_ID")),
		PaymentGatewayMock:         mockEnabled(v.GetString("PAYMENT_GATEWAY_MOCK")) || mockEnabled(v.GetString("MERCADOPAGO_MOCK")),
	}
}

func mockEnabled(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
