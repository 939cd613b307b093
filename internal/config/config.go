package config

import (
	"os"
	"strings"
)

type Config struct {
	Server   ServerConfig
	AWS      AWSConfig
	DynamoDB DynamoDBConfig
	Bedrock  BedrockConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type AWSConfig struct {
	AccessKeyID     string
	SecretAccessKey string
}

// DynamoDB and Bedrock carry separate regions on purpose: the incident
// table and the model endpoint live in different regions operationally.
type DynamoDBConfig struct {
	Region string
	Table  string
}

type BedrockConfig struct {
	Region  string
	ModelID string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getenv("PORT", "8080"),
			AllowedOrigins: splitCSV(os.Getenv("ALLOWED_ORIGINS")),
		},
		AWS: AWSConfig{
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
		DynamoDB: DynamoDBConfig{
			Region: getenv("DYNAMODB_REGION", "ap-southeast-1"),
			Table:  getenv("INCIDENT_TABLE", "dev-incidents"),
		},
		Bedrock: BedrockConfig{
			Region:  getenv("BEDROCK_REGION", "us-east-1"),
			ModelID: getenv("BEDROCK_MODEL_ID", "anthropic.claude-3-5-sonnet-20240620-v1:0"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
