// Bedrock 모델 호출 클라이언트 정의
//
// 환경변수 (config 패키지 경유):
//   - BEDROCK_REGION (default: us-east-1)
//   - BEDROCK_MODEL_ID (default: anthropic.claude-3-5-sonnet-20240620-v1:0)

package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/incident-assist/backend/internal/config"
)

const (
	anthropicVersion = "bedrock-2023-05-31"
	maxTokens        = 500
	temperature      = 0.7
)

// InvokeModelAPI is the slice of the Bedrock runtime client this package uses.
type InvokeModelAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockClient 구조체 정의
type BedrockClient struct {
	client  InvokeModelAPI
	modelID string
}

type claudeRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	Messages         []claudeMessage `json:"messages"`
	MaxTokens        int             `json:"max_tokens"`
	Temperature      float64         `json:"temperature"`
}

type claudeMessage struct {
	Role    string          `json:"role"`
	Content []claudeContent `json:"content"`
}

type claudeContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type claudeResponse struct {
	Content []claudeContent `json:"content"`
}

func NewBedrockRuntimeClient(ctx context.Context, awsCfg config.AWSConfig, cfg config.BedrockConfig) (*bedrockruntime.Client, error) {
	sdkCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsCfg.AccessKeyID, awsCfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load bedrock aws config: %w", err)
	}
	return bedrockruntime.NewFromConfig(sdkCfg), nil
}

func NewBedrockClient(client InvokeModelAPI, modelID string) *BedrockClient {
	return &BedrockClient{client: client, modelID: modelID}
}

// Invoke submits the prompt as a single user message and returns the first
// text segment of the model reply. One call, no retry; a failed call is a
// final failure for the request.
func (c *BedrockClient) Invoke(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(claudeRequest{
		AnthropicVersion: anthropicVersion,
		Messages: []claudeMessage{
			{Role: "user", Content: []claudeContent{{Type: "text", Text: prompt}}},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal bedrock payload: %w", err)
	}

	out, err := c.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        payload,
	})
	if err != nil {
		return "", fmt.Errorf("error invoking bedrock: %w", err)
	}

	var resp claudeResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse bedrock response: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("bedrock returned empty content")
	}
	return resp.Content[0].Text, nil
}
