package client

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

type fakeInvokeClient struct {
	gotInput *bedrockruntime.InvokeModelInput
	body     string
	err      error
}

func (f *fakeInvokeClient) InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.gotInput = params
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: []byte(f.body)}, nil
}

func TestInvokePayloadShape(t *testing.T) {
	fake := &fakeInvokeClient{body: `{"content":[{"type":"text","text":"ok"}]}`}
	c := NewBedrockClient(fake, "anthropic.claude-3-5-sonnet-20240620-v1:0")

	if _, err := c.Invoke(context.Background(), "summarize incidents"); err != nil {
		t.Fatalf("Invoke() err = %v", err)
	}

	if *fake.gotInput.ModelId != "anthropic.claude-3-5-sonnet-20240620-v1:0" {
		t.Fatalf("model id = %q", *fake.gotInput.ModelId)
	}

	var req claudeRequest
	if err := json.Unmarshal(fake.gotInput.Body, &req); err != nil {
		t.Fatalf("payload not valid JSON: %v", err)
	}
	if req.AnthropicVersion != "bedrock-2023-05-31" {
		t.Fatalf("anthropic_version = %q", req.AnthropicVersion)
	}
	if req.MaxTokens != 500 {
		t.Fatalf("max_tokens = %d, want 500", req.MaxTokens)
	}
	if req.Temperature != 0.7 {
		t.Fatalf("temperature = %v, want 0.7", req.Temperature)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
		t.Fatalf("messages = %+v, want single user message", req.Messages)
	}
	content := req.Messages[0].Content
	if len(content) != 1 || content[0].Type != "text" || content[0].Text != "summarize incidents" {
		t.Fatalf("content = %+v, want single text item with the prompt", content)
	}
}

func TestInvokeExtractsFirstTextSegment(t *testing.T) {
	fake := &fakeInvokeClient{body: `{"content":[{"type":"text","text":"first"},{"type":"text","text":"second"}]}`}
	c := NewBedrockClient(fake, "model-id")

	got, err := c.Invoke(context.Background(), "q")
	if err != nil {
		t.Fatalf("Invoke() err = %v", err)
	}
	if got != "first" {
		t.Fatalf("got %q, want %q", got, "first")
	}
}

func TestInvokeFailure(t *testing.T) {
	invokeErr := errors.New("ThrottlingException")
	c := NewBedrockClient(&fakeInvokeClient{err: invokeErr}, "model-id")

	if _, err := c.Invoke(context.Background(), "q"); !errors.Is(err, invokeErr) {
		t.Fatalf("err = %v, want wrapped invoke error", err)
	}
}

func TestInvokeEmptyContent(t *testing.T) {
	c := NewBedrockClient(&fakeInvokeClient{body: `{"content":[]}`}, "model-id")

	if _, err := c.Invoke(context.Background(), "q"); err == nil {
		t.Fatalf("expected error for empty content")
	}
}
