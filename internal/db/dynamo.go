// DynamoDB 연결 초기화 및 incident 조회 유틸
//
// 환경변수 (config 패키지 경유):
//   - DYNAMODB_REGION (default: ap-southeast-1)
//   - INCIDENT_TABLE (default: dev-incidents)

package db

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/incident-assist/backend/internal/config"
	"github.com/incident-assist/backend/internal/model"
)

// ScanAPI is the slice of the DynamoDB client the store depends on.
type ScanAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type IncidentStore struct {
	client ScanAPI
	table  string
}

func NewDynamoDBClient(ctx context.Context, awsCfg config.AWSConfig, cfg config.DynamoDBConfig) (*dynamodb.Client, error) {
	sdkCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsCfg.AccessKeyID, awsCfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load dynamodb aws config: %w", err)
	}
	return dynamodb.NewFromConfig(sdkCfg), nil
}

func NewIncidentStore(client ScanAPI, table string) *IncidentStore {
	return &IncidentStore{client: client, table: table}
}

// RecentIncidents scans up to limit rows from the incident table. The scan
// carries no sort key, so the rows come back in no particular order. An
// empty slice with a nil error means the table is reachable but has no rows.
func (s *IncidentStore) RecentIncidents(ctx context.Context, limit int) ([]model.Incident, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("incident limit must be positive, got %d", limit)
	}

	out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
		Limit:     aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching incidents: %w", err)
	}

	incidents := make([]model.Incident, 0, len(out.Items))
	for _, item := range out.Items {
		incidents = append(incidents, incidentFromItem(item))
	}
	return incidents, nil
}

// incidentFromItem unwraps the attribute-tagged row into a typed record.
// The placeholder substitution happens here and nowhere else.
func incidentFromItem(item map[string]types.AttributeValue) model.Incident {
	return model.Incident{
		ID:              stringAttr(item, "id"),
		Title:           stringAttr(item, "title"),
		Status:          stringAttr(item, "status"),
		Priority:        stringAttr(item, "priority"),
		Urgency:         stringAttr(item, "urgency"),
		Category:        stringAttr(item, "category"),
		AffectedService: stringAttr(item, "affectedService"),
		RootCause:       stringAttr(item, "rootCauseAnalysis"),
	}
}

func stringAttr(item map[string]types.AttributeValue, key string) string {
	if attr, ok := item[key].(*types.AttributeValueMemberS); ok && attr.Value != "" {
		return attr.Value
	}
	return model.FieldPlaceholder
}
