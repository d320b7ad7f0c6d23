package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/strata-labs/strata-backend/internal/projects/domain"
)

// DynamoStore persists projects in a DynamoDB table with partition key
// user_id and sort key project_id.
type DynamoStore struct {
	client *dynamodb.Client
	table  string
}

// NewDynamoStore creates a DynamoDB-backed project store.
func NewDynamoStore(client *dynamodb.Client, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

// Exists queries the user's partition and filters by exact website_url match.
func (s *DynamoStore) Exists(ctx context.Context, userID, websiteURL string) (bool, error) {
	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String("user_id = :user_id"),
		FilterExpression:       aws.String("website_url = :website_url"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id":     &types.AttributeValueMemberS{Value: userID},
			":website_url": &types.AttributeValueMemberS{Value: websiteURL},
		},
	})
	if err != nil {
		return false, fmt.Errorf("query projects for user %s: %w", userID, err)
	}
	return len(out.Items) > 0, nil
}

// Insert puts the full item. No condition expression: a project_id
// collision overwrites, matching the Store contract.
func (s *DynamoStore) Insert(ctx context.Context, p *domain.Project) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal project %s: %w", p.ProjectID, err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put project %s: %w", p.ProjectID, err)
	}
	return nil
}

// Ping verifies the table is reachable.
func (s *DynamoStore) Ping(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		return fmt.Errorf("describe table %s: %w", s.table, err)
	}
	return nil
}
