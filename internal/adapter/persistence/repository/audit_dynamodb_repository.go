package repository

import (
	"context"
	"sort"
	"strings"

	"aerocode/internal/domain/entities"
	"aerocode/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAuditTableName = "audit_records"

type auditItem struct {
	ID        string `dynamodbav:"id"`
	Action    string `dynamodbav:"action"`
	ActorID   string `dynamodbav:"actor_id"`
	TargetID  string `dynamodbav:"target_id"`
	Username  string `dynamodbav:"usuario"`
	Level     string `dynamodbav:"nivel"`
	CreatedAt string `dynamodbav:"created_at"`
}

// AuditDynamoRepository stores the audit trail.
//
// Table requirements:
//   - PK: id (string)
//
// Records are written once with attribute_not_exists and never updated.
type AuditDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IAuditRepository = (*AuditDynamoRepository)(nil)

func NewAuditDynamoRepository(ddb DynamoDBAPI, tableName string) *AuditDynamoRepository {
	return &AuditDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultAuditTableName),
	}
}

func (r *AuditDynamoRepository) Append(ctx context.Context, rec entities.AuditRecord) error {
	av, err := attributevalue.MarshalMap(auditItem{
		ID:        rec.ID,
		Action:    string(rec.Action),
		ActorID:   rec.ActorID,
		TargetID:  rec.TargetID,
		Username:  rec.Username,
		Level:     string(rec.Level),
		CreatedAt: formatTime(rec.CreatedAt),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// List scans with the filter pushed down to DynamoDB and returns records
// oldest first.
func (r *AuditDynamoRepository) List(ctx context.Context, filter entities.AuditFilter) ([]entities.AuditRecord, error) {
	in := &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	}

	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	add := func(attr, value string) {
		if value == "" {
			return
		}
		conds = append(conds, "#"+attr+" = :"+attr)
		names["#"+attr] = attr
		values[":"+attr] = &types.AttributeValueMemberS{Value: value}
	}
	add("action", string(filter.Action))
	add("actor_id", filter.ActorID)
	add("target_id", filter.TargetID)
	if len(conds) > 0 {
		in.FilterExpression = aws.String(strings.Join(conds, " AND "))
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	items, _, err := scanAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	var its []auditItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	// RFC3339Nano trims trailing zeros, so the strings do not sort by time.
	sort.SliceStable(its, func(i, j int) bool {
		return parseTime(its[i].CreatedAt).Before(parseTime(its[j].CreatedAt))
	})

	out := make([]entities.AuditRecord, 0, len(its))
	for _, it := range its {
		out = append(out, entities.AuditRecord{
			ID:        it.ID,
			Action:    entities.AuditAction(it.Action),
			ActorID:   it.ActorID,
			TargetID:  it.TargetID,
			Username:  it.Username,
			Level:     entities.PermissionLevel(it.Level),
			CreatedAt: parseTime(it.CreatedAt),
		})
	}
	return out, nil
}
