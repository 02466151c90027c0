package repository

import (
	"context"
	"sort"

	"aerocode/internal/domain/entities"
	"aerocode/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAircraftTableName = "aircraft"

type partItem struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"nome"`
	Type     string `dynamodbav:"tipo"`
	Supplier string `dynamodbav:"fornecedor"`
	Status   string `dynamodbav:"status"`
}

type stageItem struct {
	ID           string   `dynamodbav:"id"`
	Name         string   `dynamodbav:"nome"`
	DeadlineDays int      `dynamodbav:"prazo_dias"`
	Status       string   `dynamodbav:"status"`
	Order        int      `dynamodbav:"ordem"`
	EmployeeIDs  []string `dynamodbav:"funcionarios"`
}

type testItem struct {
	ID        string `dynamodbav:"id"`
	Type      string `dynamodbav:"tipo"`
	Result    string `dynamodbav:"resultado"`
	CreatedAt string `dynamodbav:"created_at"`
}

type aircraftItem struct {
	Code      string      `dynamodbav:"codigo"`
	Model     string      `dynamodbav:"modelo"`
	Type      string      `dynamodbav:"tipo"`
	Capacity  int         `dynamodbav:"capacidade"`
	RangeKm   string      `dynamodbav:"alcance_km"`
	Parts     []partItem  `dynamodbav:"pecas"`
	Stages    []stageItem `dynamodbav:"etapas"`
	Tests     []testItem  `dynamodbav:"testes"`
	CreatedAt string      `dynamodbav:"created_at"`
	UpdatedAt string      `dynamodbav:"updated_at"`
}

// AircraftDynamoRepository persists Aircraft aggregates in DynamoDB.
//
// Table requirements:
//   - PK: codigo (string)
//
// Parts, stages and tests live inside the aircraft item, so every engine
// mutation is a single conditional PutItem.
type AircraftDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IAircraftRepository = (*AircraftDynamoRepository)(nil)

func NewAircraftDynamoRepository(ddb DynamoDBAPI, tableName string) *AircraftDynamoRepository {
	return &AircraftDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultAircraftTableName),
	}
}

func (r *AircraftDynamoRepository) Create(ctx context.Context, a entities.Aircraft) (bool, error) {
	if err := r.put(ctx, a, "attribute_not_exists(#codigo)"); err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *AircraftDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Aircraft, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"codigo": &types.AttributeValueMemberS{Value: code},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Aircraft{}, err
	}
	if len(out.Item) == 0 {
		return entities.Aircraft{}, nil
	}

	var it aircraftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Aircraft{}, err
	}
	return fromAircraftItem(it), nil
}

// List scans the whole table and orders the result by creation time.
func (r *AircraftDynamoRepository) List(ctx context.Context) ([]entities.Aircraft, error) {
	items, _, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.Aircraft, 0, len(items))
	for _, item := range items {
		var it aircraftItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromAircraftItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Code < out[j].Code
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Save replaces an existing aircraft. A missing codigo yields a zero value.
func (r *AircraftDynamoRepository) Save(ctx context.Context, a entities.Aircraft) (entities.Aircraft, error) {
	if err := r.put(ctx, a, "attribute_exists(#codigo)"); err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Aircraft{}, nil
		}
		return entities.Aircraft{}, err
	}
	return a, nil
}

func (r *AircraftDynamoRepository) Delete(ctx context.Context, code string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"codigo": &types.AttributeValueMemberS{Value: code},
		},
		ConditionExpression:      aws.String("attribute_exists(#codigo)"),
		ExpressionAttributeNames: map[string]string{"#codigo": "codigo"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *AircraftDynamoRepository) put(ctx context.Context, a entities.Aircraft, condition string) error {
	av, err := attributevalue.MarshalMap(toAircraftItem(a))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#codigo": "codigo",
		},
	})
	return err
}

func toAircraftItem(a entities.Aircraft) aircraftItem {
	it := aircraftItem{
		Code:      a.Code,
		Model:     a.Model,
		Type:      string(a.Type),
		Capacity:  a.Capacity,
		RangeKm:   floatToString(a.RangeKm),
		Parts:     make([]partItem, 0, len(a.Parts)),
		Stages:    make([]stageItem, 0, len(a.Stages)),
		Tests:     make([]testItem, 0, len(a.Tests)),
		CreatedAt: formatTime(a.CreatedAt),
		UpdatedAt: formatTime(a.UpdatedAt),
	}
	for _, p := range a.Parts {
		it.Parts = append(it.Parts, partItem{ID: p.ID, Name: p.Name, Type: string(p.Type), Supplier: p.Supplier, Status: string(p.Status)})
	}
	for _, s := range a.Stages {
		it.Stages = append(it.Stages, stageItem{
			ID:           s.ID,
			Name:         s.Name,
			DeadlineDays: s.DeadlineDays,
			Status:       string(s.Status),
			Order:        s.Order,
			EmployeeIDs:  append([]string{}, s.EmployeeIDs...),
		})
	}
	for _, t := range a.Tests {
		it.Tests = append(it.Tests, testItem{ID: t.ID, Type: string(t.Type), Result: string(t.Result), CreatedAt: formatTime(t.CreatedAt)})
	}
	return it
}

func fromAircraftItem(it aircraftItem) entities.Aircraft {
	a := entities.Aircraft{
		Code:      it.Code,
		Model:     it.Model,
		Type:      entities.AircraftType(it.Type),
		Capacity:  it.Capacity,
		RangeKm:   parseFloat(it.RangeKm),
		Parts:     make([]entities.Part, 0, len(it.Parts)),
		Stages:    make([]entities.Stage, 0, len(it.Stages)),
		Tests:     make([]entities.Test, 0, len(it.Tests)),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	for _, p := range it.Parts {
		a.Parts = append(a.Parts, entities.Part{
			ID:       p.ID,
			Name:     p.Name,
			Type:     entities.PartType(p.Type),
			Supplier: p.Supplier,
			Status:   entities.PartStatus(p.Status),
		})
	}
	for _, s := range it.Stages {
		a.Stages = append(a.Stages, entities.Stage{
			ID:           s.ID,
			Name:         s.Name,
			DeadlineDays: s.DeadlineDays,
			Status:       entities.StageStatus(s.Status),
			Order:        s.Order,
			EmployeeIDs:  append([]string{}, s.EmployeeIDs...),
		})
	}
	for _, t := range it.Tests {
		a.Tests = append(a.Tests, entities.Test{
			ID:        t.ID,
			Type:      entities.TestType(t.Type),
			Result:    entities.TestResult(t.Result),
			CreatedAt: parseTime(t.CreatedAt),
		})
	}
	return a
}
