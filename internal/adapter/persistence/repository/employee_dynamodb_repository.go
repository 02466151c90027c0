package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"aerocode/internal/domain/entities"
	"aerocode/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEmployeesTableName = "employees"

	// usernameKeyPrefix marks the items that reserve a usuario.
	usernameKeyPrefix = "usuario#"
)

var (
	ErrEmployeeExists  = errors.New("employee id already stored")
	ErrReservedIDSpace = errors.New("employee id uses the reserved usuario# prefix")
)

type employeeItem struct {
	ID              string `dynamodbav:"id"`
	Name            string `dynamodbav:"nome"`
	Phone           string `dynamodbav:"telefone,omitempty"`
	Address         string `dynamodbav:"endereco,omitempty"`
	Username        string `dynamodbav:"usuario"`
	Password        string `dynamodbav:"senha"`
	PermissionLevel string `dynamodbav:"nivel_permissao"`
	CreatedAt       string `dynamodbav:"created_at,omitempty"`
}

// usernameItem reserves one usuario for one employee id. It lives in the
// employees table under id "usuario#<usuario>".
type usernameItem struct {
	ID         string `dynamodbav:"id"`
	EmployeeID string `dynamodbav:"employee_id"`
}

// EmployeeDynamoRepository persists Employee accounts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every account has a companion usuario#<usuario> item written in the same
// transaction with attribute_not_exists, so usuario stays unique and lookups
// by usuario are strongly consistent GetItem calls.
type EmployeeDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IEmployeeRepository = (*EmployeeDynamoRepository)(nil)

func NewEmployeeDynamoRepository(ddb DynamoDBAPI, tableName string) *EmployeeDynamoRepository {
	return &EmployeeDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultEmployeesTableName),
	}
}

func usernameKey(username string) string {
	return usernameKeyPrefix + username
}

func (r *EmployeeDynamoRepository) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func (r *EmployeeDynamoRepository) putNew(item map[string]types.AttributeValue) types.TransactWriteItem {
	return types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(r.tableName),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}}
}

func (r *EmployeeDynamoRepository) reservation(username, employeeID string) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(usernameItem{ID: usernameKey(username), EmployeeID: employeeID})
}

func (r *EmployeeDynamoRepository) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	if strings.HasPrefix(e.ID, usernameKeyPrefix) {
		return entities.Employee{}, fmt.Errorf("%w: %s", ErrReservedIDSpace, e.ID)
	}
	av, err := attributevalue.MarshalMap(toEmployeeItem(e))
	if err != nil {
		return entities.Employee{}, err
	}
	lock, err := r.reservation(e.Username, e.ID)
	if err != nil {
		return entities.Employee{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{r.putNew(av), r.putNew(lock)},
	})
	switch {
	case err == nil:
		return e, nil
	case canceledAt(err, 0):
		return entities.Employee{}, fmt.Errorf("%w: %s", ErrEmployeeExists, e.ID)
	case canceledAt(err, 1):
		return entities.Employee{}, interfaces.ErrUsernameTaken
	default:
		return entities.Employee{}, err
	}
}

func (r *EmployeeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	if strings.HasPrefix(id, usernameKeyPrefix) {
		return entities.Employee{}, nil
	}
	it, err := r.getItem(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	return fromEmployeeItem(it), nil
}

func (r *EmployeeDynamoRepository) getRaw(ctx context.Context, id string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            r.key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}

func (r *EmployeeDynamoRepository) getItem(ctx context.Context, id string) (employeeItem, error) {
	raw, err := r.getRaw(ctx, id)
	if err != nil || len(raw) == 0 {
		return employeeItem{}, err
	}
	var it employeeItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return employeeItem{}, err
	}
	return it, nil
}

// GetByUsername follows the usuario reservation to the account. Both reads
// are consistent, so an account is visible as soon as Create returns.
func (r *EmployeeDynamoRepository) GetByUsername(ctx context.Context, username string) (entities.Employee, error) {
	raw, err := r.getRaw(ctx, usernameKey(username))
	if err != nil || len(raw) == 0 {
		return entities.Employee{}, err
	}
	var lock usernameItem
	if err := attributevalue.UnmarshalMap(raw, &lock); err != nil {
		return entities.Employee{}, err
	}
	it, err := r.getItem(ctx, lock.EmployeeID)
	if err != nil {
		return entities.Employee{}, err
	}
	if it.Username != username {
		return entities.Employee{}, nil
	}
	return fromEmployeeItem(it), nil
}

func (r *EmployeeDynamoRepository) List(ctx context.Context) ([]entities.Employee, error) {
	items, _, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	var all []employeeItem
	if err := attributevalue.UnmarshalListOfMaps(items, &all); err != nil {
		return nil, err
	}
	its := all[:0]
	for _, it := range all {
		if !strings.HasPrefix(it.ID, usernameKeyPrefix) {
			its = append(its, it)
		}
	}
	sort.SliceStable(its, func(i, j int) bool {
		ti, tj := parseTime(its[i].CreatedAt), parseTime(its[j].CreatedAt)
		if ti.Equal(tj) {
			return its[i].ID < its[j].ID
		}
		return ti.Before(tj)
	})
	out := make([]entities.Employee, 0, len(its))
	for _, it := range its {
		out = append(out, fromEmployeeItem(it))
	}
	return out, nil
}

// Update replaces an existing account, keeping its created_at. A missing id
// yields a zero value. A usuario change moves the reservation in the same
// transaction.
func (r *EmployeeDynamoRepository) Update(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	current, err := r.getItem(ctx, e.ID)
	if err != nil {
		return entities.Employee{}, err
	}
	if current.ID == "" {
		return entities.Employee{}, nil
	}

	it := toEmployeeItem(e)
	if current.CreatedAt != "" {
		it.CreatedAt = current.CreatedAt
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Employee{}, err
	}
	put := types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}}
	txn := []types.TransactWriteItem{put}
	if current.Username != e.Username {
		lock, err := r.reservation(e.Username, e.ID)
		if err != nil {
			return entities.Employee{}, err
		}
		txn = append(txn, r.putNew(lock), types.TransactWriteItem{Delete: &types.Delete{
			TableName: aws.String(r.tableName),
			Key:       r.key(usernameKey(current.Username)),
		}})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: txn})
	switch {
	case err == nil:
		return e, nil
	case canceledAt(err, 0):
		return entities.Employee{}, nil
	case canceledAt(err, 1):
		return entities.Employee{}, interfaces.ErrUsernameTaken
	default:
		return entities.Employee{}, err
	}
}

// Delete removes the account and releases its usuario.
func (r *EmployeeDynamoRepository) Delete(ctx context.Context, id string) error {
	current, err := r.getItem(ctx, id)
	if err != nil || current.ID == "" {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{TableName: aws.String(r.tableName), Key: r.key(id)}},
			{Delete: &types.Delete{TableName: aws.String(r.tableName), Key: r.key(usernameKey(current.Username))}},
		},
	})
	return err
}

// CountByLevel runs a COUNT scan filtered on nivel_permissao, skipping exclude.
// Reservation items carry no nivel_permissao and never match.
func (r *EmployeeDynamoRepository) CountByLevel(ctx context.Context, level entities.PermissionLevel, exclude ...string) (int, error) {
	filter := "#nivel = :nivel"
	names := map[string]string{"#nivel": "nivel_permissao"}
	values := map[string]types.AttributeValue{
		":nivel": &types.AttributeValueMemberS{Value: string(level)},
	}
	if len(exclude) > 0 {
		placeholders := make([]string, 0, len(exclude))
		for i, id := range exclude {
			key := fmt.Sprintf(":x%d", i)
			placeholders = append(placeholders, key)
			values[key] = &types.AttributeValueMemberS{Value: id}
		}
		filter += " AND NOT (#id IN (" + strings.Join(placeholders, ", ") + "))"
		names = mergeNames(names, map[string]string{"#id": "id"})
	}

	_, count, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		Select:                    types.SelectCount,
		ConsistentRead:            aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func toEmployeeItem(e entities.Employee) employeeItem {
	return employeeItem{
		ID:              e.ID,
		Name:            e.Name,
		Phone:           e.Phone,
		Address:         e.Address,
		Username:        e.Username,
		Password:        e.Password,
		PermissionLevel: string(e.PermissionLevel),
		CreatedAt:       nowString(),
	}
}

func fromEmployeeItem(it employeeItem) entities.Employee {
	return entities.Employee{
		ID:              it.ID,
		Name:            it.Name,
		Phone:           it.Phone,
		Address:         it.Address,
		Username:        it.Username,
		Password:        it.Password,
		PermissionLevel: entities.PermissionLevel(it.PermissionLevel),
	}
}
