package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is a single-table stand-in keyed on one string attribute. It
// understands only the condition expressions the repositories send.
type fakeDynamo struct {
	mu       sync.Mutex
	key      string
	items    map[string]map[string]types.AttributeValue
	order    []string
	pageSize int

	puts      []*dynamodb.PutItemInput
	scans     []*dynamodb.ScanInput
	transacts []*dynamodb.TransactWriteItemsInput
	count     int32
	err       error
}

func newFakeDynamo(key string) *fakeDynamo {
	return &fakeDynamo{key: key, items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) keyOf(item map[string]types.AttributeValue) string {
	if s, ok := item[f.key].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) checkCondition(cond *string, id string) error {
	if cond == nil {
		return nil
	}
	_, exists := f.items[id]
	switch {
	case strings.HasPrefix(*cond, "attribute_not_exists") && exists:
		return &types.ConditionalCheckFailedException{}
	case strings.HasPrefix(*cond, "attribute_exists") && !exists:
		return &types.ConditionalCheckFailedException{}
	}
	return nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.puts = append(f.puts, in)
	id := f.keyOf(in.Item)
	if err := f.checkCondition(in.ConditionExpression, id); err != nil {
		return nil, err
	}
	if _, exists := f.items[id]; !exists {
		f.order = append(f.order, id)
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[f.keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	id := f.keyOf(in.Key)
	if err := f.checkCondition(in.ConditionExpression, id); err != nil {
		return nil, err
	}
	f.remove(id)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) remove(id string) {
	delete(f.items, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

// TransactWriteItems checks every condition before applying anything and
// reports failures the way DynamoDB does, one reason per item.
func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.transacts = append(f.transacts, in)

	reasons := make([]types.CancellationReason, len(in.TransactItems))
	failed := false
	for i, op := range in.TransactItems {
		reasons[i].Code = aws.String("None")
		var err error
		switch {
		case op.Put != nil:
			err = f.checkCondition(op.Put.ConditionExpression, f.keyOf(op.Put.Item))
		case op.Delete != nil:
			err = f.checkCondition(op.Delete.ConditionExpression, f.keyOf(op.Delete.Key))
		}
		if err != nil {
			reasons[i].Code = aws.String("ConditionalCheckFailed")
			failed = true
		}
	}
	if failed {
		return nil, &types.TransactionCanceledException{
			Message:             aws.String("Transaction cancelled"),
			CancellationReasons: reasons,
		}
	}

	for _, op := range in.TransactItems {
		switch {
		case op.Put != nil:
			id := f.keyOf(op.Put.Item)
			if _, exists := f.items[id]; !exists {
				f.order = append(f.order, id)
			}
			f.items[id] = op.Put.Item
		case op.Delete != nil:
			f.remove(f.keyOf(op.Delete.Key))
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

// Scan ignores filters, paginates by pageSize and reports f.count for COUNT selects.
func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.scans = append(f.scans, in)
	if in.Select == types.SelectCount {
		return &dynamodb.ScanOutput{Count: f.count}, nil
	}

	start := 0
	if in.ExclusiveStartKey != nil {
		last := f.keyOf(in.ExclusiveStartKey)
		for i, id := range f.order {
			if id == last {
				start = i + 1
			}
		}
	}
	end := len(f.order)
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
	}
	out := &dynamodb.ScanOutput{}
	for _, id := range f.order[start:end] {
		out.Items = append(out.Items, f.items[id])
	}
	out.Count = int32(len(out.Items))
	if end < len(f.order) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{f.key: &types.AttributeValueMemberS{Value: f.order[end-1]}}
	}
	return out, nil
}
