package orders

import (
	"context"
	"errors"
	"sort"
	"sync"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// mockDynamo is a small in-memory mock that supports PutItem, GetItem,
// UpdateItem and Scan. It stores items per table in a nested map
// (table -> pkValue -> item) and interprets only the exact expressions the
// stores issue. Not production-grade.
//
// updateErr, when set, is returned verbatim from UpdateItem. scanPageSize,
// when positive, splits Scan results into pages linked by LastEvaluatedKey.
type mockDynamo struct {
	mu           sync.Mutex
	tables       map[string]map[string]map[string]types.AttributeValue
	putCalls     int
	updateCalls  int
	scanCalls    int
	updateErr    error
	scanPageSize int
}

func newMockDynamo() *mockDynamo {
	return &mockDynamo{
		tables: map[string]map[string]map[string]types.AttributeValue{},
	}
}

func (m *mockDynamo) ensureTable(tbl string) {
	if _, ok := m.tables[tbl]; !ok {
		m.tables[tbl] = map[string]map[string]types.AttributeValue{}
	}
}

func pkFromAttrs(attrs map[string]types.AttributeValue) (string, error) {
	if v, ok := attrs["order_id"]; ok {
		return v.(*types.AttributeValueMemberS).Value, nil
	}
	if v, ok := attrs["phone"]; ok {
		return v.(*types.AttributeValueMemberS).Value, nil
	}
	return "", errors.New("no primary key attribute")
}

func (m *mockDynamo) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putCalls++

	table := *params.TableName
	m.ensureTable(table)
	pk, err := pkFromAttrs(params.Item)
	if err != nil {
		return nil, err
	}
	m.tables[table][pk] = params.Item
	return &dyn.PutItemOutput{}, nil
}

func (m *mockDynamo) GetItem(ctx context.Context, params *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	table := *params.TableName
	m.ensureTable(table)
	pk, err := pkFromAttrs(params.Key)
	if err != nil {
		return nil, err
	}
	item, ok := m.tables[table][pk]
	if !ok {
		return &dyn.GetItemOutput{}, nil
	}
	return &dyn.GetItemOutput{Item: item}, nil
}

func (m *mockDynamo) UpdateItem(ctx context.Context, params *dyn.UpdateItemInput, optFns ...func(*dyn.Options)) (*dyn.UpdateItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateCalls++

	if m.updateErr != nil {
		return nil, m.updateErr
	}

	table := *params.TableName
	m.ensureTable(table)
	pk, err := pkFromAttrs(params.Key)
	if err != nil {
		return nil, err
	}

	item, exists := m.tables[table][pk]
	if params.ConditionExpression != nil && *params.ConditionExpression == "attribute_exists(order_id)" && !exists {
		return nil, &types.ConditionalCheckFailedException{}
	}
	if !exists {
		// UpdateItem creates the item when absent (upsert semantics)
		item = map[string]types.AttributeValue{}
		for k, v := range params.Key {
			item[k] = v
		}
	}

	// naive apply of the expressions the stores issue
	if v, ok := params.ExpressionAttributeValues[":pc"]; ok {
		item["payment_confirmed"] = v
	}
	if v, ok := params.ExpressionAttributeValues[":fn"]; ok {
		item["full_name"] = v
	}
	if v, ok := params.ExpressionAttributeValues[":ua"]; ok {
		item["updated_at"] = v
	}
	if v, ok := params.ExpressionAttributeValues[":ca"]; ok {
		// if_not_exists(created_at, :ca)
		if _, has := item["created_at"]; !has {
			item["created_at"] = v
		}
	}

	m.tables[table][pk] = item
	return &dyn.UpdateItemOutput{Attributes: item}, nil
}

func (m *mockDynamo) Scan(ctx context.Context, params *dyn.ScanInput, optFns ...func(*dyn.Options)) (*dyn.ScanOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scanCalls++

	table := *params.TableName
	m.ensureTable(table)

	keys := make([]string, 0, len(m.tables[table]))
	for k := range m.tables[table] {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	start := 0
	if len(params.ExclusiveStartKey) > 0 {
		pk, err := pkFromAttrs(params.ExclusiveStartKey)
		if err != nil {
			return nil, err
		}
		for i, k := range keys {
			if k == pk {
				start = i + 1
				break
			}
		}
	}

	end := len(keys)
	if m.scanPageSize > 0 && start+m.scanPageSize < end {
		end = start + m.scanPageSize
	}

	items := make([]map[string]types.AttributeValue, 0, end-start)
	for _, k := range keys[start:end] {
		items = append(items, m.tables[table][k])
	}

	out := &dyn.ScanOutput{Items: items}
	if end < len(keys) {
		last := m.tables[table][keys[end-1]]
		lek := map[string]types.AttributeValue{}
		if v, ok := last["order_id"]; ok {
			lek["order_id"] = v
		} else if v, ok := last["phone"]; ok {
			lek["phone"] = v
		}
		out.LastEvaluatedKey = lek
	}
	return out, nil
}
