package repository

import (
	"context"
	"strconv"
	"time"

	"autopecas_api/internal/domain/entities"
	"autopecas_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultPartsTableName = "pecas"
	defaultTimeoutSeconds = 5
)

// partItem is the DynamoDB row layout minus preco, which is written as a
// number attribute by hand so the stored value keeps its exact decimal form.
type partItem struct {
	ID         string `dynamodbav:"id"`
	Nome       string `dynamodbav:"nome"`
	Codigo     string `dynamodbav:"codigo"`
	Quantidade int    `dynamodbav:"quantidade"`
	Descricao  string `dynamodbav:"descricao"`
	Fabricante string `dynamodbav:"fabricante"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// PartDynamoRepository persists Part entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Writes are intentionally unconditional: existence is confirmed by the use
// case before update/delete, and there is no conditional expression backing
// that check. Concurrent writers against the same id are last-writer-wins.
type PartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	timeout   time.Duration
}

var _ interfaces.IPartRepository = (*PartDynamoRepository)(nil)

func NewPartDynamoRepository(ddb *dynamodb.Client) *PartDynamoRepository {
	return &PartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTS_TABLE", defaultPartsTableName),
		timeout:   time.Duration(atoienvDefault("DYNAMODB_TIMEOUT", defaultTimeoutSeconds)) * time.Second,
	}
}

func (r *PartDynamoRepository) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	av, err := marshalPart(p)
	if err != nil {
		return entities.Part{}, err
	}

	ctx, cancel := r.bound(ctx)
	defer cancel()

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Part, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Part{}, err
	}
	if len(out.Item) == 0 {
		return entities.Part{}, nil
	}
	return unmarshalPart(out.Item)
}

func (r *PartDynamoRepository) ListAll(ctx context.Context) ([]entities.Part, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	parts := []entities.Part{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			p, err := unmarshalPart(item)
			if err != nil {
				return nil, err
			}
			parts = append(parts, p)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return parts, nil
}

func (r *PartDynamoRepository) Update(ctx context.Context, id string, change entities.PartChange) (entities.Part, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := buildUpdateExpression(change, now)

	ctx, cancel := r.bound(ctx)
	defer cancel()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Part{}, err
	}
	return unmarshalPart(out.Attributes)
}

func (r *PartDynamoRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *PartDynamoRepository) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// buildUpdateExpression produces the SET expression for a partial update:
// updated_at is always refreshed, then exactly the supplied fields are
// written, in a fixed order. preco keeps its exact decimal form as an N
// attribute; quantidade is written as an integer.
func buildUpdateExpression(change entities.PartChange, now string) (string, map[string]types.AttributeValue, map[string]string) {
	expr := "SET #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
	}

	set := func(field string, value types.AttributeValue) {
		expr += ", #" + field + " = :" + field
		values[":"+field] = value
		names["#"+field] = field
	}

	if change.Nome != nil {
		set("nome", &types.AttributeValueMemberS{Value: *change.Nome})
	}
	if change.Codigo != nil {
		set("codigo", &types.AttributeValueMemberS{Value: *change.Codigo})
	}
	if change.Preco != nil {
		set("preco", &types.AttributeValueMemberN{Value: change.Preco.String()})
	}
	if change.Quantidade != nil {
		set("quantidade", &types.AttributeValueMemberN{Value: strconv.Itoa(*change.Quantidade)})
	}
	if change.Descricao != nil {
		set("descricao", &types.AttributeValueMemberS{Value: *change.Descricao})
	}
	if change.Fabricante != nil {
		set("fabricante", &types.AttributeValueMemberS{Value: *change.Fabricante})
	}

	return expr, values, names
}

func marshalPart(p entities.Part) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(toPartItem(p))
	if err != nil {
		return nil, err
	}
	av["preco"] = &types.AttributeValueMemberN{Value: p.Preco.String()}
	return av, nil
}

func unmarshalPart(av map[string]types.AttributeValue) (entities.Part, error) {
	var it partItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Part{}, err
	}
	p := fromPartItem(it)

	if n, ok := av["preco"].(*types.AttributeValueMemberN); ok {
		preco, err := decimal.NewFromString(n.Value)
		if err != nil {
			return entities.Part{}, err
		}
		p.Preco = preco
	}
	return p, nil
}

func toPartItem(p entities.Part) partItem {
	return partItem{
		ID:         p.ID,
		Nome:       p.Nome,
		Codigo:     p.Codigo,
		Quantidade: p.Quantidade,
		Descricao:  p.Descricao,
		Fabricante: p.Fabricante,
		CreatedAt:  p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPartItem(it partItem) entities.Part {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Part{
		ID:         it.ID,
		Nome:       it.Nome,
		Codigo:     it.Codigo,
		Quantidade: it.Quantidade,
		Descricao:  it.Descricao,
		Fabricante: it.Fabricante,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
