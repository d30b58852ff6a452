package repository

import (
	"context"

	"beneficios_inss/internal/domain/entities"
	"beneficios_inss/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UserProfileDynamoRepository persists citizen profiles in DynamoDB.
//
// Table requirements:
//   - PK: cpf (string, formatted 000.000.000-00)
type UserProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserProfileRepository = (*UserProfileDynamoRepository)(nil)

func NewUserProfileDynamoRepository(ddb *dynamodb.Client, tableName string) *UserProfileDynamoRepository {
	return &UserProfileDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *UserProfileDynamoRepository) Create(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error) {
	av, err := attributevalue.MarshalMap(toUserItem(p))
	if err != nil {
		return entities.UserProfile{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#cpf)"),
		ExpressionAttributeNames: map[string]string{
			"#cpf": "cpf",
		},
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	return p, nil
}

func (r *UserProfileDynamoRepository) GetByCPF(ctx context.Context, cpf string) (entities.UserProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"cpf": &types.AttributeValueMemberS{Value: cpf},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.UserProfile{}, nil
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UserProfile{}, err
	}
	return fromUserItem(it), nil
}

// Update replaces the whole profile; it must already exist.
func (r *UserProfileDynamoRepository) Update(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error) {
	av, err := attributevalue.MarshalMap(toUserItem(p))
	if err != nil {
		return entities.UserProfile{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#cpf)"),
		ExpressionAttributeNames: map[string]string{
			"#cpf": "cpf",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.UserProfile{}, nil
		}
		return entities.UserProfile{}, err
	}
	return p, nil
}
