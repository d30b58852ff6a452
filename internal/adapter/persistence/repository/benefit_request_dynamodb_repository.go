package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"beneficios_inss/internal/domain/entities"
	"beneficios_inss/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const applicantCPFIndex = "applicant_cpf-index"

// BenefitRequestDynamoRepository persists BenefitRequest entities in DynamoDB.
//
// Table requirements:
//   - requests table PK: id (string)
//   - GSI applicant_cpf-index: applicant_cpf (string)
//   - protocols table PK: protocol (string)
//
// The caseworker dashboard scans the table; volumes are one agency's backlog.
type BenefitRequestDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	protocolsTable string
	now            func() time.Time
}

var _ interfaces.IBenefitRequestRepository = (*BenefitRequestDynamoRepository)(nil)

func NewBenefitRequestDynamoRepository(ddb *dynamodb.Client, tableName, protocolsTable string) *BenefitRequestDynamoRepository {
	return &BenefitRequestDynamoRepository{
		ddb:            ddb,
		tableName:      tableName,
		protocolsTable: protocolsTable,
		now:            time.Now,
	}
}

// Create writes the request and its protocol reservation in one transaction.
func (r *BenefitRequestDynamoRepository) Create(ctx context.Context, req entities.BenefitRequest) (entities.BenefitRequest, error) {
	input, err := r.createTransaction(req)
	if err != nil {
		return entities.BenefitRequest{}, err
	}

	if _, err = r.ddb.TransactWriteItems(ctx, input); err != nil {
		if transactionConditionFailed(err, protocolPutIndex) {
			return entities.BenefitRequest{}, interfaces.ErrProtocolTaken
		}
		return entities.BenefitRequest{}, err
	}
	return req, nil
}

// protocolPutIndex is the position of the protocol reservation in the Create transaction.
const protocolPutIndex = 1

func (r *BenefitRequestDynamoRepository) createTransaction(req entities.BenefitRequest) (*dynamodb.TransactWriteItemsInput, error) {
	av, err := attributevalue.MarshalMap(toRequestItem(req))
	if err != nil {
		return nil, err
	}
	reservation, err := attributevalue.MarshalMap(protocolItem{
		Protocol:  req.Protocol,
		RequestID: req.ID,
		CreatedAt: formatTime(req.RequestDate),
	})
	if err != nil {
		return nil, err
	}

	return &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.protocolsTable),
				Item:                     reservation,
				ConditionExpression:      aws.String("attribute_not_exists(#protocol)"),
				ExpressionAttributeNames: map[string]string{"#protocol": "protocol"},
			}},
		},
	}, nil
}

func (r *BenefitRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.BenefitRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BenefitRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.BenefitRequest{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BenefitRequest{}, err
	}
	return fromRequestItem(it), nil
}

func (r *BenefitRequestDynamoRepository) List(ctx context.Context, filter entities.RequestFilter) ([]entities.BenefitRequest, error) {
	var pages [][]map[string]types.AttributeValue

	statusExpr, statusValues, statusNames := statusFilterExpression(filter.Statuses)

	if filter.ApplicantCPF != "" {
		input := &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(applicantCPFIndex),
			KeyConditionExpression:    aws.String("#applicant_cpf = :applicant_cpf"),
			ExpressionAttributeNames:  mergeNames(statusNames, map[string]string{"#applicant_cpf": "applicant_cpf"}),
			ExpressionAttributeValues: mergeValues(statusValues, map[string]types.AttributeValue{":applicant_cpf": &types.AttributeValueMemberS{Value: filter.ApplicantCPF}}),
		}
		if statusExpr != "" {
			input.FilterExpression = aws.String(statusExpr)
		}
		p := dynamodb.NewQueryPaginator(r.ddb, input)
		for p.HasMorePages() {
			out, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			pages = append(pages, out.Items)
		}
	} else {
		input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
		if statusExpr != "" {
			input.FilterExpression = aws.String(statusExpr)
			input.ExpressionAttributeNames = statusNames
			input.ExpressionAttributeValues = statusValues
		}
		p := dynamodb.NewScanPaginator(r.ddb, input)
		for p.HasMorePages() {
			out, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			pages = append(pages, out.Items)
		}
	}

	list := make([]entities.BenefitRequest, 0)
	for _, items := range pages {
		var its []requestItem
		if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
			return nil, err
		}
		for _, it := range its {
			if req := fromRequestItem(it); filter.Matches(req) {
				list = append(list, req)
			}
		}
	}
	return list, nil
}

// Update writes status, denial reason and exigência in one call. The write is
// unconditional on the previous values: last write wins.
func (r *BenefitRequestDynamoRepository) Update(ctx context.Context, id string, patch entities.RequestPatch) (entities.BenefitRequest, error) {
	updateExpr, values, names, err := buildPatchExpression(patch, formatTime(r.now()))
	if err != nil {
		return entities.BenefitRequest{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.BenefitRequest{}, nil
		}
		return entities.BenefitRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.BenefitRequest{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.BenefitRequest{}, err
	}
	return fromRequestItem(it), nil
}

func buildPatchExpression(patch entities.RequestPatch, now string) (string, map[string]types.AttributeValue, map[string]string, error) {
	sets := []string{"#status = :status", "#updated_at = :updated_at"}
	var removes []string
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(patch.Status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#status":        "status",
		"#updated_at":    "updated_at",
		"#denial_reason": "denial_reason",
		"#exigencia":     "exigencia",
	}

	if patch.DenialReason != "" {
		sets = append(sets, "#denial_reason = :denial_reason")
		values[":denial_reason"] = &types.AttributeValueMemberS{Value: patch.DenialReason}
	} else {
		removes = append(removes, "#denial_reason")
	}

	if patch.Exigencia != nil {
		av, err := attributevalue.Marshal(toExigenciaItem(patch.Exigencia))
		if err != nil {
			return "", nil, nil, fmt.Errorf("marshal exigencia: %w", err)
		}
		sets = append(sets, "#exigencia = :exigencia")
		values[":exigencia"] = av
	} else {
		removes = append(removes, "#exigencia")
	}

	expr := "SET " + strings.Join(sets, ", ")
	if len(removes) > 0 {
		expr += " REMOVE " + strings.Join(removes, ", ")
	}
	return expr, values, names, nil
}

func statusFilterExpression(statuses []entities.RequestStatus) (string, map[string]types.AttributeValue, map[string]string) {
	if len(statuses) == 0 {
		return "", nil, nil
	}
	placeholders := make([]string, 0, len(statuses))
	values := make(map[string]types.AttributeValue, len(statuses))
	for i, s := range statuses {
		key := fmt.Sprintf(":status%d", i)
		placeholders = append(placeholders, key)
		values[key] = &types.AttributeValueMemberS{Value: string(s)}
	}
	expr := fmt.Sprintf("#status IN (%s)", strings.Join(placeholders, ", "))
	return expr, values, map[string]string{"#status": "status"}
}

func mergeValues(a, b map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
