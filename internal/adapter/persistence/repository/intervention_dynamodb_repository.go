package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"sav_interventions/internal/domain/entities"
	"sav_interventions/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInterventionsTableName = "interventions"
	defaultCountersTableName      = "intervention_counters"

	interventionsNumeroIndex      = "numero-index"
	interventionsReclamationIndex = "reclamation_id-index"
	interventionsStatusIndex      = "status-index"
)

type interventionItem struct {
	ID                  string `dynamodbav:"id"`
	Numero              string `dynamodbav:"numero"`
	ReclamationID       string `dynamodbav:"reclamation_id"`
	TechnicianName      string `dynamodbav:"technician_name"`
	TechnicianSpecialty string `dynamodbav:"technician_specialty"`
	PlannedDate         string `dynamodbav:"planned_date"`
	StartedAt           string `dynamodbav:"started_at,omitempty"`
	FinishedAt          string `dynamodbav:"finished_at,omitempty"`
	Status              string `dynamodbav:"status"`
	Description         string `dynamodbav:"description"`
	Report              string `dynamodbav:"report,omitempty"`
	UnderWarranty       bool   `dynamodbav:"under_warranty"`
	LaborCost           string `dynamodbav:"labor_cost,omitempty"`
	PartsCost           string `dynamodbav:"parts_cost,omitempty"`
	InvoiceAmount       string `dynamodbav:"invoice_amount,omitempty"`
	InvoicedAt          string `dynamodbav:"invoiced_at,omitempty"`
	InvoicePaid         bool   `dynamodbav:"invoice_paid"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
	CreatedBy           string `dynamodbav:"created_by,omitempty"`
}

// InterventionDynamoRepository persists Intervention entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: numero-index (PK: numero)
//   - GSI: reclamation_id-index (PK: reclamation_id)
//   - GSI: status-index (PK: status)
//
// A companion counters table (PK: day) backs the per-day numero sequence via
// an atomic ADD, so two concurrent creations never share a numero.

type InterventionDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	countersName string
}

var _ interfaces.IInterventionRepository = (*InterventionDynamoRepository)(nil)

func NewInterventionDynamoRepository(ddb *dynamodb.Client) *InterventionDynamoRepository {
	return &InterventionDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("INTERVENTIONS_TABLE", defaultInterventionsTableName),
		countersName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *InterventionDynamoRepository) Create(ctx context.Context, i entities.Intervention) (entities.Intervention, error) {
	it := toInterventionItem(i)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Intervention{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Intervention{}, err
	}
	return i, nil
}

func (r *InterventionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Intervention, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Intervention{}, err
	}
	if len(out.Item) == 0 {
		return entities.Intervention{}, nil
	}

	var it interventionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Intervention{}, err
	}
	return fromInterventionItem(it), nil
}

func (r *InterventionDynamoRepository) GetByNumero(ctx context.Context, numero string) (entities.Intervention, error) {
	items, err := r.queryIndex(ctx, interventionsNumeroIndex, "numero", numero)
	if err != nil {
		return entities.Intervention{}, err
	}
	if len(items) == 0 {
		return entities.Intervention{}, nil
	}
	return items[0], nil
}

func (r *InterventionDynamoRepository) List(ctx context.Context) ([]entities.Intervention, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Intervention, 0, len(out.Items))
	for _, raw := range out.Items {
		var it interventionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInterventionItem(it))
	}
	sortByPlannedDateDesc(items)
	return items, nil
}

func (r *InterventionDynamoRepository) ListByReclamationID(ctx context.Context, reclamationID string) ([]entities.Intervention, error) {
	items, err := r.queryIndex(ctx, interventionsReclamationIndex, "reclamation_id", reclamationID)
	if err != nil {
		return nil, err
	}
	sortByPlannedDateDesc(items)
	return items, nil
}

func (r *InterventionDynamoRepository) ListByStatus(ctx context.Context, status entities.InterventionStatus) ([]entities.Intervention, error) {
	items, err := r.queryIndex(ctx, interventionsStatusIndex, "status", string(status))
	if err != nil {
		return nil, err
	}
	sortByPlannedDateDesc(items)
	return items, nil
}

// Update persists a full snapshot guarded by the updated_at value the caller
// observed. A stale snapshot loses with ErrVersionConflict instead of
// overwriting the winner.
func (r *InterventionDynamoRepository) Update(ctx context.Context, i entities.Intervention, expectedUpdatedAt time.Time) (entities.Intervention, error) {
	it := toInterventionItem(i)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Intervention{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #updated_at = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: expectedUpdatedAt.UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Distinguish a vanished row from a concurrent writer.
			current, getErr := r.GetByID(ctx, i.ID)
			if getErr != nil {
				return entities.Intervention{}, getErr
			}
			if current.ID == "" {
				return entities.Intervention{}, nil
			}
			return entities.Intervention{}, interfaces.ErrVersionConflict
		}
		return entities.Intervention{}, err
	}
	return i, nil
}

func (r *InterventionDynamoRepository) NextSequence(ctx context.Context, day string) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersName),
		Key: map[string]types.AttributeValue{
			"day": &types.AttributeValueMemberS{Value: day},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	raw, ok := out.Attributes["seq"]
	if !ok {
		return 0, errors.New("counter update returned no seq attribute")
	}
	n, ok := raw.(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("counter seq attribute is not a number")
	}
	return strconv.Atoi(n.Value)
}

func (r *InterventionDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Intervention, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Intervention, 0, len(out.Items))
	for _, raw := range out.Items {
		var it interventionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInterventionItem(it))
	}
	return items, nil
}

func sortByPlannedDateDesc(items []entities.Intervention) {
	sort.Slice(items, func(a, b int) bool {
		return items[a].PlannedDate.After(items[b].PlannedDate)
	})
}

func toInterventionItem(i entities.Intervention) interventionItem {
	return interventionItem{
		ID:                  i.ID,
		Numero:              i.Numero,
		ReclamationID:       i.ReclamationID,
		TechnicianName:      i.TechnicianName,
		TechnicianSpecialty: i.TechnicianSpecialty,
		PlannedDate:         i.PlannedDate.UTC().Format(time.RFC3339Nano),
		StartedAt:           optionalTimeToString(i.StartedAt),
		FinishedAt:          optionalTimeToString(i.FinishedAt),
		Status:              string(i.Status),
		Description:         i.Description,
		Report:              i.Report,
		UnderWarranty:       i.UnderWarranty,
		LaborCost:           optionalFloatToString(i.LaborCost),
		PartsCost:           optionalFloatToString(i.PartsCost),
		InvoiceAmount:       optionalFloatToString(i.InvoiceAmount),
		InvoicedAt:          optionalTimeToString(i.InvoicedAt),
		InvoicePaid:         i.InvoicePaid,
		CreatedAt:           i.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           i.UpdatedAt.UTC().Format(time.RFC3339Nano),
		CreatedBy:           i.CreatedBy,
	}
}

func fromInterventionItem(it interventionItem) entities.Intervention {
	plannedDate, _ := time.Parse(time.RFC3339Nano, it.PlannedDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Intervention{
		ID:                  it.ID,
		Numero:              it.Numero,
		ReclamationID:       it.ReclamationID,
		TechnicianName:      it.TechnicianName,
		TechnicianSpecialty: it.TechnicianSpecialty,
		PlannedDate:         plannedDate,
		StartedAt:           stringToOptionalTime(it.StartedAt),
		FinishedAt:          stringToOptionalTime(it.FinishedAt),
		Status:              entities.InterventionStatus(it.Status),
		Description:         it.Description,
		Report:              it.Report,
		UnderWarranty:       it.UnderWarranty,
		LaborCost:           stringToOptionalFloat(it.LaborCost),
		PartsCost:           stringToOptionalFloat(it.PartsCost),
		InvoiceAmount:       stringToOptionalFloat(it.InvoiceAmount),
		InvoicedAt:          stringToOptionalTime(it.InvoicedAt),
		InvoicePaid:         it.InvoicePaid,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
		CreatedBy:           it.CreatedBy,
	}
}

func optionalTimeToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func stringToOptionalTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}

func optionalFloatToString(v *float64) string {
	if v == nil {
		return ""
	}
	return floatToString(*v)
}

func stringToOptionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
