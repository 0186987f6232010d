package infrastructure

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"dalshop-gateway/dal"
	"dalshop-gateway/models"
	"dalshop-gateway/utils/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/tidwall/gjson"
)

// TableSchema mirrors one entry of table_schema.json.
type TableSchema struct {
	TableName             string                `json:"TableName"`
	AttributeDefinitions  []AttributeDefinition `json:"AttributeDefinitions"`
	KeySchema             []KeySchemaElement    `json:"KeySchema"`
	ProvisionedThroughput Throughput            `json:"ProvisionedThroughput"`
}

type AttributeDefinition struct {
	AttributeName string `json:"AttributeName"`
	AttributeType string `json:"AttributeType"`
}

type KeySchemaElement struct {
	AttributeName string `json:"AttributeName"`
	KeyType       string `json:"KeyType"`
}

type Throughput struct {
	ReadCapacityUnits  int64 `json:"ReadCapacityUnits"`
	WriteCapacityUnits int64 `json:"WriteCapacityUnits"`
}

//go:embed table_schema.json
var tablesSchema []byte

// GetTable builds a CreateTableInput for the given prefixed table name.
// The schema is looked up by the base name, so "dev_sessions" resolves to the
// "sessions" entry.
func GetTable(tableName string) (*dynamodb.CreateTableInput, error) {
	schemaKey := extractBaseTableName(tableName)

	tableJson := gjson.GetBytes(tablesSchema, schemaKey)
	if !tableJson.Exists() {
		return nil, fmt.Errorf("table schema not found for key: %s", schemaKey)
	}

	var schema TableSchema
	if err := json.Unmarshal([]byte(tableJson.Raw), &schema); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema JSON: %w", err)
	}

	// The embedded schema carries base names; the environment prefix is
	// applied here.
	schema.TableName = tableName

	return schema.ToDynamoInput(), nil
}

// extractBaseTableName strips the environment prefix from a table name,
// "dev_sessions" -> "sessions".
func extractBaseTableName(tableName string) string {
	parts := strings.Split(tableName, "_")
	if len(parts) > 1 {
		return parts[len(parts)-1]
	}
	return tableName
}

// ToDynamoInput converts the JSON schema into the SDK's CreateTableInput.
func (ts *TableSchema) ToDynamoInput() *dynamodb.CreateTableInput {
	var attrDefs []types.AttributeDefinition
	for _, a := range ts.AttributeDefinitions {
		attrDefs = append(attrDefs, types.AttributeDefinition{
			AttributeName: aws.String(a.AttributeName),
			AttributeType: types.ScalarAttributeType(a.AttributeType),
		})
	}

	var keySchema []types.KeySchemaElement
	for _, k := range ts.KeySchema {
		keySchema = append(keySchema, types.KeySchemaElement{
			AttributeName: aws.String(k.AttributeName),
			KeyType:       types.KeyType(k.KeyType),
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:            aws.String(ts.TableName),
		AttributeDefinitions: attrDefs,
		KeySchema:            keySchema,
		ProvisionedThroughput: &types.ProvisionedThroughput{
			ReadCapacityUnits:  aws.Int64(ts.ProvisionedThroughput.ReadCapacityUnits),
			WriteCapacityUnits: aws.Int64(ts.ProvisionedThroughput.WriteCapacityUnits),
		},
	}
}

// EnsureTables creates every configured table that does not exist yet. Safe
// to run on every start; existing tables are left untouched.
func EnsureTables(ctx context.Context, cfg *models.Config, db dal.DatabaseClientInterface, log logger.Logger) error {
	tables := cfg.Tables
	if len(tables) == 0 {
		tables = []string{"sessions"}
	}

	for _, base := range tables {
		tableName := cfg.DynamoDBTablePrefix + "_" + base

		if _, err := db.DescribeTable(ctx, tableName); err == nil {
			log.Debugf("Table %s already exists", tableName)
			continue
		} else if !dal.IsTableNotFound(err) {
			return fmt.Errorf("failed to describe table %s: %w", tableName, err)
		}

		input, err := GetTable(tableName)
		if err != nil {
			return err
		}
		if err := db.CreateTable(ctx, input); err != nil {
			return fmt.Errorf("failed to create table %s: %w", tableName, err)
		}
		log.Infof("✅ Created table %s", tableName)
	}

	return nil
}
