// Package db fetches optional raga metadata (thaat, meaning) from a
// DynamoDB table. The lookup is best effort: when no table is
// configured there is nothing to do and no error.
package db

import (
	"fmt"

	"github.com/jsphweid/ragadex/constants"
	"github.com/jsphweid/ragadex/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

func GetRagaMetadatas(names []string) (map[string]model.RagaMetadata, error) {
	res := make(map[string]model.RagaMetadata)

	table := constants.GetMetadataTable()
	if table == "" || len(names) == 0 {
		return res, nil
	}
	if len(names) > 10 {
		return nil, fmt.Errorf("can only fetch 10 metadatas at a time, got %v", len(names))
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, name := range names {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(name),
		}
		keys = append(keys, key)
	}

	config := aws.Config{Region: aws.String(constants.GetMetadataRegion())}
	if endpoint := constants.GetMetadataEndpoint(); endpoint != "" {
		config.Endpoint = &endpoint
	}
	sess, err := session.NewSession(&config)
	if err != nil {
		return nil, fmt.Errorf("could not create a DynamoDB session: %w", err)
	}

	client := dynamodb.New(sess)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			table: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return nil, fmt.Errorf("error from DynamoDB: %w", err)
	}

	for _, v := range dbres.Responses[table] {
		var m model.RagaMetadata
		if v["Thaat"] != nil && v["Thaat"].S != nil {
			m.Thaat = *v["Thaat"].S
		}
		if v["Meaning"] != nil && v["Meaning"].S != nil {
			m.Meaning = *v["Meaning"].S
		}
		res[*v["PK"].S] = m
	}

	return res, nil
}
