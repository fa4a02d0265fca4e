// Package db looks up optional tune metadata (title, origin, rhythm) kept
// in a DynamoDB table keyed by score filename. Metadata is enrichment only;
// callers treat lookup failures as "no metadata".
package db

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jwhearn/tunetext/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

const tableName = "tunetext-metadata"

func endpoint() string {
	if e := os.Getenv("METADATA_DB_ENDPOINT"); e != "" {
		return e
	}
	return "http://localhost:8000"
}

func GetTuneMetadatas(filenames []string) (map[string]model.TuneMetadata, error) {
	// BatchGetItem caps out at 100 keys; we never need more than a handful.
	if len(filenames) > 10 {
		return nil, fmt.Errorf("not supposed to pass in more than 10 filenames")
	}

	res := make(map[string]model.TuneMetadata)
	if len(filenames) == 0 {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		keys = append(keys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(filename)},
		})
	}

	ep := endpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &ep,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a DynamoDB session: %w", err)
	}

	client := dynamodb.New(sess)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			tableName: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return nil, fmt.Errorf("error from DynamoDB: %w", err)
	}

	for _, v := range dbres.Responses[tableName] {
		var m model.TuneMetadata
		if av, ok := v["Year"]; ok && av.N != nil {
			year, _ := strconv.ParseUint(*av.N, 10, 32)
			m.Year = uint(year)
		}
		if av, ok := v["Title"]; ok && av.S != nil {
			m.Title = *av.S
		}
		if av, ok := v["Origin"]; ok && av.S != nil {
			m.Origin = *av.S
		}
		if av, ok := v["Rhythm"]; ok && av.S != nil {
			m.Rhythm = *av.S
		}
		res[*v["PK"].S] = m
	}

	return res, nil
}
