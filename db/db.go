package db

import (
	"strconv"

	"github.com/jsphweid/melodeon/constants"
	"github.com/jsphweid/melodeon/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// GetMelodyMetadatas fetches artist/title/year for the given melody names.
// DynamoDB batch gets cap out, hence the 10-name limit.
func GetMelodyMetadatas(names []string) map[string]model.MelodyMetadata {
	if len(names) > 10 {
		panic("Not supposed to pass in more than 10 names!")
	}

	res := make(map[string]model.MelodyMetadata)

	if len(names) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, name := range names {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(name),
		}
		keys = append(keys, key)
	}

	endpoint := constants.GetDbEndpoint()
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			"melodeon-metadata": {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses["melodeon-metadata"] {
		var md model.MelodyMetadata
		if attr, ok := v["Year"]; ok && attr.N != nil {
			year, _ := strconv.ParseUint(*attr.N, 10, 32)
			md.Year = uint(year)
		}
		if attr, ok := v["Artist"]; ok && attr.S != nil {
			md.Artist = *attr.S
		}
		if attr, ok := v["Title"]; ok && attr.S != nil {
			md.Title = *attr.S
		}
		res[*v["PK"].S] = md
	}

	return res
}
