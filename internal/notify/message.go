// internal/notify/message.go
package notify

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

func destination(to string) *types.Destination {
	return &types.Destination{
		ToAddresses: []string{to},
	}
}

func message(subject, body string) *types.Message {
	return &types.Message{
		Subject: &types.Content{
			Data: aws.String(subject),
		},
		Body: &types.Body{
			Text: &types.Content{
				Data: aws.String(body),
			},
		},
	}
}
