package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// -------------------------------------------------------------------------------------------------
// Ingest Worker Lambda
// - Firehose transformation processor for the data ingestion extension
// - decodes the records forwarded by the edge function, normalizes them, and
//   stamps the processing time
// - malformed records are dropped from the stream and parked in the
//   dead-letter bucket for inspection
// -------------------------------------------------------------------------------------------------

// ingestRecord mirrors the JSON the edge forwarder writes to the stream.
type ingestRecord struct {
	URI         string  `json:"uri"`
	Method      string  `json:"method"`
	Querystring string  `json:"querystring"`
	ClientIP    string  `json:"clientIp"`
	ReceivedAt  string  `json:"receivedAt"`
	Body        *string `json:"body"`
}

type processedRecord struct {
	ingestRecord
	ProcessedAt string `json:"processedAt"`
}

var (
	s3Client         = s3.New(session.Must(session.NewSession()))
	deadLetterBucket = os.Getenv("DEAD_LETTER_BUCKET")
)

func HandleRequest(ctx context.Context, event events.KinesisFirehoseEvent) (events.KinesisFirehoseResponse, error) {
	var resp events.KinesisFirehoseResponse

	for _, rec := range event.Records {
		var parsed ingestRecord
		if err := json.Unmarshal(rec.Data, &parsed); err != nil || parsed.URI == "" {
			log.Printf("dropping malformed record %s: %v", rec.RecordID, err)
			deadLetter(rec)
			resp.Records = append(resp.Records, events.KinesisFirehoseResponseRecord{
				RecordID: rec.RecordID,
				Result:   events.KinesisFirehoseTransformedStateDropped,
			})
			continue
		}

		out, err := json.Marshal(processedRecord{
			ingestRecord: parsed,
			ProcessedAt:  time.Now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			resp.Records = append(resp.Records, events.KinesisFirehoseResponseRecord{
				RecordID: rec.RecordID,
				Result:   events.KinesisFirehoseTransformedStateProcessingFailed,
			})
			continue
		}

		resp.Records = append(resp.Records, events.KinesisFirehoseResponseRecord{
			RecordID: rec.RecordID,
			Result:   events.KinesisFirehoseTransformedStateOk,
			Data:     append(out, '\n'),
		})
	}

	return resp, nil
}

// deadLetter parks the raw record payload in the dead-letter bucket. Failures
// here are logged and swallowed; the record is dropped either way.
func deadLetter(rec events.KinesisFirehoseEventRecord) {
	if deadLetterBucket == "" {
		return
	}
	key := fmt.Sprintf("dead-letter/%s/%s", time.Now().UTC().Format("2006-01-02"), rec.RecordID)
	_, err := s3Client.PutObject(&s3.PutObjectInput{
		Bucket: aws.String(deadLetterBucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(rec.Data),
	})
	if err != nil {
		log.Printf("dead-letter put failed for %s: %v", rec.RecordID, err)
	}
}

func main() {
	lambda.Start(HandleRequest)
}
