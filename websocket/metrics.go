// Package websocket - websocket/metrics.go
package websocket

import (
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"

	"go-officials-portal/logger"
)

// Namespace for all portal metrics
var metricsNamespace = "OfficialsPortal"

// cwClient is lazily created so local runs without AWS credentials never
// touch the SDK. Metrics are only published when ENABLE_CLOUDWATCH=true.
var cwClient *cloudwatch.CloudWatch

func metricsEnabled() bool {
	return os.Getenv("ENABLE_CLOUDWATCH") == "true"
}

// PublishFeedConnections pushes the current feed connection count.
func PublishFeedConnections(count int) {
	putMetric("FeedConnections", float64(count), "Count")
}

// PublishRequestDecision pushes one approve/decline decision.
func PublishRequestDecision(action string) {
	putMetric("RequestDecision_"+action, 1, "Count")
}

// PublishSampleBatch pushes the size of a generated sample batch.
func PublishSampleBatch(size int) {
	putMetric("SampleBatchSize", float64(size), "Count")
}

// -----------------------------------------------------------
// internal helper function to package up CloudWatch calls
// -----------------------------------------------------------
func putMetric(metricName string, value float64, unit string) {
	if !metricsEnabled() {
		return
	}
	if cwClient == nil {
		cwClient = cloudwatch.New(session.Must(session.NewSession()))
	}

	_, err := cwClient.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(metricsNamespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Dimensions: []*cloudwatch.Dimension{
					{
						Name:  aws.String("Service"),
						Value: aws.String("portal"),
					},
				},
				Timestamp: aws.Time(time.Now()),
				Value:     aws.Float64(value),
				Unit:      aws.String(unit),
			},
		},
	})

	if err != nil {
		logger.Error.Printf("[putMetric] CloudWatch metric failed (%s): %v", metricName, err)
	}
}
