package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Metric names emitted by the API.
const (
	MetricOrderSubmitted   = "OrderSubmitted"
	MetricPaymentConfirmed = "PaymentConfirmed"
)

// MetricsEmitter pushes counters to CloudWatch. Emission is best-effort:
// callers log failures and move on, a metrics outage must never fail a request.
type MetricsEmitter struct {
	CloudWatch CloudWatchAPI
	Namespace  string
}

// NewMetricsEmitter returns an emitter bound to a namespace.
func NewMetricsEmitter(cwClient CloudWatchAPI, namespace string) *MetricsEmitter {
	return &MetricsEmitter{
		CloudWatch: cwClient,
		Namespace:  namespace,
	}
}

// Count emits a single count datum for the named metric.
func (m *MetricsEmitter) Count(ctx context.Context, name string, value float64) error {
	input := &cloudwatch.PutMetricDataInput{
		Namespace: &m.Namespace,
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: &name,
				Value:      &value,
				Unit:       cwtypes.StandardUnitCount,
			},
		},
	}

	_, err := m.CloudWatch.PutMetricData(ctx, input)
	if err != nil {
		return fmt.Errorf("put metric data: %w", err)
	}
	return nil
}
