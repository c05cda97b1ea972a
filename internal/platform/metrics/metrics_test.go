package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type MetricsTestSuite struct {
	suite.Suite
	provider *Provider
}

func (s *MetricsTestSuite) SetupTest() {
	var err error
	s.provider, err = NewProvider()
	s.Require().NoError(err)
}

func (s *MetricsTestSuite) scrape() string {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.provider.Handler().ServeHTTP(w, req)
	s.Require().Equal(http.StatusOK, w.Code)
	return w.Body.String()
}

func (s *MetricsTestSuite) TestNewProvider() {
	s.Assert().NotNil(s.provider.RequestsTotal)
	s.Assert().NotNil(s.provider.RequestDuration)
	s.Assert().NotNil(s.provider.RequestsInFlight)
	s.Assert().NotNil(s.provider.FormSubmissions)
	s.Assert().NotNil(s.provider.FormFieldErrors)
	s.Assert().NotNil(s.provider.SessionsExpired)

	other, err := NewProvider()
	s.Require().NoError(err)
	s.Assert().NotSame(s.provider.registry, other.registry)
}

func (s *MetricsTestSuite) TestHandler_ExposesHTTPMetrics() {
	ctx := context.Background()
	s.provider.RequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("method", "GET")))
	s.provider.RequestDuration.Record(ctx, 0.02)

	body := s.scrape()

	s.Assert().Contains(body, "http_requests")
	s.Assert().Contains(body, "http_request_duration")
}

func (s *MetricsTestSuite) TestRecordSubmission() {
	ctx := context.Background()
	s.provider.RecordSubmission(ctx, "accepted", "soba")
	s.provider.RecordSubmission(ctx, "rejected", "unset")

	body := s.scrape()

	s.Assert().Contains(body, "form_submissions")
	s.Assert().Contains(body, `outcome="accepted"`)
	s.Assert().Contains(body, `category="unset"`)
}

func (s *MetricsTestSuite) TestRecordFieldError() {
	s.provider.RecordFieldError(context.Background(), "phone", "format")

	body := s.scrape()

	s.Assert().Contains(body, "form_field_errors")
	s.Assert().Contains(body, `field="phone"`)
	s.Assert().Contains(body, `kind="format"`)
}

func (s *MetricsTestSuite) TestRecordSessionsExpired() {
	s.provider.RecordSessionsExpired(context.Background(), 0)
	s.Assert().NotContains(s.scrape(), "form_sessions_expired")

	s.provider.RecordSessionsExpired(context.Background(), 2)
	s.Assert().Contains(s.scrape(), "form_sessions_expired")
}

func TestMetricsSuite(t *testing.T) {
	suite.Run(t, new(MetricsTestSuite))
}
