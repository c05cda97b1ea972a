package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"sobasite/internal/adapters/http/health"
	"sobasite/internal/adapters/http/page"
	pageMocks "sobasite/internal/adapters/http/page/mocks"
	"sobasite/internal/adapters/http/reservation"
	reservationMocks "sobasite/internal/adapters/http/reservation/mocks"
	"sobasite/internal/adapters/http/site"
	"sobasite/internal/adapters/validator"
	"sobasite/internal/config"
	domain "sobasite/internal/core/domain/reservation"
	"sobasite/internal/core/domain/session"
	siteDomain "sobasite/internal/core/domain/site"
	platformHealth "sobasite/internal/platform/health"
	healthMocks "sobasite/internal/platform/health/mocks"
	"sobasite/internal/platform/logger"
	"sobasite/internal/platform/metrics"
	"sobasite/internal/platform/render"
	"sobasite/internal/version"
)

type RouterTestSuite struct {
	suite.Suite
	config            *config.HttpConfig
	metricsProvider   *metrics.Provider
	pageHandler       *page.Handler
	reservationHander *reservation.Handler
	siteHandler       *site.Handler
	mockHealthManager *healthMocks.MockManagerInterface
	mockManager       *reservationMocks.MockManager
	mockSubmitter     *pageMocks.MockSubmitter
}

func (s *RouterTestSuite) SetupTest() {
	s.config = &config.HttpConfig{
		Server: config.HttpServerConfig{
			Host:         "localhost",
			Port:         8080,
			ReadTimeout:  30,
			WriteTimeout: 30,
			IdleTimeout:  120,
			MaxFormBytes: 4096,
		},
		RateLimit: config.RateLimitConfig{
			GlobalRequests: 1000,
			GlobalWindow:   60,
			RequestsPerIP:  100,
			WindowSeconds:  60,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-CSRF-Token"},
			MaxAge:         86400,
		},
	}

	var err error
	s.metricsProvider, err = metrics.NewProvider()
	s.Require().NoError(err)

	content, err := siteDomain.NewContent("そば処", "ご予約・お問い合わせ", "https://www.nihon-i.jp/site-policy/",
		[]siteDomain.Link{{Label: "メニュー 1", URL: "https://example.com/1"}}, nil)
	s.Require().NoError(err)

	engine, err := render.New(page.Templates(), nil)
	s.Require().NoError(err)

	s.mockManager = reservationMocks.NewMockManager(s.T())
	s.mockSubmitter = pageMocks.NewMockSubmitter(s.T())
	s.mockHealthManager = healthMocks.NewMockManagerInterface(s.T())

	s.pageHandler = page.NewHandler(s.mockSubmitter, engine, content)
	s.reservationHander = reservation.NewHandler(s.mockManager, validator.NewPlaygroundAdapter())
	s.siteHandler = site.NewHandler(content)
}

func (s *RouterTestSuite) newRouter(cfg ...*config.HttpConfig) http.Handler {
	c := s.config
	if len(cfg) > 0 && cfg[0] != nil {
		c = cfg[0]
	}

	return NewRouter(RouterDependencies{
		Config:             c,
		Logger:             logger.NewNop(),
		PageHandler:        s.pageHandler,
		ReservationHandler: s.reservationHander,
		SiteHandler:        s.siteHandler,
		LivenessHandler:    health.NewLivenessHandler(version.BuildInfo{Version: "1.0.0"}),
		ReadinessHandler:   health.NewReadinessHandler("1.0.0", s.mockHealthManager, time.Second),
		MetricsProvider:    s.metricsProvider,
	})
}

func (s *RouterTestSuite) serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func (s *RouterTestSuite) TestRouter_HealthLivenessEndpoint() {
	w := s.serve(s.newRouter(), httptest.NewRequest(http.MethodGet, "/health/live", nil))

	s.Equal(http.StatusOK, w.Code)
	s.Equal("application/json", w.Header().Get("Content-Type"))

	var resp health.LivenessResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(health.StatusPass, resp.Status)
	s.Equal("1.0.0", resp.Version)
}

func (s *RouterTestSuite) TestRouter_HealthReadinessEndpoint() {
	s.mockHealthManager.EXPECT().CheckAll(mock.Anything).Return(map[string]platformHealth.CheckResult{
		"form_sessions": {Status: platformHealth.StatusUnhealthy, Message: "form session store full (10/10)"},
	}).Once()

	w := s.serve(s.newRouter(), httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	s.Equal(http.StatusServiceUnavailable, w.Code)

	var resp health.ReadinessResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(health.StatusFail, resp.Status)
	s.Contains(resp.Checks, "form_sessions")
}

func (s *RouterTestSuite) TestRouter_MetricsEndpoint() {
	w := s.serve(s.newRouter(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "text/plain")
}

func (s *RouterTestSuite) TestRouter_Page() {
	w := s.serve(s.newRouter(), httptest.NewRequest(http.MethodGet, "/", nil))

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "text/html")
	s.Contains(w.Body.String(), "メニュー 1")
}

func (s *RouterTestSuite) TestRouter_PageSubmit_TooLarge() {
	form := url.Values{"details": {strings.Repeat("あ", 4096)}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := s.serve(s.newRouter(), req)

	s.Equal(http.StatusRequestEntityTooLarge, w.Code)
}

func (s *RouterTestSuite) TestRouter_Static() {
	w := s.serve(s.newRouter(), httptest.NewRequest(http.MethodGet, "/static/line.svg", nil))

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "image/svg+xml")
}

func (s *RouterTestSuite) TestRouter_SiteContent() {
	w := s.serve(s.newRouter(), httptest.NewRequest(http.MethodGet, "/api/site", nil))

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"privacyPolicyUrl":"https://www.nihon-i.jp/site-policy/"`)
}

func (s *RouterTestSuite) TestRouter_FormSessionRoutes() {
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	sess, err := session.New("s-1", now)
	s.Require().NoError(err)

	s.mockManager.EXPECT().OpenSession(mock.Anything).Return(sess, nil).Once()
	s.mockManager.EXPECT().GetSession(mock.Anything, "s-1").Return(sess, nil).Once()
	s.mockManager.EXPECT().ChangeField(mock.Anything, "s-1", domain.FieldName, "山田").Return(sess, nil).Once()
	s.mockManager.EXPECT().SubmitSession(mock.Anything, "s-1").Return(sess, nil).Once()
	s.mockManager.EXPECT().CloseSession(mock.Anything, "s-1").Return(nil).Once()

	router := s.newRouter()

	testCases := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodPost, "/api/forms", "", http.StatusCreated},
		{http.MethodGet, "/api/forms/s-1", "", http.StatusOK},
		{http.MethodPut, "/api/forms/s-1/fields/name", `{"value":"山田"}`, http.StatusOK},
		{http.MethodPost, "/api/forms/s-1/submit", "", http.StatusOK},
		{http.MethodDelete, "/api/forms/s-1", "", http.StatusNoContent},
	}

	for _, tc := range testCases {
		s.Run(tc.method+"_"+tc.path, func() {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")

			w := s.serve(router, req)

			s.Equal(tc.status, w.Code, w.Body.String())
		})
	}
}

func (s *RouterTestSuite) TestRouter_UnknownSessionField() {
	req := httptest.NewRequest(http.MethodPut, "/api/forms/s-1/fields/nickname", strings.NewReader(`{"value":"x"}`))

	w := s.serve(s.newRouter(), req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"error":"Unknown form field"}`, w.Body.String())
}

func (s *RouterTestSuite) TestRouter_ValidateEndpoint() {
	errs, valid := domain.ValidateForm(domain.NewFormState())
	s.mockManager.EXPECT().Validate(mock.Anything, mock.Anything).Return(errs, valid).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/reservations/validate", strings.NewReader(`{}`))
	w := s.serve(s.newRouter(), req)

	s.Equal(http.StatusOK, w.Code)

	var resp reservation.ValidationResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.False(resp.Valid)
	s.NotNil(resp.Errors["name"])
}

func (s *RouterTestSuite) TestRouter_PayloadLimitsReportDetails() {
	body := `{"name":"` + strings.Repeat("山", 101) + `","category":"inquiry"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/validate", strings.NewReader(body))

	w := s.serve(s.newRouter(), req)

	s.Equal(http.StatusBadRequest, w.Code)

	var resp struct {
		Error   string `json:"error"`
		Details []struct {
			Field string `json:"field"`
		} `json:"details"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Invalid request data", resp.Error)
	s.Require().Len(resp.Details, 1)
	s.Equal("name", resp.Details[0].Field)
}

func (s *RouterTestSuite) TestRouter_CORSHeaders() {
	req := httptest.NewRequest(http.MethodOptions, "/api/reservations", nil)
	req.Header.Set("Origin", "https://soba.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	w := s.serve(s.newRouter(), req)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
	s.Contains(w.Header().Get("Access-Control-Allow-Methods"), "POST")
	s.Contains(w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
}

func (s *RouterTestSuite) TestRouter_NotFoundAndMethodNotAllowed() {
	router := s.newRouter()

	s.Equal(http.StatusNotFound, s.serve(router, httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)).Code)
	s.Equal(http.StatusMethodNotAllowed, s.serve(router, httptest.NewRequest(http.MethodPost, "/health/live", nil)).Code)
}

func (s *RouterTestSuite) TestRouter_StripSlashes() {
	w := s.serve(s.newRouter(), httptest.NewRequest(http.MethodGet, "/health/live/", nil))

	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterTestSuite) TestRouter_RequestIDHeader() {
	w := s.serve(s.newRouter(), httptest.NewRequest(http.MethodGet, "/health/live", nil))

	s.NotEmpty(w.Header().Get("X-Request-Id"))
}

func (s *RouterTestSuite) TestRouter_RecoversPanic() {
	router := s.newRouter().(*chi.Mux)
	router.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	var w *httptest.ResponseRecorder
	s.NotPanics(func() {
		w = s.serve(router, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})
	s.Equal(http.StatusInternalServerError, w.Code)
}

func (s *RouterTestSuite) TestRouter_RateLimit() {
	restrictive := *s.config
	restrictive.RateLimit = config.RateLimitConfig{
		GlobalRequests: 100,
		GlobalWindow:   60,
		RequestsPerIP:  1,
		WindowSeconds:  60,
	}
	router := s.newRouter(&restrictive)

	first := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	first.RemoteAddr = "192.168.1.1:12345"
	s.Equal(http.StatusOK, s.serve(router, first).Code)

	second := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	second.RemoteAddr = "192.168.1.1:12345"
	s.Equal(http.StatusTooManyRequests, s.serve(router, second).Code)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
