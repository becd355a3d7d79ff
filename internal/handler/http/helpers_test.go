package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/mock"
	"github.com/MKhiriev/go-lms/internal/service"
	"github.com/MKhiriev/go-lms/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const goodToken = "good.bearer.token"

var caller = models.Identity{UserID: 7, Email: "ann@example.com", Name: "Ann"}

type serviceMocks struct {
	tokens     *mock.MockTokenService
	auth       *mock.MockAuthService
	users      *mock.MockUserService
	classes    *mock.MockClassService
	coursework *mock.MockCourseworkService
	appInfo    *mock.MockAppInfoService
}

func newServiceMocks(t *testing.T) (*service.Services, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		tokens:     mock.NewMockTokenService(ctrl),
		auth:       mock.NewMockAuthService(ctrl),
		users:      mock.NewMockUserService(ctrl),
		classes:    mock.NewMockClassService(ctrl),
		coursework: mock.NewMockCourseworkService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
	}
	return &service.Services{
		TokenService:      m.tokens,
		AuthService:       m.auth,
		UserService:       m.users,
		ClassService:      m.classes,
		CourseworkService: m.coursework,
		AppInfoService:    m.appInfo,
	}, m
}

// newTestRouter returns the full router over mocked services. Requests
// carrying goodToken authenticate as caller.
func newTestRouter(t *testing.T, opts Options) (http.Handler, serviceMocks) {
	t.Helper()
	services, m := newServiceMocks(t)
	m.tokens.EXPECT().VerifyBearer(gomock.Any(), goodToken).Return(caller, nil).AnyTimes()
	return NewHandler(services, opts, logger.Nop()).Init(), m
}

func serve(t *testing.T, h http.Handler, method, target, body string, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Error
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
