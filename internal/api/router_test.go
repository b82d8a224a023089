package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"wilayah/internal/api/controllers"
	"wilayah/internal/models/db_models"
	"wilayah/internal/repositories"
	"wilayah/internal/services"
	"wilayah/internal/testutil"
	mem "wilayah/pkg/memcache"
	"wilayah/pkg/metrics"
	"wilayah/pkg/middleware"
	"wilayah/pkg/utils"
)

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

type RouterSuite struct {
	suite.Suite
	db     *gorm.DB
	engine *gin.Engine
	token  string
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.db = testutil.DB(s.T())
	log := zap.NewNop()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	provRepo := repositories.NewProvinsiRepository(s.db)
	kabRepo := repositories.NewKabupatenRepository(s.db)
	pendRepo := repositories.NewPendudukRepository(s.db)
	tokens := utils.NewTokenManager("router-secret", time.Hour)
	revoked := mem.NewRevokedTokens()

	provSvc := services.NewProvinsiService(provRepo, log, m)
	kabSvc := services.NewKabupatenService(kabRepo, provRepo, log, m)
	pendSvc := services.NewPendudukService(pendRepo, kabRepo, provRepo, log, m)
	accSvc := services.NewAccountService(repositories.NewAccountRepository(s.db), tokens, revoked, log)
	dashSvc := services.NewDashboardService(repositories.NewDashboardRepository(s.db), provSvc, kabSvc, pendSvc, log)

	s.engine = NewEngine(EngineOptions{
		ServiceName: "wilayah-test",
		Metrics:     m,
		Gatherer:    reg,
	}, Handlers{
		Account:   controllers.NewAccountController(accSvc),
		Provinsi:  controllers.NewProvinsiController(provSvc),
		Kabupaten: controllers.NewKabupatenController(kabSvc),
		Penduduk:  controllers.NewPendudukController(pendSvc),
		Dashboard: controllers.NewDashboardController(dashSvc),
	}, middleware.JWTAuthMiddleware(tokens, revoked))

	s.token = s.registerAndLogin("operator@example.com")
}

func (s *RouterSuite) do(method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func (s *RouterSuite) registerAndLogin(email string) string {
	rec, _ := s.do(http.MethodPost, "/auth/register", map[string]string{
		"display_name": "Operator",
		"email":        email,
		"password":     "secret123",
	}, "")
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec, env := s.do(http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": "secret123",
	}, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var login struct {
		Token string `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &login))
	s.Require().NotEmpty(login.Token)
	return login.Token
}

func (s *RouterSuite) TestRejectsMissingOrBadToken() {
	for _, path := range []string{"/provinsi", "/kabupaten", "/penduduk", "/dashboard", "/provinsi/1"} {
		rec, env := s.do(http.MethodGet, path, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code, path)
		s.Equal("error", env.Status)

		rec, _ = s.do(http.MethodGet, path, nil, "garbage")
		s.Equal(http.StatusUnauthorized, rec.Code, path)
	}

	rec, _ := s.do(http.MethodPost, "/provinsi", map[string]string{"nama": "Bali"}, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Zero(testutil.Count(s.T(), s.db, &db_models.Provinsi{}))
}

func (s *RouterSuite) TestLogoutRevokesToken() {
	rec, _ := s.do(http.MethodGet, "/provinsi", nil, s.token)
	s.Equal(http.StatusOK, rec.Code)

	rec, _ = s.do(http.MethodPost, "/auth/logout", nil, s.token)
	s.Equal(http.StatusOK, rec.Code)

	rec, env := s.do(http.MethodGet, "/provinsi", nil, s.token)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("Token is logged out", env.Message)
}

func (s *RouterSuite) TestLoginWrongPassword() {
	rec, _ := s.do(http.MethodPost, "/auth/login", map[string]string{
		"email":    "operator@example.com",
		"password": "wrong-password",
	}, "")
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec, _ = s.do(http.MethodPost, "/auth/register", map[string]string{
		"display_name": "Operator",
		"email":        "operator@example.com",
		"password":     "secret123",
	}, "")
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *RouterSuite) TestCrudFlow() {
	rec, env := s.do(http.MethodPost, "/provinsi", map[string]string{"nama": "Jawa Barat"}, s.token)
	s.Require().Equal(http.StatusCreated, rec.Code)
	var prov struct {
		ID uint `json:"id"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &prov))
	s.Equal(uint(1), prov.ID)

	rec, env = s.do(http.MethodPost, "/kabupaten", map[string]any{
		"nama": "Bandung", "provinsi_id": prov.ID, "jumlah_penduduk": 2500000,
	}, s.token)
	s.Require().Equal(http.StatusCreated, rec.Code)
	var kab struct {
		ID             uint  `json:"id"`
		JumlahPenduduk int64 `json:"jumlah_penduduk"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &kab))
	s.Equal(int64(2500000), kab.JumlahPenduduk)

	rec, env = s.do(http.MethodPost, "/penduduk", map[string]any{
		"nama": "Budi Santoso", "nik": "123", "umur": 25, "alamat": "Jl. Merdeka No. 1",
		"provinsi_id": prov.ID, "kabupaten_id": kab.ID,
	}, s.token)
	s.Require().Equal(http.StatusCreated, rec.Code)
	var pend struct {
		ID uint `json:"id"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &pend))

	rec, _ = s.do(http.MethodPost, "/penduduk", map[string]any{
		"nama": "Ani Wijaya", "nik": "123", "umur": 30, "alamat": "Jl. Sudirman No. 45",
		"provinsi_id": prov.ID, "kabupaten_id": kab.ID,
	}, s.token)
	s.Equal(http.StatusConflict, rec.Code)

	rec, _ = s.do(http.MethodPut, fmt.Sprintf("/penduduk/%d", pend.ID), map[string]any{
		"nama": "Budi S.", "nik": "123", "umur": 26, "alamat": "Jl. Merdeka No. 2",
		"provinsi_id": prov.ID, "kabupaten_id": kab.ID,
	}, s.token)
	s.Equal(http.StatusOK, rec.Code)

	rec, _ = s.do(http.MethodPut, fmt.Sprintf("/provinsi/%d", prov.ID), map[string]string{"nama": "Jabar"}, s.token)
	s.Equal(http.StatusOK, rec.Code)

	rec, env = s.do(http.MethodGet, "/dashboard", nil, s.token)
	s.Require().Equal(http.StatusOK, rec.Code)
	var report struct {
		KPIs struct {
			TotalPenduduk int64 `json:"total_penduduk"`
		} `json:"kpis"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &report))
	s.Equal(int64(1), report.KPIs.TotalPenduduk)

	rec, _ = s.do(http.MethodDelete, fmt.Sprintf("/provinsi/%d", prov.ID), nil, s.token)
	s.Equal(http.StatusOK, rec.Code)

	rec, _ = s.do(http.MethodGet, fmt.Sprintf("/kabupaten/%d", kab.ID), nil, s.token)
	s.Equal(http.StatusNotFound, rec.Code)
	rec, _ = s.do(http.MethodGet, fmt.Sprintf("/penduduk/%d", pend.ID), nil, s.token)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterSuite) TestErrorMapping() {
	rec, env := s.do(http.MethodPost, "/kabupaten", map[string]any{"nama": "Bandung", "provinsi_id": 99}, s.token)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(env.Message, "provinsi_id")

	rec, env = s.do(http.MethodPost, "/provinsi", map[string]string{}, s.token)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("nama is required", env.Message)

	rec, _ = s.do(http.MethodGet, "/provinsi/abc", nil, s.token)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec, _ = s.do(http.MethodGet, "/provinsi/12", nil, s.token)
	s.Equal(http.StatusNotFound, rec.Code)

	rec, _ = s.do(http.MethodDelete, "/penduduk/12", nil, s.token)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterSuite) TestFormEncodedCreate() {
	form := url.Values{"nama": {"DI Yogyakarta"}}
	req := httptest.NewRequest(http.MethodPost, "/provinsi", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+s.token)
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	s.Equal(http.StatusCreated, rec.Code)
	s.Equal(int64(1), testutil.Count(s.T(), s.db, &db_models.Provinsi{}))
}

func (s *RouterSuite) TestPublicEndpoints() {
	rec, _ := s.do(http.MethodGet, "/healthz", nil, "")
	s.Equal(http.StatusOK, rec.Code)

	s.do(http.MethodGet, "/provinsi", nil, s.token)
	rec, _ = s.do(http.MethodGet, "/metrics", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "wilayah_http_requests_total")
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))
}

func (s *RouterSuite) sendForm(method, path string, form string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+s.token)
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	var env envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func (s *RouterSuite) TestFormEmptyValueCountsAsMissing() {
	prov := testutil.CreateProvinsi(s.T(), s.db, "Jawa Barat")
	kab := testutil.CreateKabupaten(s.T(), s.db, prov.ID, "Bandung", 0)

	body := fmt.Sprintf("nama=A&nik=1&umur=&alamat=x&provinsi_id=%d&kabupaten_id=%d", prov.ID, kab.ID)
	rec, env := s.sendForm(http.MethodPost, "/penduduk", body)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("umur is required", env.Message)
	s.Zero(testutil.Count(s.T(), s.db, &db_models.Penduduk{}))

	existing := testutil.CreatePenduduk(s.T(), s.db, kab, "2")
	rec, env = s.sendForm(http.MethodPut, fmt.Sprintf("/penduduk/%d", existing.ID), body)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("umur is required", env.Message)

	var reloaded db_models.Penduduk
	s.Require().NoError(s.db.First(&reloaded, existing.ID).Error)
	s.Equal(30, reloaded.Umur)

	rec, _ = s.sendForm(http.MethodPost, "/penduduk",
		fmt.Sprintf("nama=A&nik=1&umur=0&alamat=x&provinsi_id=%d&kabupaten_id=%d", prov.ID, kab.ID))
	s.Equal(http.StatusCreated, rec.Code)

	rec, env = s.sendForm(http.MethodPost, "/kabupaten",
		fmt.Sprintf("nama=Bogor&provinsi_id=%d&jumlah_penduduk=", prov.ID))
	s.Require().Equal(http.StatusCreated, rec.Code)
	var kabupaten struct {
		JumlahPenduduk int64 `json:"jumlah_penduduk"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &kabupaten))
	s.Zero(kabupaten.JumlahPenduduk)
}

func (s *RouterSuite) TestUpdateUnknownIDIsNotFoundBeforeValidation() {
	for _, path := range []string{"/provinsi/999", "/kabupaten/999", "/penduduk/999"} {
		rec, _ := s.do(http.MethodPut, path, map[string]string{}, s.token)
		s.Equal(http.StatusNotFound, rec.Code, path)
	}
}

func (s *RouterSuite) TestZeroReferenceIsMissingField() {
	rec, env := s.do(http.MethodPost, "/kabupaten", map[string]any{"nama": "Bandung", "provinsi_id": 0}, s.token)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("provinsi_id is required", env.Message)
}

func (s *RouterSuite) TestMe() {
	rec, env := s.do(http.MethodGet, "/auth/me", nil, s.token)
	s.Require().Equal(http.StatusOK, rec.Code)
	var account struct {
		Email string `json:"email"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &account))
	s.Equal("operator@example.com", account.Email)

	rec, _ = s.do(http.MethodGet, "/auth/me", nil, "")
	s.Equal(http.StatusUnauthorized, rec.Code)

	s.Require().NoError(s.db.Where("email = ?", "operator@example.com").Delete(&db_models.Account{}).Error)
	rec, _ = s.do(http.MethodGet, "/auth/me", nil, s.token)
	s.Equal(http.StatusUnauthorized, rec.Code)
}
