package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/apperrors"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
	portssvc "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/ports/services"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/dto"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/handlers"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/middleware"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RegistroService ---
type MockRegistroService struct {
	mock.Mock
}

func (m *MockRegistroService) CreateRegistro(ctx context.Context, req dto.CreateRegistroRequest) (*domain.RegistroVehiculo, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegistroVehiculo), args.Error(1)
}

func (m *MockRegistroService) DatosFormulario(ctx context.Context) ([]domain.RegistroDetalle, *domain.DatosFormulario, error) {
	args := m.Called(ctx)
	var registros []domain.RegistroDetalle
	var datos *domain.DatosFormulario
	if args.Get(0) != nil {
		registros = args.Get(0).([]domain.RegistroDetalle)
	}
	if args.Get(1) != nil {
		datos = args.Get(1).(*domain.DatosFormulario)
	}
	return registros, datos, args.Error(2)
}

func (m *MockRegistroService) VerificarPlaca(ctx context.Context, placa string) (*domain.RegistroVehiculo, error) {
	args := m.Called(ctx, placa)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegistroVehiculo), args.Error(1)
}

// --- Test Suite ---
type RegistroHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockRegistroService
	cfg         *config.Config
	authToken   string
}

func (suite *RegistroHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.cfg = &config.Config{
		Port:              "8080",
		JWTSecret:         "test-secret",
		JWTIssuer:         "sigeat-auth",
		RateLimitRequests: 1000,
		RateLimitPeriod:   time.Minute,
		AllowedOrigins:    []string{"http://localhost:3000"},
	}

	suite.mockService = new(MockRegistroService)
	container := &portssvc.ServiceContainer{Registro: suite.mockService}

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(newTestLogger()))
	handlers.RegisterRoutes(suite.router, suite.cfg, container)

	claims := middleware.SessionClaims{
		Username: "admin",
		Rol:      domain.RolAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			Issuer:    suite.cfg.JWTIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.cfg.JWTSecret))
	suite.Require().NoError(err)
	suite.authToken = token
}

func (suite *RegistroHandlerTestSuite) doRequest(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.authToken)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *RegistroHandlerTestSuite) TestVerificarPlaca_Found() {
	registro := &domain.RegistroVehiculo{
		RegistroID:     uuid.NewString(),
		NombreDueno:    "María Pérez",
		Cedula:         "V-12345678",
		Telefono:       "0414-1234567",
		Placa:          "AB123CD",
		TipoVehiculoID: "tv-sedan",
		Color:          "Azul",
	}
	suite.mockService.On("VerificarPlaca", mock.Anything, "ab123cd").Return(registro, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/registros-vehiculos/verificar-placa?placa=ab123cd", "")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.VerificarPlacaResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Encontrado)
	suite.Require().NotNil(resp.Vehiculo)
	suite.Equal("AB123CD", resp.Vehiculo.Placa)
	suite.Equal("María Pérez", resp.Vehiculo.NombreDueno)
}

func (suite *RegistroHandlerTestSuite) TestVerificarPlaca_UnknownPlateIsStillOK() {
	suite.mockService.On("VerificarPlaca", mock.Anything, "ZZ999ZZ").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/registros-vehiculos/verificar-placa?placa=ZZ999ZZ", "")

	// A miss is a normal outcome, not an HTTP error
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.VerificarPlacaResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Encontrado)
	suite.Nil(resp.Vehiculo)
	suite.NotEmpty(resp.Mensaje)
}

func (suite *RegistroHandlerTestSuite) TestVerificarPlaca_MissingPlate() {
	suite.mockService.On("VerificarPlaca", mock.Anything, "").
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.doRequest(http.MethodGet, "/api/registros-vehiculos/verificar-placa", "")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RegistroHandlerTestSuite) TestCreateRegistro_Success() {
	suite.mockService.On("CreateRegistro", mock.Anything, mock.MatchedBy(func(req dto.CreateRegistroRequest) bool {
		return req.Placa == "ab 123 cd" && req.NombreDueno == "María Pérez"
	})).Return(&domain.RegistroVehiculo{
		RegistroID:  uuid.NewString(),
		NombreDueno: "María Pérez",
		Placa:       "AB123CD",
		FechaHora:   time.Now(),
	}, nil).Once()

	body := `{
		"nombreDueno": "María Pérez",
		"cedula": "V-12345678",
		"placa": "ab 123 cd",
		"tipoVehiculoID": "tv-sedan",
		"precioTotal": "5.00",
		"servicioID": "srv-ext-int",
		"estadoCarroID": "ec-normal",
		"estadoPagoID": "ep-pagado"
	}`
	w := suite.doRequest(http.MethodPost, "/api/registros-vehiculos", body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.RegistroResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("AB123CD", resp.Placa)
}

func (suite *RegistroHandlerTestSuite) TestCreateRegistro_MissingRequiredFields() {
	w := suite.doRequest(http.MethodPost, "/api/registros-vehiculos", `{"placa": "AB123CD"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateRegistro", mock.Anything, mock.Anything)
}

func (suite *RegistroHandlerTestSuite) TestDatosFormulario_Success() {
	detalles := []domain.RegistroDetalle{
		{
			RegistroVehiculo: domain.RegistroVehiculo{RegistroID: "r1", Placa: "AB123CD", FechaHora: time.Now()},
			TipoVehiculo:     "Sedán",
			Servicio:         "Lavado Exterior",
			EstadoCarro:      "Normal",
			EstadoPago:       "Pagado",
		},
	}
	catalogos := &domain.DatosFormulario{
		TiposVehiculo: []domain.TipoVehiculo{{TipoVehiculoID: "tv-moto", Nombre: "Moto"}},
		EstadosPago:   []domain.EstadoPago{{EstadoPagoID: "ep-pagado", Nombre: "Pagado"}},
	}
	suite.mockService.On("DatosFormulario", mock.Anything).Return(detalles, catalogos, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/registros-vehiculos/datos-formulario", "")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.DatosFormularioResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Registros, 1)
	suite.Equal("Sedán", resp.Registros[0].TipoVehiculo)
	suite.Len(resp.DatosFormulario.TiposVehiculo, 1)
}

func TestRegistroHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RegistroHandlerTestSuite))
}
