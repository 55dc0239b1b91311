package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/apperrors"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
	portssvc "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/ports/services"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// errRepo stands in for arbitrary persistence failures across the suites.
var errRepo = errors.New("repository failure")

// --- Mock RegistroRepository ---
type MockRegistroRepository struct {
	mock.Mock
}

func (m *MockRegistroRepository) SaveRegistro(ctx context.Context, registro domain.RegistroVehiculo) error {
	args := m.Called(ctx, registro)
	return args.Error(0)
}

func (m *MockRegistroRepository) FindRegistrosEnRango(ctx context.Context, desde, hasta time.Time) ([]domain.RegistroDetalle, error) {
	args := m.Called(ctx, desde, hasta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegistroDetalle), args.Error(1)
}

func (m *MockRegistroRepository) SumPreciosEnRango(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, int64, error) {
	args := m.Called(ctx, desde, hasta)
	return args.Get(0).(decimal.Decimal), args.Get(1).(int64), args.Error(2)
}

func (m *MockRegistroRepository) SumPreciosBs(ctx context.Context) (decimal.Decimal, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Get(1).(int64), args.Error(2)
}

func (m *MockRegistroRepository) FindUltimoPorPlaca(ctx context.Context, placa string) (*domain.RegistroVehiculo, error) {
	args := m.Called(ctx, placa)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegistroVehiculo), args.Error(1)
}

// --- Test Suite ---
type EstadisticasServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRegistroRepository
	service  portssvc.EstadisticasSvcFacade
}

func (suite *EstadisticasServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRegistroRepository)
	suite.service = services.NewEstadisticasService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *EstadisticasServiceTestSuite) TestResumenSemana_Success() {
	ctx := context.Background()

	expectedDesde := time.Date(2025, time.January, 13, 0, 0, 0, 0, time.Local)
	expectedHasta := time.Date(2025, time.January, 19, 23, 59, 59, 999000000, time.Local)

	suite.mockRepo.On("SumPreciosEnRango", ctx, expectedDesde, expectedHasta).
		Return(decimal.RequireFromString("100"), int64(7), nil).Once()

	resumen, err := suite.service.ResumenSemana(ctx, "2025-01-13", "2025-01-19")

	suite.Require().NoError(err)
	suite.Require().NotNil(resumen)
	suite.True(resumen.TotalIngresos.Equal(decimal.RequireFromString("100")))
	suite.Equal(int64(7), resumen.TotalRegistros)
	// The interval strings echo the input verbatim
	suite.Equal("2025-01-13", resumen.FechaInicio)
	suite.Equal("2025-01-19", resumen.FechaFin)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EstadisticasServiceTestSuite) TestResumenSemana_EmptyInterval() {
	ctx := context.Background()

	suite.mockRepo.On("SumPreciosEnRango", ctx, mock.Anything, mock.Anything).
		Return(decimal.Zero, int64(0), nil).Once()

	resumen, err := suite.service.ResumenSemana(ctx, "2025-02-01", "2025-02-07")

	suite.Require().NoError(err)
	suite.True(resumen.TotalIngresos.IsZero())
	suite.Equal(int64(0), resumen.TotalRegistros)
}

func (suite *EstadisticasServiceTestSuite) TestResumenSemana_MissingDates() {
	ctx := context.Background()

	for _, tc := range []struct{ inicio, fin string }{
		{"", "2025-01-19"},
		{"2025-01-13", ""},
		{"", ""},
	} {
		resumen, err := suite.service.ResumenSemana(ctx, tc.inicio, tc.fin)
		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(resumen)
	}

	// No query runs when validation fails
	suite.mockRepo.AssertNotCalled(suite.T(), "SumPreciosEnRango", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EstadisticasServiceTestSuite) TestResumenSemana_MalformedDates() {
	ctx := context.Background()

	resumen, err := suite.service.ResumenSemana(ctx, "13/01/2025", "19/01/2025")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(resumen)
	suite.mockRepo.AssertNotCalled(suite.T(), "SumPreciosEnRango", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EstadisticasServiceTestSuite) TestResumenSemana_RepoError() {
	ctx := context.Background()

	suite.mockRepo.On("SumPreciosEnRango", ctx, mock.Anything, mock.Anything).
		Return(decimal.Zero, int64(0), errRepo).Once()

	resumen, err := suite.service.ResumenSemana(ctx, "2025-01-13", "2025-01-19")

	suite.Require().Error(err)
	suite.Nil(resumen)
}

func TestEstadisticasServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EstadisticasServiceTestSuite))
}
