package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/apperrors"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
	portssvc "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/ports/services"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/services"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CatalogoRepository ---
type MockCatalogoRepository struct {
	mock.Mock
}

func (m *MockCatalogoRepository) GetDatosFormulario(ctx context.Context) (*domain.DatosFormulario, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DatosFormulario), args.Error(1)
}

// --- Test Suite ---
type RegistroServiceTestSuite struct {
	suite.Suite
	mockRegistroRepo *MockRegistroRepository
	mockCatalogoRepo *MockCatalogoRepository
	service          portssvc.RegistroSvcFacade
}

func (suite *RegistroServiceTestSuite) SetupTest() {
	suite.mockRegistroRepo = new(MockRegistroRepository)
	suite.mockCatalogoRepo = new(MockCatalogoRepository)
	suite.service = services.NewRegistroService(suite.mockRegistroRepo, suite.mockCatalogoRepo)
}

func validCreateRegistroRequest() dto.CreateRegistroRequest {
	return dto.CreateRegistroRequest{
		NombreDueno:    "María Pérez",
		Cedula:         "V-12345678",
		Telefono:       "0414-1234567",
		Placa:          " ab 123 cd ",
		TipoVehiculoID: "tv-sedan",
		Color:          "Azul",
		PrecioTotal:    decimal.RequireFromString("5.00"),
		ServicioID:     "srv-ext-int",
		EstadoCarroID:  "ec-normal",
		EstadoPagoID:   "ep-pagado",
		ServiciosExtra: []string{"se-aromatizante"},
	}
}

// --- CreateRegistro ---

func (suite *RegistroServiceTestSuite) TestCreateRegistro_NormalizesPlate() {
	ctx := context.Background()
	req := validCreateRegistroRequest()

	suite.mockRegistroRepo.On("SaveRegistro", ctx, mock.MatchedBy(func(r domain.RegistroVehiculo) bool {
		return r.Placa == "AB123CD" && r.RegistroID != "" && !r.FechaHora.IsZero()
	})).Return(nil).Once()

	registro, err := suite.service.CreateRegistro(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("AB123CD", registro.Placa)
	suite.Equal(req.NombreDueno, registro.NombreDueno)
	suite.Equal(req.ServiciosExtra, registro.ServiciosExtra)
	suite.mockRegistroRepo.AssertExpectations(suite.T())
}

func (suite *RegistroServiceTestSuite) TestCreateRegistro_BlankPlate() {
	ctx := context.Background()
	req := validCreateRegistroRequest()
	req.Placa = "   "

	registro, err := suite.service.CreateRegistro(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(registro)
	suite.mockRegistroRepo.AssertNotCalled(suite.T(), "SaveRegistro", mock.Anything, mock.Anything)
}

func (suite *RegistroServiceTestSuite) TestCreateRegistro_SaveError() {
	ctx := context.Background()
	req := validCreateRegistroRequest()

	suite.mockRegistroRepo.On("SaveRegistro", ctx, mock.Anything).Return(errRepo).Once()

	registro, err := suite.service.CreateRegistro(ctx, req)

	suite.Require().Error(err)
	suite.Nil(registro)
}

// --- DatosFormulario ---

func (suite *RegistroServiceTestSuite) TestDatosFormulario_UsesTodaysRange() {
	ctx := context.Background()

	detalles := []domain.RegistroDetalle{
		{RegistroVehiculo: domain.RegistroVehiculo{RegistroID: "r1", Placa: "AB123CD"}, Servicio: "Lavado Exterior"},
	}
	catalogos := &domain.DatosFormulario{
		TiposVehiculo: []domain.TipoVehiculo{{TipoVehiculoID: "tv-moto", Nombre: "Moto"}},
	}

	suite.mockRegistroRepo.On("FindRegistrosEnRango", ctx,
		mock.MatchedBy(func(desde time.Time) bool {
			now := time.Now()
			return desde.Year() == now.Year() && desde.Month() == now.Month() &&
				desde.Day() == now.Day() && desde.Hour() == 0 && desde.Minute() == 0
		}),
		mock.MatchedBy(func(hasta time.Time) bool {
			now := time.Now()
			return hasta.Day() == now.Day() && hasta.Hour() == 23 && hasta.Minute() == 59
		}),
	).Return(detalles, nil).Once()
	suite.mockCatalogoRepo.On("GetDatosFormulario", ctx).Return(catalogos, nil).Once()

	registros, datos, err := suite.service.DatosFormulario(ctx)

	suite.Require().NoError(err)
	suite.Equal(detalles, registros)
	suite.Equal(catalogos, datos)
	suite.mockRegistroRepo.AssertExpectations(suite.T())
	suite.mockCatalogoRepo.AssertExpectations(suite.T())
}

func (suite *RegistroServiceTestSuite) TestDatosFormulario_CatalogError() {
	ctx := context.Background()

	suite.mockRegistroRepo.On("FindRegistrosEnRango", ctx, mock.Anything, mock.Anything).
		Return([]domain.RegistroDetalle{}, nil).Once()
	suite.mockCatalogoRepo.On("GetDatosFormulario", ctx).Return(nil, errRepo).Once()

	registros, datos, err := suite.service.DatosFormulario(ctx)

	suite.Require().Error(err)
	suite.Nil(registros)
	suite.Nil(datos)
}

// --- VerificarPlaca ---

func (suite *RegistroServiceTestSuite) TestVerificarPlaca_NormalizesBeforeLookup() {
	ctx := context.Background()

	encontrado := &domain.RegistroVehiculo{RegistroID: "r1", Placa: "AB123CD", NombreDueno: "María Pérez"}
	suite.mockRegistroRepo.On("FindUltimoPorPlaca", ctx, "AB123CD").Return(encontrado, nil).Once()

	registro, err := suite.service.VerificarPlaca(ctx, "  ab 123 cd ")

	suite.Require().NoError(err)
	suite.Equal(encontrado, registro)
	suite.mockRegistroRepo.AssertExpectations(suite.T())
}

func (suite *RegistroServiceTestSuite) TestVerificarPlaca_Blank() {
	ctx := context.Background()

	registro, err := suite.service.VerificarPlaca(ctx, "   ")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(registro)
	suite.mockRegistroRepo.AssertNotCalled(suite.T(), "FindUltimoPorPlaca", mock.Anything, mock.Anything)
}

func (suite *RegistroServiceTestSuite) TestVerificarPlaca_NotFoundPassesThrough() {
	ctx := context.Background()

	suite.mockRegistroRepo.On("FindUltimoPorPlaca", ctx, "ZZ999ZZ").Return(nil, apperrors.ErrNotFound).Once()

	registro, err := suite.service.VerificarPlaca(ctx, "zz 999 zz")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(registro)
}

func TestRegistroServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegistroServiceTestSuite))
}
