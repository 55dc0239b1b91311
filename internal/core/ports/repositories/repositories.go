package repositories

// RepositoryProvider bundles all repositories for dependency injection into
// the service layer.
type RepositoryProvider struct {
	Registro   RegistroRepository
	Gasto      GastoRepository
	MetodoPago MetodoPagoRepository
	Usuario    UsuarioRepository
	Catalogo   CatalogoRepository
}
