package services

// ServiceContainer bundles all service facades for injection into the
// HTTP handlers.
type ServiceContainer struct {
	Estadisticas EstadisticasSvcFacade
	Monedero     MonederoSvcFacade
	Registro     RegistroSvcFacade
	Usuario      UsuarioSvcFacade
}
