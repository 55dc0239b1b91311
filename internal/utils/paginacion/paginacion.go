package paginacion

import "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"

const (
	// LimiteDefecto is the page size used when the caller supplies none.
	LimiteDefecto = 10
	limiteMaximo  = 100
)

// Normalizar clamps page and limit to usable values: pages below 1 become 1,
// non-positive limits fall back to the default, oversized limits are capped.
func Normalizar(pagina, limite int) (int, int) {
	if pagina < 1 {
		pagina = 1
	}
	if limite < 1 {
		limite = LimiteDefecto
	}
	if limite > limiteMaximo {
		limite = limiteMaximo
	}
	return pagina, limite
}

// Calcular builds the page metadata for a listing of totalItems rows.
// totalPaginas is ceil(totalItems/limite).
func Calcular(pagina, limite int, totalItems int64) domain.Paginacion {
	pagina, limite = Normalizar(pagina, limite)

	totalPaginas := int((totalItems + int64(limite) - 1) / int64(limite))

	return domain.Paginacion{
		PaginaActual:   pagina,
		TotalPaginas:   totalPaginas,
		Limite:         limite,
		TotalGastos:    totalItems,
		TieneSiguiente: pagina < totalPaginas,
		TieneAnterior:  pagina > 1,
	}
}
