package paginacion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizar(t *testing.T) {
	tests := []struct {
		name       string
		pagina     int
		limite     int
		wantPagina int
		wantLimite int
	}{
		{"defaults kept", 1, 10, 1, 10},
		{"zero page clamps to 1", 0, 10, 1, 10},
		{"negative page clamps to 1", -5, 10, 1, 10},
		{"zero limit falls back to default", 3, 0, 3, 10},
		{"negative limit falls back to default", 3, -1, 3, 10},
		{"oversized limit capped", 1, 500, 1, 100},
		{"max limit allowed", 1, 100, 1, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pagina, limite := Normalizar(tt.pagina, tt.limite)
			assert.Equal(t, tt.wantPagina, pagina)
			assert.Equal(t, tt.wantLimite, limite)
		})
	}
}

func TestCalcular(t *testing.T) {
	t.Run("exact pages", func(t *testing.T) {
		p := Calcular(1, 10, 30)
		assert.Equal(t, 3, p.TotalPaginas)
		assert.Equal(t, int64(30), p.TotalGastos)
		assert.True(t, p.TieneSiguiente)
		assert.False(t, p.TieneAnterior)
	})

	t.Run("partial last page rounds up", func(t *testing.T) {
		p := Calcular(1, 10, 31)
		assert.Equal(t, 4, p.TotalPaginas)
	})

	t.Run("middle page has both neighbours", func(t *testing.T) {
		p := Calcular(2, 10, 35)
		assert.True(t, p.TieneSiguiente)
		assert.True(t, p.TieneAnterior)
	})

	t.Run("last page has no next", func(t *testing.T) {
		p := Calcular(4, 10, 35)
		assert.False(t, p.TieneSiguiente)
		assert.True(t, p.TieneAnterior)
	})

	t.Run("empty listing", func(t *testing.T) {
		p := Calcular(1, 10, 0)
		assert.Equal(t, 0, p.TotalPaginas)
		assert.False(t, p.TieneSiguiente)
		assert.False(t, p.TieneAnterior)
	})

	t.Run("clamps inputs before computing", func(t *testing.T) {
		p := Calcular(0, 0, 25)
		assert.Equal(t, 1, p.PaginaActual)
		assert.Equal(t, LimiteDefecto, p.Limite)
		assert.Equal(t, 3, p.TotalPaginas)
	})
}
