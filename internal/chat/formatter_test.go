package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"leaflink/internal/model"
)

func TestFormatEmptyCatalog(t *testing.T) {
	assert.Equal(t, "No hay productos disponibles en el catalogo.", FormatProductsForAI(nil))
}

func TestFormatProductBlock(t *testing.T) {
	products := []model.Product{
		{
			Tipo:        "planta",
			Nombre:      "Monstera",
			Atributo1:   "Monstera deliciosa",
			Descripcion: "Planta de interior de hojas grandes",
			PrecioMXN:   350,
			Stock:       5,
			Atributo2:   "Hojas perforadas",
			Atributo3:   "Sala con luz indirecta",
		},
	}

	got := FormatProductsForAI(products)

	assert.True(t, strings.HasPrefix(got, "Catalogo de productos LeafLink:\n\n"))
	assert.Contains(t, got, "Tipo: planta\n")
	assert.Contains(t, got, "Nombre: Monstera\n")
	assert.Contains(t, got, "Nombre cientifico/atributo: Monstera deliciosa\n")
	assert.Contains(t, got, "Descripcion: Planta de interior de hojas grandes\n")
	assert.Contains(t, got, "Precio: $350 MXN\n")
	assert.Contains(t, got, "Stock disponible: 5\n")
	assert.Contains(t, got, "Caracteristicas: Hojas perforadas\n")
	assert.Contains(t, got, "Uso recomendado: Sala con luz indirecta\n")
	assert.Contains(t, got, strings.Repeat("=", 50))
}

func TestFormatOmitsEmptyOptionalAttributes(t *testing.T) {
	products := []model.Product{
		{Tipo: "planta", Nombre: "Poto", Atributo1: "Epipremnum aureum", Descripcion: "Colgante", PrecioMXN: 120, Stock: 9},
	}

	got := FormatProductsForAI(products)

	assert.NotContains(t, got, "Caracteristicas:")
	assert.NotContains(t, got, "Uso recomendado:")
}

func TestFormatDecimalPrice(t *testing.T) {
	products := []model.Product{
		{Tipo: "aromaterapia", Nombre: "Aceite", Atributo1: "Lavanda", Descripcion: "Esencial", PrecioMXN: 99.5, Stock: 3},
	}

	got := FormatProductsForAI(products)
	assert.Contains(t, got, "Precio: $99.5 MXN\n")
}

func TestFormatIsDeterministic(t *testing.T) {
	products := testCatalog()

	assert.Equal(t, FormatProductsForAI(products), FormatProductsForAI(products))
}
