package chat

import (
	"strconv"
	"strings"

	"leaflink/internal/model"
)

const noProductsMessage = "No hay productos disponibles en el catalogo."

// FormatProductsForAI arma el bloque de catalogo que se incrusta en el prompt.
// Las etiquetas y el orden de los campos son parte del contrato con la IA:
// el prompt las referencia, no cambiarlas.
func FormatProductsForAI(products []model.Product) string {
	if len(products) == 0 {
		return noProductsMessage
	}

	var sb strings.Builder
	sb.WriteString("Catalogo de productos LeafLink:\n\n")

	for _, p := range products {
		sb.WriteString("Tipo: " + p.Tipo + "\n")
		sb.WriteString("Nombre: " + p.Nombre + "\n")
		sb.WriteString("Nombre cientifico/atributo: " + p.Atributo1 + "\n")
		sb.WriteString("Descripcion: " + p.Descripcion + "\n")
		sb.WriteString("Precio: $" + formatPrecio(p.PrecioMXN) + " MXN\n")
		sb.WriteString("Stock disponible: " + strconv.Itoa(p.Stock) + "\n")
		if p.Atributo2 != "" {
			sb.WriteString("Caracteristicas: " + p.Atributo2 + "\n")
		}
		if p.Atributo3 != "" {
			sb.WriteString("Uso recomendado: " + p.Atributo3 + "\n")
		}
		sb.WriteString("\n" + strings.Repeat("=", 50) + "\n\n")
	}

	return sb.String()
}

func formatPrecio(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
