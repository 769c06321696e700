package chat

import (
	"strings"

	"leaflink/internal/model"
)

// Limite de productos enviados a la IA para no sobrecargar el contexto.
const maxContextProducts = 10

var plantKeywords = []string{
	"planta", "plantas", "suculenta", "suculentas", "monstera", "poto", "palma",
	"helecho", "cactus", "calathea", "ficus", "interior", "exterior", "jardín",
	"verde", "hoja", "hojas", "maceta", "cuidado", "riego", "luz", "sombra",
	"resistente", "purifica", "aire", "tropical", "decorativa",
}

var aromaKeywords = []string{
	"aromaterapia", "aceite", "aceites", "esencial", "esenciales", "vela", "velas",
	"difusor", "spray", "roll-on", "lavanda", "eucalipto", "limón", "naranja",
	"relajante", "energético", "estrés", "ansiedad", "sueño", "concentración",
	"aromático", "fragancia", "olor", "huele",
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// FilterRelevantProducts reduce el catalogo a los productos relevantes para la
// pregunta. Devuelve como maximo maxContextProducts filas, en el orden del
// catalogo. Es un filtro, no un buscador: no hay ranking.
func FilterRelevantProducts(products []model.Product, question string) []model.Product {
	questionLower := strings.ToLower(question)

	isAboutPlants := containsAny(questionLower, plantKeywords)
	isAboutAroma := containsAny(questionLower, aromaKeywords)

	var relevant []model.Product
	switch {
	case !isAboutPlants && !isAboutAroma:
		// Sin palabras clave: busca cada token de la pregunta en los campos de texto
		for _, p := range products {
			combined := strings.ToLower(p.Nombre + " " + p.Atributo1 + " " + p.Descripcion)
			for _, token := range strings.Fields(questionLower) {
				if strings.Contains(combined, token) {
					relevant = append(relevant, p)
					break
				}
			}
		}
	case isAboutPlants && isAboutAroma:
		for _, p := range products {
			if p.Tipo == "planta" || p.Tipo == "aromaterapia" {
				relevant = append(relevant, p)
			}
		}
	case isAboutPlants:
		for _, p := range products {
			if p.Tipo == "planta" {
				relevant = append(relevant, p)
			}
		}
	default:
		for _, p := range products {
			if p.Tipo == "aromaterapia" {
				relevant = append(relevant, p)
			}
		}
	}

	// Regla de negocio: mejor mandar todo el catalogo que dejar a la IA sin contexto
	if len(relevant) == 0 {
		relevant = products
	}

	if len(relevant) > maxContextProducts {
		relevant = relevant[:maxContextProducts]
	}

	return relevant
}
