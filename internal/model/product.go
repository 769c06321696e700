package model

// Product es una fila del catalogo de LeafLink. Inmutable despues de la carga.
type Product struct {
	Tipo        string  `json:"tipo"`
	Nombre      string  `json:"nombre"`
	Atributo1   string  `json:"atributo_1"`
	Descripcion string  `json:"descripcion"`
	PrecioMXN   float64 `json:"precio_mxn"`
	Stock       int     `json:"stock"`
	Atributo2   string  `json:"atributo_2"`
	Atributo3   string  `json:"atributo_3"`
}
