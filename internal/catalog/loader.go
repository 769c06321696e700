package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"leaflink/internal/model"
)

// Source entrega el catalogo completo o falla. Nunca un catalogo parcial.
type Source interface {
	Load(ctx context.Context) ([]model.Product, error)
}

var expectedHeader = []string{
	"tipo", "nombre", "atributo_1", "descripcion",
	"precio_mxn", "stock", "atributo_2", "atributo_3",
}

// FileSource lee el catalogo desde un archivo CSV en cada llamada.
type FileSource struct {
	Path string
}

func (s *FileSource) Load(ctx context.Context) ([]model.Product, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir el catalogo: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer el catalogo: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("catalogo vacio: falta el encabezado")
	}

	if err := checkHeader(records[0]); err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(records)-1)
	for i, rec := range records[1:] {
		p, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("fila %d del catalogo: %w", i+2, err)
		}
		products = append(products, p)
	}

	return products, nil
}

func checkHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return fmt.Errorf("encabezado del catalogo invalido: %v", header)
	}
	for i, col := range expectedHeader {
		if header[i] != col {
			return fmt.Errorf("columna %d del catalogo: se esperaba %q, llego %q", i+1, col, header[i])
		}
	}
	return nil
}

func parseRow(rec []string) (model.Product, error) {
	var p model.Product

	precio, err := strconv.ParseFloat(rec[4], 64)
	if err != nil {
		return p, fmt.Errorf("precio invalido %q: %w", rec[4], err)
	}
	stock, err := strconv.Atoi(rec[5])
	if err != nil {
		return p, fmt.Errorf("stock invalido %q: %w", rec[5], err)
	}

	p = model.Product{
		Tipo:        rec[0],
		Nombre:      rec[1],
		Atributo1:   rec[2],
		Descripcion: rec[3],
		PrecioMXN:   precio,
		Stock:       stock,
		Atributo2:   rec[6],
		Atributo3:   rec[7],
	}
	return p, nil
}
