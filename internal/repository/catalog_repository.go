package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"leaflink/internal/model"
)

// CatalogRepository carga el catalogo desde la tabla productos.
type CatalogRepository struct {
	DB *pgxpool.Pool
}

func (r *CatalogRepository) Load(ctx context.Context) ([]model.Product, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT tipo, nombre, atributo_1, descripcion, precio_mxn, stock, atributo_2, atributo_3
		FROM productos
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Product
	for rows.Next() {
		var p model.Product
		err := rows.Scan(
			&p.Tipo, &p.Nombre, &p.Atributo1, &p.Descripcion,
			&p.PrecioMXN, &p.Stock, &p.Atributo2, &p.Atributo3,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}

	return list, rows.Err()
}
