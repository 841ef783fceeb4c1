package product

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/laurel/pkg/database"
	"github.com/Ramsey-B/laurel/pkg/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	db := database.NewDatabaseInstance(sqlx.NewDb(mockDB, "sqlmock"), logger)

	return NewRepository(db, logger), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec("INSERT INTO products").
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.Create(context.Background(), &models.Product{
		TenantID: "t1",
		Name:     "Kettle",
		GTIN:     "04012345678901",
		Category: "Household Appliances",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	t.Run("should map the row back to the domain model", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		rows := sqlmock.NewRows([]string{
			"id", "tenant_id", "name", "gtin", "category",
			"manufacturer_name", "manufacturer_address",
			"materials", "certifications", "recyclability", "registrations",
			"gross_weight_grams", "net_weight_grams",
			"manufacturer_supplier_id", "importer_supplier_id", "linked_supplier_ids",
			"created_at", "updated_at",
		}).AddRow(
			"p1", "t1", "Kettle", "04012345678901", "Household Appliances",
			"Acme Appliances GmbH", "Industriestr. 1",
			[]byte(`[{"name":"Steel","percentage":80,"recyclable":true,"type":"packaging"}]`),
			[]byte(`["CE"]`), []byte(`null`), []byte(`{"weee_reg_no":"DE 12345678"}`),
			int64(1800), nil,
			nil, nil, []byte(`["s1","s2"]`),
			nil, nil,
		)

		mock.ExpectQuery("SELECT (.+) FROM products").
			WillReturnRows(rows)

		product, err := repo.GetByID(context.Background(), "t1", "p1")
		require.NoError(t, err)

		assert.Equal(t, "Kettle", product.Name)
		assert.Equal(t, "04012345678901", product.GTIN)
		require.Len(t, product.Materials, 1)
		assert.Equal(t, models.MaterialTypePackaging, product.Materials[0].Type)
		assert.Equal(t, "DE 12345678", product.Registrations["weee_reg_no"])
		require.NotNil(t, product.GrossWeightGrams)
		assert.Equal(t, int64(1800), *product.GrossWeightGrams)
		assert.Nil(t, product.NetWeightGrams)
		assert.Equal(t, []string{"s1", "s2"}, product.LinkedSupplierIDs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should return 404 when the product does not exist", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectQuery("SELECT (.+) FROM products").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(context.Background(), "t1", "missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "product not found")
	})
}

func TestRepository_Delete(t *testing.T) {
	t.Run("should return 404 when nothing was deleted", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectExec("DELETE FROM products").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), "t1", "missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "product not found")
	})

	t.Run("should delete an existing product", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectExec("DELETE FROM products").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), "t1", "p1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
