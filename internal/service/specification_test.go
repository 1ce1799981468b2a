package service

import (
	"testing"

	"github.com/AveQY/ddhj/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeductStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewSpecificationService(db)
	spec := seedSpecification(t, db, 1, 5)

	require.NoError(t, svc.DeductStock(spec.ID, 3))

	got, err := svc.GetByID(spec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Stock)
}

func TestDeductStockInsufficient(t *testing.T) {
	db := newTestDB(t)
	svc := NewSpecificationService(db)
	spec := seedSpecification(t, db, 1, 2)

	err := svc.DeductStock(spec.ID, 3)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// Stock untouched after the refused deduction.
	got, err := svc.GetByID(spec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Stock)
}

func TestDeductStockMissingSpec(t *testing.T) {
	db := newTestDB(t)
	svc := NewSpecificationService(db)

	err := svc.DeductStock(12345, 1)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestDeductStockToZero(t *testing.T) {
	db := newTestDB(t)
	svc := NewSpecificationService(db)
	spec := seedSpecification(t, db, 1, 4)

	require.NoError(t, svc.DeductStock(spec.ID, 4))

	got, err := svc.GetByID(spec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0, got.Stock)
}

func TestSpecificationListByProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewSpecificationService(db)
	seedSpecification(t, db, 1, 5)
	seedSpecification(t, db, 1, 8)
	seedSpecification(t, db, 2, 9)

	specs, err := svc.ListByProduct(1)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	for _, spec := range specs {
		assert.Equal(t, int64(1), spec.ProductID)
	}

	specs, err = svc.ListByProduct(3)
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func TestSpecificationSpecsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewSpecificationService(db)
	spec := &models.Specification{
		ProductID: 1,
		Name:      "红 L",
		Specs:     models.StringMap{"颜色": "红", "尺寸": "L"},
		Stock:     1,
	}
	require.NoError(t, svc.Create(spec))

	got, err := svc.GetByID(spec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.StringMap{"颜色": "红", "尺寸": "L"}, got.Specs)
}
