package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/domain"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/dto"
	pkgdto "github.com/alimikegami/point-of-sales/ecommerce-service/pkg/dto"
	"github.com/alimikegami/point-of-sales/ecommerce-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestAddProduct(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	repo := new(mockProductRepo)
	productCache := new(mockCache)
	publisher := new(mockPublisher)
	svc := CreateProductService(repo, productCache, publisher)

	stored := domain.Product{
		Name:  "  T-Shirt ",
		Price: 19.99,
		Sizes: []domain.Size{{Size: "S", Quantity: 10}, {Size: "M", Quantity: 0}},
	}
	repo.On("AddProduct", ctx, stored).Return(id, nil).Once()

	expected := stored
	expected.ID = id
	productCache.On("Set", ctx, expected).Once()
	publisher.On("Publish", ctx, EventProductCreated, id.Hex(), expected).Return(errors.New("broker down")).Once()

	product, err := svc.AddProduct(ctx, dto.ProductRequest{
		Name:  "  T-Shirt ",
		Price: floatPtr(19.99),
		Sizes: []dto.SizeRequest{
			{Size: "S", Quantity: intPtr(10)},
			{Size: "M", Quantity: intPtr(0)},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, expected, product)
	repo.AssertExpectations(t)
	productCache.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAddProductKeepsInputAsGiven(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	repo := new(mockProductRepo)
	productCache := new(mockCache)
	publisher := new(mockPublisher)
	svc := CreateProductService(repo, productCache, publisher)

	stored := domain.Product{
		Name:  " Hoodie",
		Price: 0,
		Sizes: []domain.Size{{Size: "M", Quantity: 1}, {Size: "M ", Quantity: 2}},
	}
	repo.On("AddProduct", ctx, stored).Return(id, nil).Once()
	productCache.On("Set", ctx, mock.Anything).Once()
	publisher.On("Publish", ctx, EventProductCreated, id.Hex(), mock.Anything).Return(nil).Once()

	product, err := svc.AddProduct(ctx, dto.ProductRequest{
		Name:  " Hoodie",
		Price: floatPtr(0),
		Sizes: []dto.SizeRequest{
			{Size: "M", Quantity: intPtr(1)},
			{Size: "M ", Quantity: intPtr(2)},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, " Hoodie", product.Name)
	assert.Equal(t, "M ", product.Sizes[1].Size)
	repo.AssertExpectations(t)
}

func TestAddProductValidation(t *testing.T) {
	testCases := []struct {
		name   string
		req    dto.ProductRequest
		fields []string
	}{
		{
			name: "blank name",
			req: dto.ProductRequest{
				Name:  "   ",
				Price: floatPtr(1),
				Sizes: []dto.SizeRequest{{Size: "S", Quantity: intPtr(1)}},
			},
			fields: []string{"name"},
		},
		{
			name: "missing price",
			req: dto.ProductRequest{
				Name:  "T-Shirt",
				Sizes: []dto.SizeRequest{{Size: "S", Quantity: intPtr(1)}},
			},
			fields: []string{"price"},
		},
		{
			name: "negative price",
			req: dto.ProductRequest{
				Name:  "T-Shirt",
				Price: floatPtr(-1),
				Sizes: []dto.SizeRequest{{Size: "S", Quantity: intPtr(1)}},
			},
			fields: []string{"price"},
		},
		{
			name: "missing sizes",
			req: dto.ProductRequest{
				Name:  "T-Shirt",
				Price: floatPtr(1),
			},
			fields: []string{"sizes"},
		},
		{
			name: "size without label and negative quantity",
			req: dto.ProductRequest{
				Name:  "T-Shirt",
				Price: floatPtr(1),
				Sizes: []dto.SizeRequest{{Size: "S", Quantity: intPtr(1)}, {Size: " ", Quantity: intPtr(-2)}},
			},
			fields: []string{"sizes[1].size", "sizes[1].quantity"},
		},
		{
			name: "duplicate size labels",
			req: dto.ProductRequest{
				Name:  "T-Shirt",
				Price: floatPtr(1),
				Sizes: []dto.SizeRequest{{Size: "M", Quantity: intPtr(1)}, {Size: "M", Quantity: intPtr(2)}},
			},
			fields: []string{"sizes"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockProductRepo)
			svc := CreateProductService(repo, new(mockCache), new(mockPublisher))

			_, err := svc.AddProduct(context.Background(), tc.req)

			require.ErrorIs(t, err, errs.ErrClient)
			var validationErr *errs.ValidationError
			require.ErrorAs(t, err, &validationErr)

			fields := make([]string, 0, len(validationErr.Fields))
			for _, f := range validationErr.Fields {
				fields = append(fields, f.Field)
			}
			assert.ElementsMatch(t, tc.fields, fields)
			repo.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything)
		})
	}
}

func TestAddProductStorageFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(mockProductRepo)
	publisher := new(mockPublisher)
	svc := CreateProductService(repo, new(mockCache), publisher)

	repo.On("AddProduct", ctx, mock.Anything).Return(primitive.NilObjectID, errs.Storage("insert", errors.New("timeout")))

	_, err := svc.AddProduct(ctx, dto.ProductRequest{
		Name:  "T-Shirt",
		Price: floatPtr(1),
		Sizes: []dto.SizeRequest{{Size: "S", Quantity: intPtr(1)}},
	})

	assert.ErrorIs(t, err, errs.ErrStorage)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetProducts(t *testing.T) {
	ctx := context.Background()
	products := []domain.Product{{ID: primitive.NewObjectID(), Name: "T-Shirt"}}

	t.Run("defaults paging", func(t *testing.T) {
		repo := new(mockProductRepo)
		svc := CreateProductService(repo, new(mockCache), new(mockPublisher))
		repo.On("GetProducts", ctx, domain.ProductFilter{Name: "shirt", Size: "M"}, pkgdto.Filter{Page: 1, PageSize: 10}).
			Return(products, int64(1), nil).Once()

		res, err := svc.GetProducts(ctx, domain.ProductFilter{Name: "shirt", Size: "M"}, pkgdto.Filter{})

		require.NoError(t, err)
		assert.Equal(t, pkgdto.PaginationResponse{Data: products, Page: 1, PageSize: 10, Total: 1}, res)
		repo.AssertExpectations(t)
	})

	t.Run("page size is clamped", func(t *testing.T) {
		repo := new(mockProductRepo)
		svc := CreateProductService(repo, new(mockCache), new(mockPublisher))
		repo.On("GetProducts", ctx, domain.ProductFilter{}, pkgdto.Filter{Page: 3, PageSize: 100}).
			Return([]domain.Product{}, int64(5), nil).Once()

		res, err := svc.GetProducts(ctx, domain.ProductFilter{}, pkgdto.Filter{Page: 3, PageSize: 1000})

		require.NoError(t, err)
		assert.Equal(t, 100, res.PageSize)
		assert.Equal(t, []domain.Product{}, res.Data)
		assert.Equal(t, int64(5), res.Total)
	})

	t.Run("negative page is rejected", func(t *testing.T) {
		repo := new(mockProductRepo)
		svc := CreateProductService(repo, new(mockCache), new(mockPublisher))

		_, err := svc.GetProducts(ctx, domain.ProductFilter{}, pkgdto.Filter{Page: -1})

		assert.ErrorIs(t, err, errs.ErrClient)
		repo.AssertNotCalled(t, "GetProducts", mock.Anything, mock.Anything, mock.Anything)
	})
}
