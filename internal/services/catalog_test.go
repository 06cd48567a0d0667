package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCatalogLoader_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name        string
		mockSetup   func() *CatalogLoader
		expected    models.Catalog
		expectedErr error
	}{
		{
			name: "success",
			mockSetup: func() *CatalogLoader {
				lister := NewMockCurrencyLister(ctrl)
				lister.EXPECT().
					GetCurrencies(ctx).
					Return(map[string]string{"USD": "United States Dollar", "EUR": "Euro"}, nil)
				return NewCatalogLoader(lister)
			},
			expected: models.Catalog{"USD": "United States Dollar", "EUR": "Euro"},
		},
		{
			name: "empty_list",
			mockSetup: func() *CatalogLoader {
				lister := NewMockCurrencyLister(ctrl)
				lister.EXPECT().
					GetCurrencies(ctx).
					Return(map[string]string{}, nil)
				return NewCatalogLoader(lister)
			},
			expected: models.Catalog{},
		},
		{
			name: "network_error",
			mockSetup: func() *CatalogLoader {
				lister := NewMockCurrencyLister(ctrl)
				lister.EXPECT().
					GetCurrencies(ctx).
					Return(nil, errors.New("dial tcp: connection refused"))
				return NewCatalogLoader(lister)
			},
			expectedErr: ErrCatalogLoadFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := tt.mockSetup()
			catalog, err := loader.Load(ctx)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, catalog)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, catalog)
		})
	}
}
