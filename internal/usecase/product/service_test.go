package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhdiogoh/cyga-ecommerce/internal/domain/money"
	dom "github.com/dhdiogoh/cyga-ecommerce/internal/domain/product"
)

type mockProductRepo struct {
	nextID   int
	products map[string]*dom.Product
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[string]*dom.Product)}
}

func (m *mockProductRepo) clone(p *dom.Product) *dom.Product {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func (m *mockProductRepo) Create(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	m.nextID++
	p.ID = string(rune('0' + m.nextID))
	m.products[p.ID] = m.clone(p)
	return m.clone(p), nil
}

func (m *mockProductRepo) Update(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	if _, ok := m.products[p.ID]; !ok {
		return nil, dom.ErrProductNotFound
	}
	m.products[p.ID] = m.clone(p)
	return m.clone(p), nil
}

func (m *mockProductRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.products[id]; !ok {
		return dom.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *mockProductRepo) GetByID(ctx context.Context, id string) (*dom.Product, error) {
	if p, ok := m.products[id]; ok {
		return m.clone(p), nil
	}
	return nil, dom.ErrProductNotFound
}

func (m *mockProductRepo) GetByIDs(ctx context.Context, ids []string) ([]*dom.Product, error) {
	var result []*dom.Product
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			result = append(result, m.clone(p))
		}
	}
	return result, nil
}

func (m *mockProductRepo) List(ctx context.Context, filter dom.ListFilter) ([]*dom.Product, error) {
	var result []*dom.Product
	for _, p := range m.products {
		if filter.OnlyActive && !p.IsActive {
			continue
		}
		result = append(result, m.clone(p))
	}
	return result, nil
}

func (m *mockProductRepo) BulkUpdate(ctx context.Context, ids []string, fields dom.BulkFields) (int64, error) {
	var n int64
	for _, id := range ids {
		p, ok := m.products[id]
		if !ok {
			continue
		}
		if fields.CategoryID != nil {
			p.CategoryID = *fields.CategoryID
		}
		if fields.IsActive != nil {
			p.IsActive = *fields.IsActive
		}
		n++
	}
	return n, nil
}

func (m *mockProductRepo) UpdatePrice(ctx context.Context, id string, price money.Amount) error {
	p, ok := m.products[id]
	if !ok {
		return dom.ErrProductNotFound
	}
	p.Price = price
	return nil
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), &dom.Product{
		Name:        "Anel Solitário",
		Description: "Anel em prata 925 com zircônia",
		Price:       29990,
		Stock:       10,
		CategoryID:  "cat-1",
		IsActive:    true,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), &dom.Product{
		ID:       created.ID,
		Price:    24990,
		IsActive: true,
	})
	require.NoError(t, err)

	require.Equal(t, money.Amount(24990), updated.Price)
	require.Equal(t, "Anel Solitário", updated.Name, "unset fields keep prior values")
	require.Equal(t, int64(10), updated.Stock)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), &dom.Product{ID: "missing"})
	require.ErrorIs(t, err, dom.ErrProductNotFound)
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name   string
		price  money.Amount
		kind   DiscountKind
		amount float64
		want   money.Amount
	}{
		{
			name:   "Percentage 20 off",
			price:  10000,
			kind:   DiscountPercentage,
			amount: 20,
			want:   8000,
		},
		{
			name:   "Percentage rounds to whole centavos",
			price:  29990,
			kind:   DiscountPercentage,
			amount: 33,
			want:   20093, // 29990 * 0.67 = 20093.3
		},
		{
			name:   "Percentage 100 floors at one centavo",
			price:  10000,
			kind:   DiscountPercentage,
			amount: 100,
			want:   1,
		},
		{
			name:   "Fixed 10 reais off",
			price:  10000,
			kind:   DiscountFixed,
			amount: 10,
			want:   9000,
		},
		{
			name:   "Fixed bigger than price floors at one centavo",
			price:  500,
			kind:   DiscountFixed,
			amount: 10,
			want:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ApplyDiscount(tt.price, tt.kind, tt.amount))
		})
	}
}

func TestBulkDiscount_RepricesSelection(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewService(repo)

	a, err := svc.Create(context.Background(), &dom.Product{Name: "A", Price: 10000, IsActive: true})
	require.NoError(t, err)
	b, err := svc.Create(context.Background(), &dom.Product{Name: "B", Price: 20000, IsActive: true})
	require.NoError(t, err)
	c, err := svc.Create(context.Background(), &dom.Product{Name: "C", Price: 30000, IsActive: true})
	require.NoError(t, err)

	// Only a and b are selected.
	_, err = svc.BulkDiscount(context.Background(), []string{a.ID, b.ID}, DiscountPercentage, 50)
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	require.Equal(t, money.Amount(5000), got.Price)

	got, err = svc.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	require.Equal(t, money.Amount(10000), got.Price)

	got, err = svc.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	require.Equal(t, money.Amount(30000), got.Price, "unselected product keeps its price")
}

func TestBulkUpdate_OverwritesFields(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewService(repo)

	a, err := svc.Create(context.Background(), &dom.Product{Name: "A", Price: 100, CategoryID: "old", IsActive: true})
	require.NoError(t, err)
	b, err := svc.Create(context.Background(), &dom.Product{Name: "B", Price: 200, CategoryID: "old", IsActive: true})
	require.NoError(t, err)

	newCat := "cat-nova"
	inactive := false
	n, err := svc.BulkUpdate(context.Background(), []string{a.ID, b.ID}, dom.BulkFields{
		CategoryID: &newCat,
		IsActive:   &inactive,
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	got, err := svc.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	require.Equal(t, "cat-nova", got.CategoryID)
	require.False(t, got.IsActive)
}

func TestBulkUpdate_EmptySelection(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewService(repo)

	n, err := svc.BulkUpdate(context.Background(), nil, dom.BulkFields{})
	require.NoError(t, err)
	require.Zero(t, n)
}
