package cart

import (
	"context"
	"testing"

	"github.com/pibich/Akivili-UAS/domain"
	"github.com/pibich/Akivili-UAS/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeCartRepository mirrors the upsert semantics of the real repository:
// one cart per user, one row per (cart, package) with quantity increments.
type fakeCartRepository struct {
	carts map[uuid.UUID]*entities.Cart
	items map[string]*entities.CartItem
	pkg   *entities.TopupPackage
}

func newFakeCartRepository(pkg *entities.TopupPackage) *fakeCartRepository {
	return &fakeCartRepository{
		carts: make(map[uuid.UUID]*entities.Cart),
		items: make(map[string]*entities.CartItem),
		pkg:   pkg,
	}
}

func (r *fakeCartRepository) AddItem(_ context.Context, userID uuid.UUID, packageID uuid.UUID, quantity int) (*entities.CartItem, error) {
	cart, ok := r.carts[userID]
	if !ok {
		cart = &entities.Cart{ID: uuid.New(), UserID: userID}
		r.carts[userID] = cart
	}

	for _, item := range cart.Items {
		if item.TopupPackageID == packageID {
			item.Quantity += quantity
			return item, nil
		}
	}

	item := &entities.CartItem{
		ID:             uuid.New(),
		CartID:         cart.ID,
		TopupPackageID: packageID,
		Quantity:       quantity,
		Cart:           cart,
		TopupPackage:   r.pkg,
	}
	cart.Items = append(cart.Items, item)
	r.items[item.ID.String()] = item
	return item, nil
}

func (r *fakeCartRepository) GetCartByUserID(_ context.Context, userID string) (*entities.Cart, error) {
	for id, cart := range r.carts {
		if id.String() == userID {
			return cart, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCartRepository) GetItemByID(_ context.Context, itemID string) (*entities.CartItem, error) {
	item, ok := r.items[itemID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *fakeCartRepository) DeleteItem(_ context.Context, itemID string) error {
	delete(r.items, itemID)
	return nil
}

type fakeCatalogRepository struct {
	pkg *entities.TopupPackage
}

func (r *fakeCatalogRepository) GetGames(context.Context) ([]*entities.Game, error) {
	return nil, nil
}

func (r *fakeCatalogRepository) GetGameByID(context.Context, string) (*entities.Game, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCatalogRepository) GetGamePackages(context.Context, string) ([]*entities.TopupPackage, error) {
	return nil, nil
}

func (r *fakeCatalogRepository) GetPackageByID(_ context.Context, id string) (*entities.TopupPackage, error) {
	if r.pkg == nil || r.pkg.ID.String() != id {
		return nil, gorm.ErrRecordNotFound
	}
	return r.pkg, nil
}

func testPackage() *entities.TopupPackage {
	return &entities.TopupPackage{
		ID:          uuid.New(),
		GameID:      uuid.New(),
		PackageName: "300 Crystals",
		Price:       79000,
		Currency:    "IDR",
	}
}

func TestAddToCartInvalidQuantity(t *testing.T) {
	pkg := testPackage()
	service := NewCartService(newFakeCartRepository(pkg), &fakeCatalogRepository{pkg: pkg})

	for _, quantity := range []int{0, -3} {
		_, err := service.AddToCart(context.Background(), domain.AddToCartRequest{
			TopupPackageID: pkg.ID.String(),
			Quantity:       quantity,
		}, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
}

func TestAddToCartUnknownPackage(t *testing.T) {
	pkg := testPackage()
	service := NewCartService(newFakeCartRepository(pkg), &fakeCatalogRepository{pkg: pkg})

	_, err := service.AddToCart(context.Background(), domain.AddToCartRequest{
		TopupPackageID: uuid.NewString(),
		Quantity:       1,
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestAddToCartMergesDuplicates(t *testing.T) {
	pkg := testPackage()
	repo := newFakeCartRepository(pkg)
	service := NewCartService(repo, &fakeCatalogRepository{pkg: pkg})
	userID := uuid.NewString()

	req := domain.AddToCartRequest{TopupPackageID: pkg.ID.String(), Quantity: 1}

	first, err := service.AddToCart(context.Background(), req, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Quantity)

	second, err := service.AddToCart(context.Background(), req, userID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Quantity)

	cart, err := service.GetCart(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "300 Crystals", cart.Items[0].PackageName)
}

func TestGetCartEmpty(t *testing.T) {
	pkg := testPackage()
	service := NewCartService(newFakeCartRepository(pkg), &fakeCatalogRepository{pkg: pkg})

	cart, err := service.GetCart(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestRemoveItemOwnership(t *testing.T) {
	pkg := testPackage()
	repo := newFakeCartRepository(pkg)
	service := NewCartService(repo, &fakeCatalogRepository{pkg: pkg})
	owner := uuid.NewString()

	item, err := service.AddToCart(context.Background(), domain.AddToCartRequest{
		TopupPackageID: pkg.ID.String(),
		Quantity:       1,
	}, owner)
	require.NoError(t, err)

	err = service.RemoveItem(context.Background(), uuid.NewString(), item.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	require.NoError(t, service.RemoveItem(context.Background(), owner, item.ID))

	err = service.RemoveItem(context.Background(), owner, item.ID)
	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)
}
