package cart

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func TestAddItemExistingCartIncrementsQuantity(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCartRepository(gdb)

	userID := uuid.New()
	cartID := uuid.New()
	packageID := uuid.New()
	itemID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	// The user already has a cart: the guarded insert hits the user_id
	// conflict and creates nothing.
	mock.ExpectQuery(`INSERT INTO "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	// The re-read must filter on user_id alone. The anchors reject a
	// query carrying the attempted insert's primary key, which would
	// never match the existing row.
	mock.ExpectQuery(`^SELECT \* FROM "carts" WHERE user_id = \$1 ORDER BY "carts"\."id" LIMIT \$2$`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "created_at", "updated_at"}).
			AddRow(cartID.String(), userID.String(), now, now))
	mock.ExpectQuery(`INSERT INTO "cart_items" .* ON CONFLICT \("cart_id","topup_package_id"\) DO UPDATE SET "quantity"=cart_items\.quantity \+ `).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(itemID.String()))
	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE cart_id = \$1 AND topup_package_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "topup_package_id", "quantity", "created_at", "updated_at"}).
			AddRow(itemID.String(), cartID.String(), packageID.String(), 2, now, now))
	mock.ExpectQuery(`SELECT \* FROM "topup_packages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "game_id", "package_name", "price", "currency"}).
			AddRow(packageID.String(), uuid.NewString(), "60 Crystals", 15000.0, "IDR"))
	mock.ExpectCommit()

	item, err := repo.AddItem(context.Background(), userID, packageID, 1)
	require.NoError(t, err)
	assert.Equal(t, cartID, item.CartID)
	assert.Equal(t, 2, item.Quantity)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddItemFirstAddCreatesCartAndItem(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCartRepository(gdb)

	userID := uuid.New()
	cartID := uuid.New()
	packageID := uuid.New()
	itemID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "carts" .* ON CONFLICT \("user_id"\) DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(cartID.String()))
	mock.ExpectQuery(`^SELECT \* FROM "carts" WHERE user_id = \$1 ORDER BY "carts"\."id" LIMIT \$2$`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "created_at", "updated_at"}).
			AddRow(cartID.String(), userID.String(), now, now))
	mock.ExpectQuery(`INSERT INTO "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(itemID.String()))
	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE cart_id = \$1 AND topup_package_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "topup_package_id", "quantity", "created_at", "updated_at"}).
			AddRow(itemID.String(), cartID.String(), packageID.String(), 1, now, now))
	mock.ExpectQuery(`SELECT \* FROM "topup_packages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "package_name", "price", "currency"}).
			AddRow(packageID.String(), "60 Crystals", 15000.0, "IDR"))
	mock.ExpectCommit()

	item, err := repo.AddItem(context.Background(), userID, packageID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, packageID, item.TopupPackageID)

	require.NoError(t, mock.ExpectationsWereMet())
}
