package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/fundraiser-shop/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	// every pooled connection would otherwise get its own empty :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db))
	return db
}

type failingStore struct{}

func (failingStore) Get(string) ([]byte, bool, error) { return nil, false, errors.New("disk on fire") }
func (failingStore) Set(string, []byte) error        { return errors.New("disk on fire") }

func testStoreContract(t *testing.T, s Store) {
	_, ok, err := s.Get(KeyOrders)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(KeyCartID, []byte(`"LW-123456"`)))
	require.NoError(t, s.Set(KeyCartID, []byte(`"LW-654321"`)))

	v, ok, err := s.Get(KeyCartID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"LW-654321"`, string(v))
}

func TestMemoryStore(t *testing.T) {
	testStoreContract(t, NewMemoryStore())
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	raw := []byte("true")
	require.NoError(t, s.Set(KeyIsAdmin, raw))
	raw[0] = 'x'

	v, _, _ := s.Get(KeyIsAdmin)
	assert.Equal(t, "true", string(v))
}

func TestGormStore(t *testing.T) {
	testStoreContract(t, NewGormStore(setupTestDB(t)))
}

func TestGormStoreSingleRowPerKey(t *testing.T) {
	db := setupTestDB(t)
	s := NewGormStore(db)

	require.NoError(t, s.Set(KeyDonationAmount, []byte("5")))
	require.NoError(t, s.Set(KeyDonationAmount, []byte("10")))

	var count int64
	require.NoError(t, db.Model(&models.KVRecord{}).Where("record_key = ?", KeyDonationAmount).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLoadAndSaveJSON(t *testing.T) {
	s := NewMemoryStore()

	items := []models.LineItem{{ProductID: "beet-shot", ProductName: "Beet Root Boost", Size: models.SevenShots, Quantity: 2}}
	require.NoError(t, SaveJSON(s, KeyCart, items))

	var got []models.LineItem
	assert.True(t, LoadJSON(s, KeyCart, &got))
	assert.Equal(t, items, got)

	raw, _, _ := s.Get(KeyCart)
	assert.JSONEq(t, `[{"productId":"beet-shot","productName":"Beet Root Boost","size":"7-Pack (2oz shots)","quantity":2}]`, string(raw))
}

func TestLoadJSONKeepsDefault(t *testing.T) {
	s := NewMemoryStore()
	donation := 0.0
	assert.False(t, LoadJSON(s, KeyDonationAmount, &donation))

	require.NoError(t, s.Set(KeyDonationAmount, []byte("not a number")))
	assert.False(t, LoadJSON(s, KeyDonationAmount, &donation))
	assert.Zero(t, donation)

	isAdmin := false
	assert.False(t, LoadJSON(failingStore{}, KeyIsAdmin, &isAdmin))
	assert.False(t, isAdmin)
}

func TestLoadJSONDiscardsPartialDecode(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Set(KeyOrders, []byte(`[{"id":"order-1","customerName":"Mele","totalPrice":"bad"}]`)))

	orders := []models.Order{}
	assert.False(t, LoadJSON(s, KeyOrders, &orders))
	assert.NotNil(t, orders)
	assert.Empty(t, orders)

	require.NoError(t, s.Set(KeyCart, []byte(`[{"productId":"beet-shot","quantity":2},{"productId":"beet-shot","quantity":"x"}]`)))
	items := []models.LineItem{}
	assert.False(t, LoadJSON(s, KeyCart, &items))
	assert.Empty(t, items)
}

func TestLoadJSONRejectsNonPointer(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Set(KeyIsAdmin, []byte("true")))

	assert.False(t, LoadJSON(s, KeyIsAdmin, false))
	var nilPtr *bool
	assert.False(t, LoadJSON(s, KeyIsAdmin, nilPtr))
}

func TestSaveJSONWrapsStoreError(t *testing.T) {
	err := SaveJSON(failingStore{}, KeyOrders, []models.Order{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write orders")
}
