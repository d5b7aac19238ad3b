// Package database holds the key-value persistence behind the storefront state.
package database

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/yeremiapane/fundraiser-shop/utils"
)

// Keys of the persisted state.
const (
	KeyOrders         = "orders"
	KeyCart           = "cart"
	KeyCartID         = "cartId"
	KeyDonationAmount = "donationAmount"
	KeyIsAdmin        = "isAdmin"
)

// Store is the injected key-value store. Values are opaque JSON documents.
type Store interface {
	// Get returns ok=false when the key has never been written.
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
}

// LoadJSON decodes key into dst, which must be a pointer. An absent key leaves dst untouched;
// a read or decode failure is logged and also leaves dst untouched, so callers pre-fill dst
// with the default.
func LoadJSON(s Store, key string, dst interface{}) bool {
	raw, ok, err := s.Get(key)
	if err != nil {
		utils.ErrorLogger.WithField("key", key).Errorf("read persisted state: %v", err)
		return false
	}
	if !ok {
		return false
	}

	// decode into a fresh value so a half-decoded document never reaches dst
	target := reflect.ValueOf(dst)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		utils.ErrorLogger.WithField("key", key).Errorf("decode persisted state: destination must be a non-nil pointer")
		return false
	}
	fresh := reflect.New(target.Elem().Type())
	if err := json.Unmarshal(raw, fresh.Interface()); err != nil {
		utils.ErrorLogger.WithField("key", key).Errorf("decode persisted state: %v", err)
		return false
	}
	target.Elem().Set(fresh.Elem())
	return true
}

// SaveJSON rewrites key with the JSON encoding of v.
func SaveJSON(s Store, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
