package services

import (
	"sync"

	"github.com/yeremiapane/fundraiser-shop/database"
	"github.com/yeremiapane/fundraiser-shop/utils"
	"golang.org/x/crypto/bcrypt"
)

// AdminGate is the shared-passphrase switch in front of the fulfillment and dashboard views.
// It is not a security boundary: one passphrase, no identities, no expiry.
type AdminGate struct {
	mu           sync.Mutex
	store        database.Store
	passwordHash []byte
	isAdmin      bool
}

// NewAdminGate keeps only a bcrypt hash of the passphrase in memory.
func NewAdminGate(store database.Store, password string, cost int) (*AdminGate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, err
	}
	g := &AdminGate{store: store, passwordHash: hash}
	database.LoadJSON(store, database.KeyIsAdmin, &g.isAdmin)
	return g, nil
}

// Login sets the persisted admin flag when password matches exactly.
func (g *AdminGate) Login(password string) bool {
	// bcrypt only looks at the first 72 bytes
	if len(password) > 72 {
		return false
	}
	if bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)) != nil {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.setLocked(true)
	return true
}

func (g *AdminGate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.setLocked(false)
}

func (g *AdminGate) IsAdmin() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.isAdmin
}

func (g *AdminGate) setLocked(v bool) {
	g.isAdmin = v
	if err := database.SaveJSON(g.store, database.KeyIsAdmin, v); err != nil {
		utils.ErrorLogger.WithField("key", database.KeyIsAdmin).Errorf("persist admin flag: %v", err)
	}
}
