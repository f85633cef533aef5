package storage

import (
	"context"
	"errors"

	"github.com/pizzaa/pizza-store/internal/models"
)

// MenuKey is the single key the whole menu is stored under.
const MenuKey = "pizza_menu"

// ErrStoreUnavailable wraps failures to reach the underlying store. Handlers
// answer these with a 5xx.
var ErrStoreUnavailable = errors.New("menu store unavailable")

// MenuStore persists the menu as one value under MenuKey. Load returns an
// empty menu when nothing has been stored yet; Save overwrites the previous
// value in full. There is no per-record storage and no versioning.
type MenuStore interface {
	Load(ctx context.Context) (models.Menu, error)
	Save(ctx context.Context, m models.Menu) error
}
