package cli

import (
	"github.com/julianstephens/remind/internal/storage"
)

// Context carries the per-run dependencies into command Run methods.
type Context struct {
	Store *storage.Store
}
