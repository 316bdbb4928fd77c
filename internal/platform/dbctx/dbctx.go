// Package dbctx carries the per-operation transaction handle through
// aggregate write paths.
package dbctx

import (
	"context"

	"gorm.io/gorm"
)

type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}
