package entity

import (
	"context"

	"github.com/onepiece-lab/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&Affiliation{},
		&Character{},
		&User{},
		&Deck{},
	)
}
