package postgres

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepositoryAddKeepsSnapshotPriceOnRepeatAdd(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	userID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	lineID := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	line := &entity.CartLine{
		ProductID: 42,
		OptionIDs: entity.OptionSet{3, 7},
		Quantity:  2,
		Price:     6000,
	}

	// A colliding add merges the quantity but leaves the price column out of
	// the conflict update, so the row keeps the quote the shopper first saw.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "cart_lines" .* ON CONFLICT .* DO UPDATE SET "quantity"=cart_lines\.quantity \+ EXCLUDED\.quantity,"updated_at"=now\(\) RETURNING "id"`).
		WithArgs(userID, int64(42), line.OptionIDs.Key(), int32(2), int64(6000), false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(lineID))
	mock.ExpectCommit()

	err := repo.Add(ctx, entity.Identity{UserID: userID}, line)

	require.NoError(t, err)
	assert.Equal(t, lineID, line.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
