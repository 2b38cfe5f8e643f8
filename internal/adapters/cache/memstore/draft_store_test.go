package memstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/changifyhq/changify-backend/internal/adapters/cache/memstore"
	"github.com/changifyhq/changify-backend/internal/apperrors"
	"github.com/changifyhq/changify-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewDraftStore(time.Minute)
	session := domain.DraftSession{ActorID: "actor-1", Step: domain.DraftStepSelectFrom}

	require.NoError(t, store.Put(ctx, session))

	got, err := store.Get(ctx, "actor-1")
	require.NoError(t, err)
	assert.Equal(t, session, *got)

	require.NoError(t, store.Delete(ctx, "actor-1"))
	_, err = store.Get(ctx, "actor-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDraftStore_PutReplacesExisting(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewDraftStore(time.Minute)

	require.NoError(t, store.Put(ctx, domain.DraftSession{ActorID: "actor-1", Step: domain.DraftStepSelectFrom}))
	require.NoError(t, store.Put(ctx, domain.DraftSession{ActorID: "actor-1", Step: domain.DraftStepEnterAmount}))

	got, err := store.Get(ctx, "actor-1")
	require.NoError(t, err)
	assert.Equal(t, domain.DraftStepEnterAmount, got.Step)
}

func TestDraftStore_ExpiredSessionIsGone(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewDraftStore(time.Millisecond)

	require.NoError(t, store.Put(ctx, domain.DraftSession{ActorID: "actor-1"}))
	time.Sleep(5 * time.Millisecond)

	_, err := store.Get(ctx, "actor-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDraftStore_DeleteMissingIsNoError(t *testing.T) {
	store := memstore.NewDraftStore(time.Minute)
	assert.NoError(t, store.Delete(context.Background(), "nobody"))
}
