// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-keeper/internal/logger"
	"github.com/MKhiriev/go-study-keeper/models"
)

const testDebounce = 30 * time.Millisecond

func newQuizEngine(local *fakeLocalStore, remote *fakeRemoteStore) *CollectionEngine[models.Quiz] {
	return NewCollectionEngine[models.Quiz](
		models.CollectionQuizzes, local, remote, testDebounce, logger.Nop(),
	).WithExclude(func(q models.Quiz) bool {
		return q.ID == models.DefaultQuizID || q.IsDefault
	})
}

func TestCollectionEngine_StaysIdleUntilEnabled(t *testing.T) {
	local := newFakeLocalStore()
	remote := newFakeRemoteStore()
	engine := newQuizEngine(local, remote)
	defer engine.Close()

	engine.NotifyLocalChange(context.Background())
	time.Sleep(3 * testDebounce)

	assert.Equal(t, StateIdle, engine.State())
	assert.Zero(t, remote.batchWriteCount())
	assert.Zero(t, remote.setMetaCount())
}

func TestCollectionEngine_InitialLoadMergesRemoteWins(t *testing.T) {
	local := newFakeLocalStore()
	require.NoError(t, local.ReplaceCollection(context.Background(), models.CollectionQuizzes, []models.Document{
		mustDoc(t, quiz("a", "local A")),
		mustDoc(t, quiz("b", "local B")),
	}))

	remote := newFakeRemoteStore()
	remote.collections[models.CollectionQuizzes] = []models.Document{
		mustDoc(t, quiz("b", "remote B")),
		mustDoc(t, quiz("c", "remote C")),
	}

	engine := newQuizEngine(local, remote)
	defer engine.Close()

	engine.Enable(context.Background())
	waitFor(t, func() bool { return engine.State() == StateListening }, "initial load")

	docs, err := local.GetCollection(context.Background(), models.CollectionQuizzes)
	require.NoError(t, err)
	byID := decodeQuizzes(t, docs)

	require.Len(t, byID, 3)
	assert.Equal(t, "remote B", byID["b"].Name)
	assert.Equal(t, "local A", byID["a"].Name)
	assert.Equal(t, "remote C", byID["c"].Name)
}

func TestCollectionEngine_EnableIsOneShot(t *testing.T) {
	local := newFakeLocalStore()
	remote := newFakeRemoteStore()
	engine := newQuizEngine(local, remote)
	defer engine.Close()

	engine.Enable(context.Background())
	engine.Enable(context.Background())
	waitFor(t, func() bool { return engine.State() == StateListening }, "initial load")

	// one merge means one local replace
	assert.Equal(t, 1, local.replaceCount(models.CollectionQuizzes))
}

func TestCollectionEngine_DebouncedPushCoalesces(t *testing.T) {
	local := newFakeLocalStore()
	remote := newFakeRemoteStore()
	engine := newQuizEngine(local, remote)
	defer engine.Close()

	engine.Enable(context.Background())
	waitFor(t, func() bool { return engine.State() == StateListening }, "initial load")

	ctx := context.Background()
	require.NoError(t, local.SaveDocument(ctx, models.CollectionQuizzes, mustDoc(t, quiz("a", "first edit"))))
	engine.NotifyLocalChange(ctx)
	require.NoError(t, local.SaveDocument(ctx, models.CollectionQuizzes, mustDoc(t, quiz("a", "second edit"))))
	engine.NotifyLocalChange(ctx)
	engine.NotifyLocalChange(ctx)

	waitFor(t, func() bool { return remote.batchWriteCount() == 1 }, "debounced push")
	time.Sleep(3 * testDebounce)

	// three notifications inside the quiet period collapse into one push
	require.Equal(t, 1, remote.batchWriteCount())
	batch := remote.lastBatch()
	require.Len(t, batch.Entries, 1)
	assert.Equal(t, models.CollectionQuizzes, batch.Entries[0].Collection)

	pushed := decodeQuizzes(t, []models.Document{batch.Entries[0].Document})
	assert.Equal(t, "second edit", pushed["a"].Name)
}

func TestCollectionEngine_NoPushWhenContentUnchanged(t *testing.T) {
	local := newFakeLocalStore()
	remote := newFakeRemoteStore()
	remote.collections[models.CollectionQuizzes] = []models.Document{mustDoc(t, quiz("a", "A"))}

	engine := newQuizEngine(local, remote)
	defer engine.Close()

	engine.Enable(context.Background())
	waitFor(t, func() bool { return engine.State() == StateListening }, "initial load")

	engine.NotifyLocalChange(context.Background())
	time.Sleep(3 * testDebounce)

	assert.Zero(t, remote.batchWriteCount())
}

func TestCollectionEngine_DefaultQuizNeverPushed(t *testing.T) {
	local := newFakeLocalStore()
	ctx := context.Background()
	require.NoError(t, local.ReplaceCollection(ctx, models.CollectionQuizzes, []models.Document{
		mustDoc(t, models.Quiz{ID: models.DefaultQuizID, Name: "seed", IsDefault: true}),
	}))

	remote := newFakeRemoteStore()
	engine := newQuizEngine(local, remote)
	defer engine.Close()

	engine.Enable(ctx)
	waitFor(t, func() bool { return engine.State() == StateListening }, "initial load")

	require.NoError(t, local.SaveDocument(ctx, models.CollectionQuizzes, mustDoc(t, quiz("a", "mine"))))
	engine.NotifyLocalChange(ctx)
	waitFor(t, func() bool { return remote.batchWriteCount() == 1 }, "push")

	batch := remote.lastBatch()
	require.Len(t, batch.Entries, 1)
	assert.Equal(t, "a", batch.Entries[0].Document.ID)
}

func TestCollectionEngine_AppliesRemoteSnapshot(t *testing.T) {
	local := newFakeLocalStore()
	remote := newFakeRemoteStore()
	engine := newQuizEngine(local, remote)
	defer engine.Close()

	engine.Enable(context.Background())
	waitFor(t, func() bool { return remote.subscription(models.CollectionQuizzes) != nil }, "subscription attach")

	remote.subscription(models.CollectionQuizzes).emit(models.SnapshotEvent{
		Collection: models.CollectionQuizzes,
		Documents:  []models.Document{mustDoc(t, quiz("z", "from another device"))},
	})

	waitFor(t, func() bool { return local.docCount(models.CollectionQuizzes) == 1 }, "snapshot applied")

	docs, err := local.GetCollection(context.Background(), models.CollectionQuizzes)
	require.NoError(t, err)
	assert.Equal(t, "from another device", decodeQuizzes(t, docs)["z"].Name)
}

func TestCollectionEngine_IgnoresEchoOfOwnPush(t *testing.T) {
	local := newFakeLocalStore()
	remote := newFakeRemoteStore()
	engine := newQuizEngine(local, remote)
	defer engine.Close()

	ctx := context.Background()
	engine.Enable(ctx)
	waitFor(t, func() bool { return remote.subscription(models.CollectionQuizzes) != nil }, "subscription attach")

	require.NoError(t, local.SaveDocument(ctx, models.CollectionQuizzes, mustDoc(t, quiz("a", "edited"))))
	engine.NotifyLocalChange(ctx)
	waitFor(t, func() bool { return remote.batchWriteCount() == 1 }, "push")

	replacesBefore := local.replaceCount(models.CollectionQuizzes)

	// the server echoes our own write back through the subscription
	remote.subscription(models.CollectionQuizzes).emit(models.SnapshotEvent{
		Collection: models.CollectionQuizzes,
		Documents:  []models.Document{mustDoc(t, quiz("a", "edited"))},
	})
	time.Sleep(3 * testDebounce)

	assert.Equal(t, replacesBefore, local.replaceCount(models.CollectionQuizzes))
}

func TestCollectionEngine_FailedPushRetriedOnNextNotify(t *testing.T) {
	local := newFakeLocalStore()
	remote := newFakeRemoteStore()
	engine := newQuizEngine(local, remote)
	defer engine.Close()

	ctx := context.Background()
	engine.Enable(ctx)
	waitFor(t, func() bool { return engine.State() == StateListening }, "initial load")

	remote.setBatchErr(assert.AnError)
	require.NoError(t, local.SaveDocument(ctx, models.CollectionQuizzes, mustDoc(t, quiz("a", "unsynced edit"))))
	engine.NotifyLocalChange(ctx)
	waitFor(t, func() bool { return remote.batchAttemptCount() == 1 }, "failed push attempt")
	require.Zero(t, remote.batchWriteCount())

	// the cloud recovers; the same still-unsynced content must go out on the
	// next notification, not be mistaken for already-pushed state
	remote.setBatchErr(nil)
	engine.NotifyLocalChange(ctx)
	waitFor(t, func() bool { return remote.batchWriteCount() == 1 }, "retried push")

	batch := remote.lastBatch()
	require.Len(t, batch.Entries, 1)
	pushed := decodeQuizzes(t, []models.Document{batch.Entries[0].Document})
	assert.Equal(t, "unsynced edit", pushed["a"].Name)
}

func TestCollectionEngine_CloseCancelsPendingPush(t *testing.T) {
	local := newFakeLocalStore()
	remote := newFakeRemoteStore()
	engine := newQuizEngine(local, remote)

	ctx := context.Background()
	engine.Enable(ctx)
	waitFor(t, func() bool { return engine.State() == StateListening }, "initial load")

	require.NoError(t, local.SaveDocument(ctx, models.CollectionQuizzes, mustDoc(t, quiz("a", "edited"))))
	engine.NotifyLocalChange(ctx)
	engine.Close()
	time.Sleep(3 * testDebounce)

	assert.Zero(t, remote.batchWriteCount())

	// idempotent
	engine.Close()
}

func TestCollectionEngine_NotifyBeforeLoadIsNoop(t *testing.T) {
	local := newFakeLocalStore()
	local.getErr = assert.AnError

	remote := newFakeRemoteStore()
	engine := newQuizEngine(local, remote)
	defer engine.Close()

	engine.Enable(context.Background())
	waitFor(t, func() bool { return engine.State() == StateIdle }, "load failure settles to idle")

	engine.NotifyLocalChange(context.Background())
	time.Sleep(3 * testDebounce)

	assert.Zero(t, remote.batchWriteCount())
}
