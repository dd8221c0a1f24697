// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/content-assistant/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndGet(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Save(types.Generation{
		Kind:    types.KindBroadcast,
		Niche:   "кофейня",
		Topic:   "новое меню",
		Content: "Текст поста.",
	})
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, types.KindBroadcast, got.Kind)
	assert.Equal(t, "кофейня", got.Niche)
	assert.Equal(t, "новое меню", got.Topic)
	assert.Equal(t, "Текст поста.", got.Content)
	assert.WithinDuration(t, time.Now().UTC(), got.CreatedAt, time.Minute)
}

func TestGetUnknownID(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(42)
	assert.ErrorContains(t, err, "not found")
}

func TestListNewestFirstWithKindFilter(t *testing.T) {
	store := newTestStore(t)

	for i, kind := range []types.GenerationKind{types.KindPlan, types.KindArticle, types.KindArticle} {
		_, err := store.Save(types.Generation{Kind: kind, Content: string(rune('a' + i))})
		require.NoError(t, err)
	}

	all, err := store.List("", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Content)
	assert.Equal(t, "a", all[2].Content)

	articles, err := store.List(types.KindArticle, 0)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	limited, err := store.List("", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "c", limited[0].Content)
}

func TestPlanTopicsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Save(types.Generation{Kind: types.KindPlan, Content: "[]"})
	require.NoError(t, err)
	require.NoError(t, store.SaveTopics(first, []string{"тема 1", "тема 2"}))

	second, err := store.Save(types.Generation{Kind: types.KindPlan, Content: "[]"})
	require.NoError(t, err)
	require.NoError(t, store.SaveTopics(second, []string{"тема 3"}))

	topics, err := store.RecentTopics(10)
	require.NoError(t, err)
	assert.Equal(t, []string{"тема 3", "тема 1", "тема 2"}, topics)

	capped, err := store.RecentTopics(2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	id, err := store.Save(types.Generation{Kind: types.KindLeadMagnet, Content: "# Гайд"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "# Гайд", got.Content)
}
