package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCommentService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	reader := createTestUser(t, db, "reader")
	article := createTestArticle(t, db, author.ID, "Kimchi Stew")

	comment, err := svc.Create(ctx, article.ID, reader.ID, "looks delicious")
	require.NoError(t, err)
	assert.Equal(t, reader.ID, comment.UserID)

	_, err = svc.Update(ctx, comment.ID, author.ID, "edited by someone else")
	assert.ErrorIs(t, err, ErrNotOwner)

	updated, err := svc.Update(ctx, comment.ID, reader.ID, "still looks delicious")
	require.NoError(t, err)
	assert.Equal(t, "still looks delicious", updated.Body)

	assert.ErrorIs(t, svc.Delete(ctx, comment.ID, author.ID), ErrNotOwner)
	require.NoError(t, svc.Delete(ctx, comment.ID, reader.ID))

	comments, err := svc.ListByArticle(ctx, article.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentsKeepCreationOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCommentService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	reader := createTestUser(t, db, "reader")
	article := createTestArticle(t, db, author.ID, "Kimchi Stew")

	bodies := []string{"first", "second", "third"}
	for _, body := range bodies {
		_, err := svc.Create(ctx, article.ID, reader.ID, body)
		require.NoError(t, err)
	}

	comments, err := svc.ListByArticle(ctx, article.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	for i, c := range comments {
		assert.Equal(t, bodies[i], c.Body)
	}
}

func TestCommentOnMissingArticle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCommentService(db)
	reader := createTestUser(t, db, "reader")

	_, err := svc.Create(context.Background(), uuid.New(), reader.ID, "hello")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ListByArticle(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
