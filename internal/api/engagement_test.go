package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLikeRoundTrip(t *testing.T) {
	router, env := setupTestRouter(t)
	author, _ := env.createUserAndToken(t, "chef")
	_, token := env.createUserAndToken(t, "reader")
	article := env.createArticle(t, author, "Kimchi Stew")

	w := doJSON(t, router, "POST", "/api/v1/articles/"+article.ID.String()+"/like", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["liked"])

	w = doJSON(t, router, "POST", "/api/v1/articles/"+article.ID.String()+"/like", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["liked"])
}

func TestToggleLikeRequiresAuth(t *testing.T) {
	router, env := setupTestRouter(t)
	author, _ := env.createUserAndToken(t, "chef")
	article := env.createArticle(t, author, "Kimchi Stew")

	w := doJSON(t, router, "POST", "/api/v1/articles/"+article.ID.String()+"/like", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Bookmark, list, un-bookmark, list again: the second listing must be empty.
func TestBookmarkToggleClearsListing(t *testing.T) {
	router, env := setupTestRouter(t)
	author, _ := env.createUserAndToken(t, "chef")
	_, token := env.createUserAndToken(t, "reader")
	article := env.createArticle(t, author, "Kimchi Stew")

	w := doJSON(t, router, "POST", "/api/v1/articles/"+article.ID.String()+"/bookmark", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["bookmarked"])

	w = doJSON(t, router, "GET", "/api/v1/bookmarks", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["articles"], 1)

	w = doJSON(t, router, "POST", "/api/v1/articles/"+article.ID.String()+"/bookmark", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["bookmarked"])

	w = doJSON(t, router, "GET", "/api/v1/bookmarks", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["articles"], 0)
}

func TestToggleOnMissingArticleReturns404(t *testing.T) {
	router, env := setupTestRouter(t)
	_, token := env.createUserAndToken(t, "reader")

	w := doJSON(t, router, "POST", "/api/v1/articles/00000000-0000-0000-0000-000000000001/like", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
