package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIngredientIsIdempotent(t *testing.T) {
	router, env := setupTestRouter(t)
	_, token := env.createUserAndToken(t, "chef")

	w := doJSON(t, router, "POST", "/api/v1/ingredients", token, map[string]interface{}{
		"name": "gochujang",
		"info": "fermented chili paste",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	first := decodeBody(t, w)
	assert.Equal(t, "fermented chili paste", first["info"])

	w = doJSON(t, router, "POST", "/api/v1/ingredients", token, map[string]interface{}{
		"name": "gochujang",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	second := decodeBody(t, w)
	assert.Equal(t, first["id"], second["id"])
}

func TestIngredientLinks(t *testing.T) {
	router, env := setupTestRouter(t)
	_, token := env.createUserAndToken(t, "chef")

	w := doJSON(t, router, "POST", "/api/v1/ingredients", token, map[string]interface{}{
		"name": "tofu",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, "POST", "/api/v1/ingredients/"+id+"/links", token, map[string]interface{}{
		"url": "https://shop.example.com/tofu",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/ingredients/"+id+"/links", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["links"], 1)
}

func TestDeleteIngredient(t *testing.T) {
	router, env := setupTestRouter(t)
	_, token := env.createUserAndToken(t, "chef")

	w := doJSON(t, router, "POST", "/api/v1/ingredients", token, map[string]interface{}{
		"name": "egg",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, "DELETE", "/api/v1/ingredients/"+id, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(t, router, "GET", "/api/v1/ingredients/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
