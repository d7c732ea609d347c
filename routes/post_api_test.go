package routes

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostCreateAPI(t *testing.T) {
	data := map[string]interface{}{
		"title":       "test",
		"description": "test",
		"tags":        []string{"tag"},
	}

	t.Run("returns 201", func(t *testing.T) {
		router, _ := setupTestServer(t)
		token := signToken(t, normalUser)

		rec := doRequest(t, router, http.MethodPost, "/api/post", token, data)

		require.Equal(t, http.StatusCreated, rec.Code)

		var post map[string]interface{}
		decodeBody(t, rec, &post)
		assert.Equal(t, "test", post["title"])
		assert.Equal(t, "test", post["description"])
		assert.Equal(t, "test", post["author"])
		assert.Equal(t, true, post["is_active"])
		assert.NotEmpty(t, post["id"])
	})

	t.Run("empty title returns 400", func(t *testing.T) {
		router, _ := setupTestServer(t)
		token := signToken(t, normalUser)

		rec := doRequest(t, router, http.MethodPost, "/api/post", token,
			map[string]interface{}{"title": ""})

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]map[string]string
		decodeBody(t, rec, &body)
		assert.Contains(t, body["errors"], "title")
	})

	t.Run("anonymous returns 401", func(t *testing.T) {
		router, _ := setupTestServer(t)

		rec := doRequest(t, router, http.MethodPost, "/api/post", "", data)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("sends a notification email", func(t *testing.T) {
		router, outbox := setupTestServer(t)
		token := signToken(t, normalUser)

		rec := doRequest(t, router, http.MethodPost, "/api/post", token, data)

		require.Equal(t, http.StatusCreated, rec.Code)
		messages := outbox.Messages()
		require.Len(t, messages, 1)
		assert.Equal(t, "Post created: test", messages[0].Subject)
		assert.Equal(t, normalUser.Email, messages[0].To)
		assert.Equal(t, testMailFrom, messages[0].From)
	})

	t.Run("mail failure never fails the request", func(t *testing.T) {
		router := setupTestServerWithMailer(t, failingMailer{})
		token := signToken(t, normalUser)

		rec := doRequest(t, router, http.MethodPost, "/api/post", token, data)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("author and slug in the body are ignored", func(t *testing.T) {
		router, _ := setupTestServer(t)
		token := signToken(t, normalUser)

		post := createPost(t, router, token, map[string]interface{}{
			"title":       "My Post",
			"description": "d",
			"author":      "someone else",
			"slug":        "client-slug",
		})

		assert.Equal(t, normalUser.Username, post["author"])
		assert.Equal(t, "my-post", post["slug"])
	})
}

func TestPostListAPI(t *testing.T) {
	t.Run("anonymous returns 401", func(t *testing.T) {
		router, _ := setupTestServer(t)

		rec := doRequest(t, router, http.MethodGet, "/api/post", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non staff sees only active posts", func(t *testing.T) {
		router, _ := setupTestServer(t)
		token := signToken(t, normalUser)
		createPost(t, router, token, map[string]interface{}{
			"title": "active", "description": "d",
		})
		createPost(t, router, token, map[string]interface{}{
			"title": "inactive", "description": "d", "is_active": false,
		})

		rec := doRequest(t, router, http.MethodGet, "/api/post", token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var page struct {
			Count   int                      `json:"count"`
			Results []map[string]interface{} `json:"results"`
		}
		decodeBody(t, rec, &page)
		assert.Equal(t, 1, page.Count)

		staffRec := doRequest(t, router, http.MethodGet, "/api/post", signToken(t, staffUser), nil)
		decodeBody(t, staffRec, &page)
		assert.Equal(t, 2, page.Count)
	})

	t.Run("list shape omits description", func(t *testing.T) {
		router, _ := setupTestServer(t)
		token := signToken(t, normalUser)
		createPost(t, router, token, map[string]interface{}{
			"title": "t", "description": "hidden in lists",
		})

		rec := doRequest(t, router, http.MethodGet, "/api/post", token, nil)

		var page struct {
			Results []map[string]interface{} `json:"results"`
		}
		decodeBody(t, rec, &page)
		require.Len(t, page.Results, 1)
		assert.NotContains(t, page.Results[0], "description")
		assert.Contains(t, page.Results[0], "comments_count")
		assert.Contains(t, page.Results[0], "slug")
	})

	t.Run("filters by tag label substring", func(t *testing.T) {
		router, _ := setupTestServer(t)
		token := signToken(t, normalUser)
		createPost(t, router, token, map[string]interface{}{
			"title": "go post", "description": "d", "tags": []string{"Golang"},
		})
		createPost(t, router, token, map[string]interface{}{
			"title": "py post", "description": "d", "tags": []string{"python"},
		})

		rec := doRequest(t, router, http.MethodGet, "/api/post?tags__name=golan", token, nil)

		var page struct {
			Count   int                      `json:"count"`
			Results []map[string]interface{} `json:"results"`
		}
		decodeBody(t, rec, &page)
		require.Equal(t, 1, page.Count)
		assert.Equal(t, "go post", page.Results[0]["title"])
	})

	t.Run("paginates with the links envelope", func(t *testing.T) {
		router, _ := setupTestServer(t)
		token := signToken(t, normalUser)
		for i := 0; i < 30; i++ {
			createPost(t, router, token, map[string]interface{}{
				"title": fmt.Sprintf("post %d", i), "description": "d",
			})
		}

		rec := doRequest(t, router, http.MethodGet, "/api/post", token, nil)

		var page struct {
			Links struct {
				Next     *string `json:"next"`
				Previous *string `json:"previous"`
			} `json:"links"`
			Count   int                      `json:"count"`
			Results []map[string]interface{} `json:"results"`
		}
		decodeBody(t, rec, &page)
		assert.Equal(t, 30, page.Count)
		assert.Len(t, page.Results, 25)
		require.NotNil(t, page.Links.Next)
		assert.Contains(t, *page.Links.Next, "page=2")
		assert.Nil(t, page.Links.Previous)

		rec = doRequest(t, router, http.MethodGet, "/api/post?page=2", token, nil)
		decodeBody(t, rec, &page)
		assert.Len(t, page.Results, 5)
		assert.Nil(t, page.Links.Next)
		require.NotNil(t, page.Links.Previous)
	})

	t.Run("page beyond range yields empty results", func(t *testing.T) {
		router, _ := setupTestServer(t)
		token := signToken(t, normalUser)
		createPost(t, router, token, map[string]interface{}{
			"title": "only", "description": "d",
		})

		rec := doRequest(t, router, http.MethodGet, "/api/post?page=99", token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var page struct {
			Count   int                      `json:"count"`
			Results []map[string]interface{} `json:"results"`
		}
		decodeBody(t, rec, &page)
		assert.Equal(t, 1, page.Count)
		assert.Empty(t, page.Results)
	})

	t.Run("unparseable page returns 400", func(t *testing.T) {
		router, _ := setupTestServer(t)
		token := signToken(t, normalUser)

		assert.Equal(t, http.StatusBadRequest,
			doRequest(t, router, http.MethodGet, "/api/post?page=abc", token, nil).Code)
		assert.Equal(t, http.StatusBadRequest,
			doRequest(t, router, http.MethodGet, "/api/post?page=0", token, nil).Code)
	})
}

func TestPostRetrieveAPI(t *testing.T) {
	t.Run("returns 200 for a visible post", func(t *testing.T) {
		router, _ := setupTestServer(t)
		token := signToken(t, normalUser)
		post := createPost(t, router, token, map[string]interface{}{
			"title": "test", "description": "test",
		})

		rec := doRequest(t, router, http.MethodGet, "/api/post/"+post["id"].(string), token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]interface{}
		decodeBody(t, rec, &body)
		assert.Equal(t, "test", body["description"])
	})

	t.Run("repeated retrieval is identical", func(t *testing.T) {
		router, _ := setupTestServer(t)
		token := signToken(t, normalUser)
		post := createPost(t, router, token, map[string]interface{}{
			"title": "stable", "description": "d",
		})

		first := doRequest(t, router, http.MethodGet, "/api/post/"+post["id"].(string), token, nil)
		second := doRequest(t, router, http.MethodGet, "/api/post/"+post["id"].(string), token, nil)

		assert.Equal(t, first.Body.String(), second.Body.String())
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		router, _ := setupTestServer(t)
		token := signToken(t, normalUser)

		rec := doRequest(t, router, http.MethodGet, "/api/post/123", token, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("inactive post is 404 for non staff, 200 for staff", func(t *testing.T) {
		router, _ := setupTestServer(t)
		token := signToken(t, normalUser)
		post := createPost(t, router, token, map[string]interface{}{
			"title": "hidden", "description": "d", "is_active": false,
		})
		path := "/api/post/" + post["id"].(string)

		assert.Equal(t, http.StatusNotFound, doRequest(t, router, http.MethodGet, path, token, nil).Code)
		assert.Equal(t, http.StatusOK, doRequest(t, router, http.MethodGet, path, signToken(t, staffUser), nil).Code)
	})

	t.Run("anonymous returns 401", func(t *testing.T) {
		router, _ := setupTestServer(t)

		rec := doRequest(t, router, http.MethodGet, "/api/post/123", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestPostUpdateAPI(t *testing.T) {
	t.Run("owner update round trips", func(t *testing.T) {
		router, _ := setupTestServer(t)
		token := signToken(t, normalUser)
		post := createPost(t, router, token, map[string]interface{}{
			"title": "test", "description": "test",
		})
		path := "/api/post/" + post["id"].(string)

		rec := doRequest(t, router, http.MethodPut, path, token, map[string]interface{}{
			"title": "updated", "description": "test",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]interface{}
		decodeBody(t, rec, &body)
		assert.Equal(t, "updated", body["title"])
		assert.Equal(t, post["slug"], body["slug"])

		getRec := doRequest(t, router, http.MethodGet, path, token, nil)
		decodeBody(t, getRec, &body)
		assert.Equal(t, "updated", body["title"])
	})

	t.Run("non staff cannot update another user's post", func(t *testing.T) {
		router, _ := setupTestServer(t)
		post := createPost(t, router, signToken(t, normalUser), map[string]interface{}{
			"title": "test", "description": "test",
		})

		rec := doRequest(t, router, http.MethodPut, "/api/post/"+post["id"].(string),
			signToken(t, otherUser), map[string]interface{}{
				"title": "hijacked", "description": "d",
			})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("staff can update another user's post", func(t *testing.T) {
		router, _ := setupTestServer(t)
		post := createPost(t, router, signToken(t, normalUser), map[string]interface{}{
			"title": "test", "description": "test",
		})

		rec := doRequest(t, router, http.MethodPut, "/api/post/"+post["id"].(string),
			signToken(t, staffUser), map[string]interface{}{
				"title": "updated", "description": "test",
			})

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]interface{}
		decodeBody(t, rec, &body)
		assert.Equal(t, normalUser.Username, body["author"])
	})

	t.Run("anonymous returns 401", func(t *testing.T) {
		router, _ := setupTestServer(t)

		rec := doRequest(t, router, http.MethodPut, "/api/post/123", "", map[string]interface{}{"title": ""})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestPostDeleteAPI(t *testing.T) {
	t.Run("owner delete returns 204 with empty body", func(t *testing.T) {
		router, _ := setupTestServer(t)
		token := signToken(t, normalUser)
		post := createPost(t, router, token, map[string]interface{}{
			"title": "test", "description": "test",
		})
		path := "/api/post/" + post["id"].(string)

		rec := doRequest(t, router, http.MethodDelete, path, token, nil)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())

		assert.Equal(t, http.StatusNotFound, doRequest(t, router, http.MethodGet, path, token, nil).Code)
	})

	t.Run("non staff cannot delete another user's post", func(t *testing.T) {
		router, _ := setupTestServer(t)
		post := createPost(t, router, signToken(t, staffUser), map[string]interface{}{
			"title": "test", "description": "test",
		})

		rec := doRequest(t, router, http.MethodDelete, "/api/post/"+post["id"].(string),
			signToken(t, normalUser), nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("staff can delete any post", func(t *testing.T) {
		router, _ := setupTestServer(t)
		post := createPost(t, router, signToken(t, normalUser), map[string]interface{}{
			"title": "test", "description": "test",
		})

		rec := doRequest(t, router, http.MethodDelete, "/api/post/"+post["id"].(string),
			signToken(t, staffUser), nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("delete cascades to comments", func(t *testing.T) {
		router, _ := setupTestServer(t)
		token := signToken(t, normalUser)
		post := createPost(t, router, token, map[string]interface{}{
			"title": "test", "description": "test",
		})
		postPath := "/api/post/" + post["id"].(string)

		rec := doRequest(t, router, http.MethodPost, postPath+"/comments", token,
			map[string]interface{}{"text": "a comment"})
		require.Equal(t, http.StatusCreated, rec.Code)

		require.Equal(t, http.StatusNoContent,
			doRequest(t, router, http.MethodDelete, postPath, token, nil).Code)

		assert.Equal(t, http.StatusNotFound,
			doRequest(t, router, http.MethodGet, postPath+"/comments", token, nil).Code)
	})
}

func TestPostCommentsCountAPI(t *testing.T) {
	router, _ := setupTestServer(t)
	token := signToken(t, normalUser)

	post := createPost(t, router, token, map[string]interface{}{
		"title": "commented", "description": "d",
	})
	path := "/api/post/" + post["id"].(string)

	for i := 0; i < 2; i++ {
		rec := doRequest(t, router, http.MethodPost, path+"/comments", token,
			map[string]interface{}{"text": "hi"})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(t, router, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	decodeBody(t, rec, &body)
	assert.Equal(t, float64(2), body["comments_count"])

	var page struct {
		Results []map[string]interface{} `json:"results"`
	}
	listRec := doRequest(t, router, http.MethodGet, "/api/post", token, nil)
	decodeBody(t, listRec, &page)
	require.Len(t, page.Results, 1)
	assert.Equal(t, float64(2), page.Results[0]["comments_count"])
}
