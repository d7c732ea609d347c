package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/sulavmhrzn/BlogIt-API/app/dto"
	"github.com/sulavmhrzn/BlogIt-API/app/services"
)

// errInvalidPage marks a page parameter that is not a positive integer.
var errInvalidPage = fmt.Errorf("invalid page number")

// pageParam parses the page query parameter. An absent parameter means
// page one; anything that is not a positive integer is a client error.
func pageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, errInvalidPage
	}
	return page, nil
}

// pageLinks builds the next/previous links for the envelope, keeping
// the request's other query parameters intact.
func pageLinks(r *http.Request, page, count int) dto.PageLinks {
	links := dto.PageLinks{}
	if page*services.PageSize < count {
		next := pageURL(r, page+1)
		links.Next = &next
	}
	if page > 1 {
		prev := pageURL(r, page-1)
		links.Previous = &prev
	}
	return links
}

func pageURL(r *http.Request, page int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	u := *r.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	return fmt.Sprintf("%s://%s%s?%s", scheme, r.Host, u.Path, u.RawQuery)
}
