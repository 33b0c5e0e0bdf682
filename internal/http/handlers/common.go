package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "invalid payload", err.Error())
		return false
	}
	return true
}

// BindSparseJSON parses a sparse PATCH body into dst, rejecting any forbidden
// keys present in the raw payload. Presence has to be checked on the raw keys:
// struct binding would silently drop an attempt to change an immutable field.
func BindSparseJSON(c *gin.Context, dst any, forbidden ...string) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "empty body", nil)
		return false
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "unreadable body", nil)
		return false
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "invalid payload", err.Error())
		return false
	}
	for _, k := range forbidden {
		if _, ok := keys[k]; ok {
			respondError(c, http.StatusBadRequest, "immutable_field", "field cannot be changed: "+k, nil)
			return false
		}
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "invalid payload", err.Error())
		return false
	}
	return true
}
