package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rtu-kota/canteen-api/middleware"
	"github.com/rtu-kota/canteen-api/models"
	"github.com/rtu-kota/canteen-api/store"
)

// bindAndValidate decodes the JSON body into out and checks it against its schema.
// On failure it writes a 422 response and returns false.
func bindAndValidate(c *gin.Context, v *models.Validator, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": []models.FieldError{{
				Field:      "body",
				Constraint: "json",
				Message:    err.Error(),
			}},
		})
		return false
	}

	if err := v.Validate(out); err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": ve.Fields})
			return false
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return false
	}
	return true
}

// respondStoreError reports any persistence failure as a 500 carrying its message
func respondStoreError(c *gin.Context, action string, err error) {
	log.Printf("[%s] %s failed: %v", middleware.GetRequestID(c), action, err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
}

// publicDocuments replaces the store-native _id of each document with a string id
func publicDocuments(docs []store.Document) []store.Document {
	out := make([]store.Document, 0, len(docs))
	for _, doc := range docs {
		id := doc[store.IDField]
		delete(doc, store.IDField)
		doc["id"] = store.IDString(id)
		out = append(out, doc)
	}
	return out
}
