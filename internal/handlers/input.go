package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jamar2101/Back-End-Artalis/internal/apperr"
)

// productForm is the untyped create/update payload. Admin clients send
// multipart forms (when uploading an image) or JSON; either way every value
// is handled as a string and coerced by one explicit rule per field:
//
//	name, description, category,
//	brand, size, concentration,
//	imagePath                    string, empty treated as absent
//	price                        decimal, required on create, rejected if unparseable
//	inStock                      integer, defaults to 0 on create, kept on bad update input
//	isFeatured                   the literal "true" (or JSON true) means featured
//	notes                        JSON-encoded structured value, rejected if malformed
type productForm struct {
	values map[string]string
}

var productFormFields = []string{
	"name", "description", "price", "category", "inStock",
	"isFeatured", "imagePath", "brand", "size", "concentration", "notes",
}

// bindProductForm reads the request body into a uniform string-keyed form.
// JSON scalars are rendered back to strings; JSON arrays/objects (the notes
// field) are re-encoded so the notes parse rule sees one representation.
func bindProductForm(c *gin.Context) (*productForm, error) {
	form := &productForm{values: make(map[string]string)}

	if c.ContentType() == "application/json" {
		body := make(map[string]interface{})
		if err := c.ShouldBindJSON(&body); err != nil {
			return nil, apperr.Validation("Format body tidak valid")
		}
		for _, field := range productFormFields {
			raw, ok := body[field]
			if !ok || raw == nil {
				continue
			}
			switch v := raw.(type) {
			case string:
				form.values[field] = v
			case float64:
				form.values[field] = strconv.FormatFloat(v, 'f', -1, 64)
			case bool:
				form.values[field] = strconv.FormatBool(v)
			default:
				encoded, err := json.Marshal(v)
				if err != nil {
					return nil, apperr.Validation("Format body tidak valid")
				}
				form.values[field] = string(encoded)
			}
		}
		return form, nil
	}

	for _, field := range productFormFields {
		if v, ok := c.GetPostForm(field); ok {
			form.values[field] = v
		}
	}
	return form, nil
}

// get returns the field value; "" means absent or empty, which the update
// rules treat the same way.
func (f *productForm) get(field string) string {
	return f.values[field]
}

// parseNotes decodes the notes field into its structured value. Malformed
// input is a client error, never a silent drop.
func (f *productForm) parseNotes() (interface{}, error) {
	raw := f.get("notes")
	if raw == "" {
		return nil, nil
	}
	var notes interface{}
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		return nil, apperr.Validation("Format notes parfum tidak valid")
	}
	return notes, nil
}
