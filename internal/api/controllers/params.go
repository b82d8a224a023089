package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"wilayah/pkg/utils"
)

const maxMultipartMemory = 32 << 20

// parseID reads the :id path parameter. On failure it writes a 400 and
// returns false.
func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id: "+raw)
		return 0, false
	}
	return uint(id), true
}

// bind decodes a form or JSON body into req. On failure it writes a 400 and
// returns false.
func bind(c *gin.Context, req any) bool {
	if err := dropEmptyFormValues(c); err != nil {
		utils.HandleServiceError(c, utils.TranslateValidationError(err))
		return false
	}
	if err := c.ShouldBind(req); err != nil {
		utils.HandleServiceError(c, utils.TranslateValidationError(err))
		return false
	}
	return true
}

// dropEmptyFormValues treats `key=` in a form body as an absent key, so
// `required` rejects it instead of the form mapper decoding it as zero.
func dropEmptyFormValues(c *gin.Context) error {
	switch c.ContentType() {
	case binding.MIMEPOSTForm:
		if err := c.Request.ParseForm(); err != nil {
			return err
		}
	case binding.MIMEMultipartPOSTForm:
		if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return err
		}
		if c.Request.MultipartForm != nil {
			stripEmpty(c.Request.MultipartForm.Value)
		}
	default:
		return nil
	}
	stripEmpty(c.Request.Form)
	stripEmpty(c.Request.PostForm)
	return nil
}

func stripEmpty(values map[string][]string) {
	for key, vals := range values {
		kept := make([]string, 0, len(vals))
		for _, v := range vals {
			if v != "" {
				kept = append(kept, v)
			}
		}
		if len(kept) == 0 {
			delete(values, key)
		} else {
			values[key] = kept
		}
	}
}
