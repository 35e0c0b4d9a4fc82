// Package serdser contains the request binding and error serialization
// helpers which are shared by all gin resources. Validation errors are
// reported as a map from field names to their messages and other
// errors are reported as {"detail": "..."} objects.
package serdser

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/momeni/autorent/pkg/core/cerr"
	"github.com/momeni/autorent/pkg/core/log"
)

func Bind(c *gin.Context, req any, b binding.Binding) bool {
	switch err := c.ShouldBindWith(req, b).(type) {
	case *validator.InvalidValidationError:
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": err.Error(),
		})
	case validator.ValidationErrors:
		var nameToErrs map[string][]string
		for _, ferr := range err {
			AddErr(&nameToErrs, ferr.Field(), ferr.Error())
		}
		c.JSON(http.StatusBadRequest, nameToErrs)
	default:
		if err == nil {
			return true
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
	}
	return false
}

func AddErr(errs *map[string][]string, name string, msgs ...string) {
	if (*errs) == nil {
		*errs = make(map[string][]string)
	}
	if elist, ok := (*errs)[name]; !ok {
		(*errs)[name] = msgs
	} else {
		(*errs)[name] = append(elist, msgs...)
	}
}

func Assert(errs *map[string][]string, ok bool, name string, msgs ...string) bool {
	if ok {
		return true
	}
	AddErr(errs, name, msgs...)
	return false
}

// SerErr reports err with the status code which it carries, or as an
// internal error (which is also logged) if it carries none.
func SerErr(c *gin.Context, err error) {
	var ce *cerr.Error
	if errors.As(err, &ce) {
		c.JSON(ce.HTTPStatusCode, gin.H{
			"detail": ce.Err.Error(),
		})
		return
	}
	log.Error(c, "request failed", log.Err("err", err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"detail": err.Error(),
	})
}

// SessionHeader carries the opaque catalog session identifier.
const SessionHeader = "X-Session-ID"

// SessionID returns the session identifier of the c request. If the
// request has no session and create is true, a new random identifier
// is generated. The returned identifier is echoed in the response
// headers (unless it is empty).
func SessionID(c *gin.Context, create bool) string {
	sid := strings.TrimSpace(c.GetHeader(SessionHeader))
	if sid == "" && create {
		sid = uuid.NewString()
	}
	if sid != "" {
		c.Header(SessionHeader, sid)
	}
	return sid
}

// Split returns the non-empty comma separated items of vs entries, so
// both of the ?k=a&k=b and ?k=a,b forms may be used for lists.
func Split(vs []string) []string {
	var items []string
	for _, v := range vs {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}
