// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package serdser contains the (de)serialization helpers which are
// shared by the resource packages. All error responses have the same
// {"error": "message"} format.
package serdser

import (
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/momeni/clean-parking/pkg/core/cerr"
	"github.com/momeni/clean-parking/pkg/core/log"
)

// InternalErrorMessage replaces the message of the internal errors,
// so persistence details are only logged and not sent to clients.
const InternalErrorMessage = "internal error"

// ErrMalformedBody is reported when the request body is not a JSON
// object with the expected field types.
var ErrMalformedBody = errors.New("malformed JSON body")

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
}

// jsonTagName reports fields with their JSON names in the validation
// errors, so they match the names which are seen by clients.
func jsonTagName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// Bind decodes the JSON body of c into req and validates it. If the
// required fields are missing, a bad request response with the msg
// message is written and false is returned. The msg should name all
// required fields because only one message is reported.
func Bind(c *gin.Context, req any, msg string) bool {
	switch err := c.ShouldBindWith(req, binding.JSON).(type) {
	case nil:
		return true
	case *validator.InvalidValidationError:
		SerErr(c, cerr.Internal(err))
	case validator.ValidationErrors:
		fields := make([]string, 0, len(err))
		for _, ferr := range err {
			fields = append(fields, ferr.Field()+":"+ferr.Tag())
		}
		log.Debug(c, "request validation failed",
			slog.String("fields", strings.Join(fields, ",")),
		)
		Error(c, http.StatusBadRequest, msg)
	default:
		log.Debug(c, "request decoding failed", log.Err("err", err))
		Error(c, http.StatusBadRequest, ErrMalformedBody.Error())
	}
	return false
}

// ParseID parses the name path parameter as a positive integer ID.
// If it is not parsable, a response is written using the notFound
// error and false is returned.
func ParseID(c *gin.Context, name string, notFound error) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		SerErr(c, cerr.NotFound(notFound))
		return 0, false
	}
	return id, true
}

// Error writes the status response with msg as its error message.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// SerErr serializes err as an error response. The status code and
// message of cerr.Error instances are used, unless they are internal
// errors. Other errors are considered internal too. Internal errors
// are logged and reported with a fixed message.
func SerErr(c *gin.Context, err error) {
	var ce *cerr.Error
	if errors.As(err, &ce) && ce.Kind != cerr.KindInternal {
		Error(c, ce.HTTPStatusCode, ce.Err.Error())
		return
	}
	log.Error(c, "internal error", log.Err("err", err))
	Error(c, http.StatusInternalServerError, InternalErrorMessage)
}
