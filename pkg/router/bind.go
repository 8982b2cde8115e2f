package router

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
)

// bind fills the request struct from the JSON body (for mutating methods) and
// from the route variables and query string, matched by json tag. Route
// variables only bind to string fields; id parsing stays in the handlers so a
// non-numeric id is reported as a validation error.
func bind(r *http.Request, vars map[string]string, req any) error {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		if r.Body != nil {
			err := json.NewDecoder(r.Body).Decode(req)
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
		}
	}

	value := reflect.ValueOf(req).Elem()
	if value.Kind() != reflect.Struct {
		return nil
	}

	for i := 0; i < value.NumField(); i++ {
		field := value.Type().Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}

		raw, ok := vars[name]
		if !ok && r.Method == http.MethodGet {
			if q := r.URL.Query().Get(name); q != "" {
				raw, ok = q, true
			}
		}

		if ok && value.Field(i).Kind() == reflect.String {
			value.Field(i).SetString(raw)
		}
	}

	return nil
}
