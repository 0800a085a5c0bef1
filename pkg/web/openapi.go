package web

import (
	"log"
	"net/http"
	"reflect"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const openAPIVersion = "3.0.3"

type queryParam struct {
	Name        string
	Type        string
	Default     any
	Enum        []string
	Description string
}

type openAPIDocument struct {
	OpenAPI string                     `yaml:"openapi"`
	Info    openAPIInfo                `yaml:"info"`
	Paths   map[string]openAPIPathItem `yaml:"paths"`
}

type openAPIInfo struct {
	Title       string `yaml:"title"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
}

type openAPIPathItem struct {
	Get openAPIOperation `yaml:"get"`
}

type openAPIOperation struct {
	OperationID string                     `yaml:"operationId"`
	Summary     string                     `yaml:"summary"`
	Parameters  []openAPIParameter         `yaml:"parameters,omitempty"`
	Responses   map[string]openAPIResponse `yaml:"responses"`
}

type openAPIParameter struct {
	Name        string  `yaml:"name"`
	In          string  `yaml:"in"`
	Required    bool    `yaml:"required"`
	Description string  `yaml:"description,omitempty"`
	Schema      *schema `yaml:"schema"`
}

type openAPIResponse struct {
	Description string                      `yaml:"description"`
	Content     map[string]openAPIMediaType `yaml:"content,omitempty"`
}

type openAPIMediaType struct {
	Schema *schema `yaml:"schema"`
}

type schema struct {
	Type       string             `yaml:"type,omitempty"`
	Format     string             `yaml:"format,omitempty"`
	Default    any                `yaml:"default,omitempty"`
	Enum       []string           `yaml:"enum,omitempty"`
	Items      *schema            `yaml:"items,omitempty"`
	Properties map[string]*schema `yaml:"properties,omitempty"`
}

// OpenAPI describes the JSON API as an OpenAPI 3 document.
func OpenAPI(siteName string) ([]byte, error) {
	doc := openAPIDocument{
		OpenAPI: openAPIVersion,
		Info: openAPIInfo{
			Title:       siteName + " API",
			Version:     "1.0.0",
			Description: "Simulated network telemetry. Values are random and not measured.",
		},
		Paths: make(map[string]openAPIPathItem, len(apiRoutes)+1),
	}

	for _, rt := range apiRoutes {
		op := openAPIOperation{
			OperationID: rt.kind,
			Summary:     rt.summary,
			Responses: map[string]openAPIResponse{
				"200": {
					Description: rt.summary,
					Content: map[string]openAPIMediaType{
						"application/json": {Schema: schemaFor(reflect.TypeOf(rt.model))},
					},
				},
			},
		}

		for _, p := range rt.params {
			op.Parameters = append(op.Parameters, openAPIParameter{
				Name:        p.Name,
				In:          "query",
				Description: p.Description,
				Schema:      &schema{Type: p.Type, Default: p.Default, Enum: p.Enum},
			})
		}

		doc.Paths[rt.path] = openAPIPathItem{Get: op}
	}

	doc.Paths["/api/catalog/{category}"] = openAPIPathItem{Get: openAPIOperation{
		OperationID: "catalog-category",
		Summary:     "Reference material for one category",
		Parameters: []openAPIParameter{{
			Name:     "category",
			In:       "path",
			Required: true,
			Schema:   &schema{Type: "string"},
		}},
		Responses: map[string]openAPIResponse{
			"200": {Description: "Category contents", Content: map[string]openAPIMediaType{
				"application/json": {Schema: &schema{}},
			}},
			"404": {Description: "Unknown category"},
		},
	}}

	return yaml.Marshal(doc)
}

var timeType = reflect.TypeOf(time.Time{})

// schemaFor derives a schema from the JSON shape of t.
func schemaFor(t reflect.Type) *schema {
	if t == timeType {
		return &schema{Type: "string", Format: "date-time"}
	}

	switch t.Kind() {
	case reflect.Pointer:
		return schemaFor(t.Elem())
	case reflect.Bool:
		return &schema{Type: "boolean"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &schema{Type: "integer"}
	case reflect.Float32, reflect.Float64:
		return &schema{Type: "number"}
	case reflect.String:
		return &schema{Type: "string"}
	case reflect.Slice, reflect.Array:
		return &schema{Type: "array", Items: schemaFor(t.Elem())}
	case reflect.Struct:
		props := make(map[string]*schema, t.NumField())

		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}

			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				continue
			}

			if name == "" {
				name = f.Name
			}

			props[name] = schemaFor(f.Type)
		}

		return &schema{Type: "object", Properties: props}
	default:
		return &schema{}
	}
}

func (s *Server) getOpenAPI(w http.ResponseWriter, _ *http.Request) {
	body, err := OpenAPI(s.siteName)
	if err != nil {
		log.Printf("Error building OpenAPI document: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(body)
}
