// Package api embeds the OpenAPI contract of the shipdesk HTTP API.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var contractYAML []byte

// Contract is the parsed and validated OpenAPI document.
type Contract struct {
	doc  *openapi3.T
	json []byte
}

// Load parses the embedded document and validates it.
func Load(ctx context.Context) (*Contract, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(contractYAML)
	if err != nil {
		return nil, fmt.Errorf("parse openapi contract: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi contract: %w", err)
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal openapi contract: %w", err)
	}
	return &Contract{doc: doc, json: raw}, nil
}

// JSON is the contract rendered as JSON.
func (c *Contract) JSON() []byte {
	return c.json
}

// Version is info.version of the contract.
func (c *Contract) Version() string {
	return c.doc.Info.Version
}

// HasOperation reports whether the contract declares method on path.
func (c *Contract) HasOperation(method, path string) bool {
	item := c.doc.Paths.Find(path)
	return item != nil && item.GetOperation(method) != nil
}

// ReadDoc implements swag.Swagger so Swagger UI serves this contract.
func (c *Contract) ReadDoc() string {
	return string(c.json)
}

var registerOnce sync.Once

// RegisterSwagger publishes the contract under the default swag instance name.
func (c *Contract) RegisterSwagger() {
	registerOnce.Do(func() {
		swag.Register(swag.Name, c)
	})
}
