package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/mytheresa/ecommerce-catalog/app/api"
	"go.uber.org/zap"
)

// maxBodyBytes bounds the size of a GraphQL request document.
const maxBodyBytes = 1 << 20

// Request is the GraphQL-over-HTTP request body.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

type GraphQLHandler struct {
	schema graphql.Schema
	log    *zap.Logger
}

func NewGraphQLHandler(schema graphql.Schema, log *zap.Logger) *GraphQLHandler {
	return &GraphQLHandler{schema: schema, log: log}
}

// ServeHTTP executes one operation. GraphQL errors, including not found and
// validation failures, are reported in the "errors" member with status 200.
func (h *GraphQLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Query == "" {
		api.ErrorResponse(w, http.StatusBadRequest, "Missing query")
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})
	if result.HasErrors() {
		h.log.Debug("graphql errors",
			zap.String("operation", req.OperationName),
			zap.Int("count", len(result.Errors)),
			zap.String("requestID", api.GetRequestID(r.Context())),
		)
	}

	api.OKResponse(w, result)
}
