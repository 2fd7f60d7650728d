package tools

import (
	"github.com/Gun249/Winner-Bike/models"
)

// Registry is the static set of tools offered to the model. It holds no
// request state; request-scoped data reaches handlers through
// models.Tool_Context. Adding or removing a tool here requires no change
// to the orchestration loop.
type Registry struct {
	decls  []models.FunctionDeclaration
	byName map[string]models.FunctionDeclaration
}

// NewRegistry builds a registry from the given declarations. Later
// declarations with a duplicate name replace earlier ones.
func NewRegistry(decls ...models.FunctionDeclaration) *Registry {
	r := &Registry{
		decls:  make([]models.FunctionDeclaration, 0, len(decls)),
		byName: make(map[string]models.FunctionDeclaration, len(decls)),
	}
	for _, d := range decls {
		if _, exists := r.byName[d.Name]; !exists {
			r.decls = append(r.decls, d)
		}
		r.byName[d.Name] = d
	}
	return r
}

// Declarations returns the schema payload passed to the model on every
// completion call.
func (r *Registry) Declarations() []models.FunctionDeclaration {
	return r.decls
}

// Lookup resolves a tool by name.
func (r *Registry) Lookup(name string) (models.FunctionDeclaration, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// DefaultRegistry returns the standard tool set of the sales assistant.
func DefaultRegistry() *Registry {
	return NewRegistry(
		CheckStockTool(),
		KnowledgeSearchTool(),
		WebSearchTool(),
	)
}

// CheckStockTool returns the declaration for the inventory lookup tool.
func CheckStockTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        "check_stock",
		Description: "Check real-time stock and price. Use this for specific models OR to list all available inventory.",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"model_name": map[string]interface{}{
					"type":        "string",
					"description": "The specific model name (e.g. 'PCX 160'). IF user asks 'what models do you have?' or 'list all', pass the string 'ALL'.",
				},
			},
			Required: []string{"model_name"},
		},
		Handler: Check_Stock,
	}
}

// KnowledgeSearchTool returns the declaration for the knowledge-base tool.
func KnowledgeSearchTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        "knowledge_search",
		Description: "Retrieve technical specs, pros/cons, and FIND ALTERNATIVES if stock is empty.",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search keyword (e.g. 'PCX 160 specs', 'PCX 160 competitors').",
				},
				"mode": map[string]interface{}{
					"type":        "string",
					"description": "Retrieval strategy: 'global' for broad questions, 'local' for narrow factual lookups. Default: global.",
					"enum":        []string{"global", "local"},
				},
			},
			Required: []string{"query"},
		},
		Handler: Knowledge_Search,
	}
}

// WebSearchTool returns the declaration for the web search fallback tool.
func WebSearchTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        "web_search",
		Description: "Search the external web. Use ONLY when the knowledge base has no answer. Include the motorcycle model name in the query.",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query string",
				},
				"max_results": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (default: 5)",
				},
			},
			Required: []string{"query"},
		},
		Handler: Web_Search,
	}
}
