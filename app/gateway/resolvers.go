package gateway

import (
	"strconv"

	"github.com/graphql-go/graphql"
	"github.com/mytheresa/ecommerce-catalog/app/books"
	"github.com/mytheresa/ecommerce-catalog/app/categories"
	"github.com/mytheresa/ecommerce-catalog/models"
	"go.uber.org/zap"
)

type resolver struct {
	svc Services
	log *zap.Logger
}

// fail converts err to a gateway error, logging store and internal failures.
func (r *resolver) fail(p graphql.ResolveParams, err error) error {
	gErr := classify(err)
	if gErr.Code == CodeStoreUnavailable || gErr.Code == CodeInternal {
		r.log.Error("resolver failed",
			zap.String("field", p.Info.FieldName),
			zap.String("code", gErr.Code),
			zap.Error(err),
		)
	}
	return gErr
}

func pointers[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}

// --- Queries ---

func (r *resolver) categories(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.svc.Categories.List(p.Context)
	if err != nil {
		return nil, r.fail(p, err)
	}
	return pointers(list), nil
}

func (r *resolver) books(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.svc.Books.List(p.Context)
	if err != nil {
		return nil, r.fail(p, err)
	}
	return pointers(list), nil
}

func (r *resolver) groceries(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.svc.Groceries.List(p.Context)
	if err != nil {
		return nil, r.fail(p, err)
	}
	return pointers(list), nil
}

// --- Category mutations ---

func (r *resolver) createCategory(p graphql.ResolveParams) (interface{}, error) {
	title, _ := p.Args["title"].(string)
	category, err := r.svc.Categories.Create(p.Context, categories.CategoryInput{Title: title})
	if err != nil {
		return nil, r.fail(p, err)
	}
	return category, nil
}

func (r *resolver) updateCategory(p graphql.ResolveParams) (interface{}, error) {
	id, err := idArg(p)
	if err != nil {
		return nil, r.fail(p, err)
	}
	title, _ := p.Args["title"].(string)
	category, err := r.svc.Categories.Update(p.Context, id, categories.CategoryInput{Title: title})
	if err != nil {
		return nil, r.fail(p, err)
	}
	return category, nil
}

func (r *resolver) deleteCategory(p graphql.ResolveParams) (interface{}, error) {
	id, err := idArg(p)
	if err != nil {
		return nil, r.fail(p, err)
	}
	if err := r.svc.Categories.Delete(p.Context, id); err != nil {
		return nil, r.fail(p, err)
	}
	return nil, nil
}

// --- Book mutations ---

func (r *resolver) createBook(p graphql.ResolveParams) (interface{}, error) {
	in, _ := p.Args["input"].(map[string]interface{})
	book, err := r.svc.Books.Create(p.Context, books.CreateBookInput{
		Title:       optString(in, "title"),
		Author:      optString(in, "author"),
		ISBN:        optString(in, "isbn"),
		Pages:       optInt(in, "pages"),
		Price:       optFloat(in, "price"),
		Quantity:    optInt(in, "quantity"),
		Description: optString(in, "description"),
		Status:      optBool(in, "status"),
	})
	if err != nil {
		return nil, r.fail(p, err)
	}
	return book, nil
}

func (r *resolver) updateBook(p graphql.ResolveParams) (interface{}, error) {
	id, err := idArg(p)
	if err != nil {
		return nil, r.fail(p, err)
	}
	in, _ := p.Args["input"].(map[string]interface{})
	book, err := r.svc.Books.Update(p.Context, id, books.UpdateBookInput{
		Title:       optString(in, "title"),
		Author:      optString(in, "author"),
		ISBN:        optString(in, "isbn"),
		Pages:       optInt(in, "pages"),
		Price:       optFloat(in, "price"),
		Quantity:    optInt(in, "quantity"),
		Description: optString(in, "description"),
		Status:      optBool(in, "status"),
	})
	if err != nil {
		return nil, r.fail(p, err)
	}
	return book, nil
}

func (r *resolver) deleteBook(p graphql.ResolveParams) (interface{}, error) {
	id, err := idArg(p)
	if err != nil {
		return nil, r.fail(p, err)
	}
	if err := r.svc.Books.Delete(p.Context, id); err != nil {
		return nil, r.fail(p, err)
	}
	return nil, nil
}

// --- Arguments ---

func idArg(p graphql.ResolveParams) (uint, error) {
	raw, _ := p.Args["id"].(string)
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("id", "must be a positive integer")
	}
	return uint(id), nil
}

func optString(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

func optInt(m map[string]interface{}, key string) *int {
	if v, ok := m[key].(int); ok {
		return &v
	}
	return nil
}

func optFloat(m map[string]interface{}, key string) *float64 {
	switch v := m[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

func optBool(m map[string]interface{}, key string) *bool {
	if v, ok := m[key].(bool); ok {
		return &v
	}
	return nil
}
