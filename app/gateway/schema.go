// Package gateway exposes the catalog as a single GraphQL endpoint.
//
// The schema is built once at startup. Every object type is declared with an
// explicit field table mapping GraphQL fields to model fields.
package gateway

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/mytheresa/ecommerce-catalog/app/books"
	"github.com/mytheresa/ecommerce-catalog/app/categories"
	"github.com/mytheresa/ecommerce-catalog/models"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, input categories.CategoryInput) (*models.Category, error)
	Update(ctx context.Context, id uint, input categories.CategoryInput) (*models.Category, error)
	Delete(ctx context.Context, id uint) error
}

type BookService interface {
	List(ctx context.Context) ([]models.Book, error)
	Create(ctx context.Context, input books.CreateBookInput) (*models.Book, error)
	Update(ctx context.Context, id uint, input books.UpdateBookInput) (*models.Book, error)
	Delete(ctx context.Context, id uint) error
}

type GroceryService interface {
	List(ctx context.Context) ([]models.Grocery, error)
}

// Services are the backends the resolvers dispatch to.
type Services struct {
	Categories CategoryService
	Books      BookService
	Groceries  GroceryService
}

// DateScalar serialises dates as YYYY-MM-DD.
var DateScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Date",
	Description: "A calendar date in YYYY-MM-DD form.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case time.Time:
			return v.UTC().Format(dateLayout)
		case *time.Time:
			if v == nil {
				return nil
			}
			return v.UTC().Format(dateLayout)
		}
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		if s, ok := value.(string); ok {
			return parseDate(s)
		}
		return nil
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		if s, ok := valueAST.(*ast.StringValue); ok {
			return parseDate(s.Value)
		}
		return nil
	},
})

func parseDate(s string) interface{} {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return t
}

// field builds a field whose value is read from a *T source.
func field[T any](typ graphql.Output, get func(*T) interface{}) *graphql.Field {
	return &graphql.Field{
		Type: typ,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			src, ok := p.Source.(*T)
			if !ok {
				return nil, fmt.Errorf("unexpected source %T", p.Source)
			}
			return get(src), nil
		},
	}
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

var (
	nonNullID     = graphql.NewNonNull(graphql.ID)
	nonNullString = graphql.NewNonNull(graphql.String)
	nonNullInt    = graphql.NewNonNull(graphql.Int)
	nonNullFloat  = graphql.NewNonNull(graphql.Float)
	nonNullBool   = graphql.NewNonNull(graphql.Boolean)
	nonNullDate   = graphql.NewNonNull(DateScalar)
)

func newCategoryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.Fields{
			"id":    field(nonNullID, func(c *models.Category) interface{} { return formatID(c.ID) }),
			"title": field(nonNullString, func(c *models.Category) interface{} { return c.Title }),
		},
	})
}

func newBookType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Book",
		Fields: graphql.Fields{
			"id":          field(nonNullID, func(b *models.Book) interface{} { return formatID(b.ID) }),
			"title":       field(nonNullString, func(b *models.Book) interface{} { return b.Title }),
			"author":      field(nonNullString, func(b *models.Book) interface{} { return b.Author }),
			"isbn":        field(nonNullString, func(b *models.Book) interface{} { return b.ISBN }),
			"pages":       field(nonNullInt, func(b *models.Book) interface{} { return b.Pages }),
			"price":       field(nonNullFloat, func(b *models.Book) interface{} { return b.Price.InexactFloat64() }),
			"quantity":    field(nonNullInt, func(b *models.Book) interface{} { return b.Quantity }),
			"description": field(nonNullString, func(b *models.Book) interface{} { return b.Description }),
			"status":      field(nonNullBool, func(b *models.Book) interface{} { return b.Status }),
			"dateCreated": field(nonNullDate, func(b *models.Book) interface{} { return b.DateCreated }),
		},
	})
}

func newGroceryType(categoryType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Grocery",
		Fields: graphql.Fields{
			"productTag":  field(nonNullString, func(g *models.Grocery) interface{} { return g.ProductTag }),
			"name":        field(nonNullString, func(g *models.Grocery) interface{} { return g.Name }),
			"category":    field(graphql.NewNonNull(categoryType), func(g *models.Grocery) interface{} { return &g.Category }),
			"price":       field(nonNullFloat, func(g *models.Grocery) interface{} { return g.Price.InexactFloat64() }),
			"quantity":    field(nonNullInt, func(g *models.Grocery) interface{} { return g.Quantity }),
			"imageurl":    field(nonNullString, func(g *models.Grocery) interface{} { return g.ImageURL }),
			"status":      field(nonNullBool, func(g *models.Grocery) interface{} { return g.Status }),
			"dateCreated": field(nonNullDate, func(g *models.Grocery) interface{} { return g.DateCreated }),
		},
	})
}

func newCreateBookInputType() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateBookInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":       &graphql.InputObjectFieldConfig{Type: nonNullString},
			"author":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"isbn":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"pages":       &graphql.InputObjectFieldConfig{Type: nonNullInt},
			"price":       &graphql.InputObjectFieldConfig{Type: nonNullFloat},
			"quantity":    &graphql.InputObjectFieldConfig{Type: nonNullInt},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"status":      &graphql.InputObjectFieldConfig{Type: nonNullBool},
		},
	})
}

func newUpdateBookInputType() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateBookInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":       &graphql.InputObjectFieldConfig{Type: graphql.String},
			"author":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"isbn":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"pages":       &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"price":       &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"quantity":    &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"status":      &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		},
	})
}

// NewSchema builds the query and mutation surface over svc.
func NewSchema(svc Services, log *zap.Logger) (graphql.Schema, error) {
	r := &resolver{svc: svc, log: log}

	categoryType := newCategoryType()
	bookType := newBookType()
	groceryType := newGroceryType(categoryType)

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"categories": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(categoryType))),
				Resolve: r.categories,
			},
			"books": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(bookType))),
				Resolve: r.books,
			},
			"groceries": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(groceryType))),
				Resolve: r.groceries,
			},
		},
	})

	idArg := &graphql.ArgumentConfig{Type: nonNullID}
	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createCategory": &graphql.Field{
				Type: categoryType,
				Args: graphql.FieldConfigArgument{
					"title": &graphql.ArgumentConfig{Type: nonNullString},
				},
				Resolve: r.createCategory,
			},
			"updateCategory": &graphql.Field{
				Type: categoryType,
				Args: graphql.FieldConfigArgument{
					"id":    idArg,
					"title": &graphql.ArgumentConfig{Type: nonNullString},
				},
				Resolve: r.updateCategory,
			},
			"deleteCategory": &graphql.Field{
				Type:        graphql.Boolean,
				Description: "Deletes the category and its groceries. Always resolves to null.",
				Args:        graphql.FieldConfigArgument{"id": idArg},
				Resolve:     r.deleteCategory,
			},
			"createBook": &graphql.Field{
				Type: bookType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(newCreateBookInputType())},
				},
				Resolve: r.createBook,
			},
			"updateBook": &graphql.Field{
				Type: bookType,
				Args: graphql.FieldConfigArgument{
					"id":    idArg,
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(newUpdateBookInputType())},
				},
				Resolve: r.updateBook,
			},
			"deleteBook": &graphql.Field{
				Type:        graphql.Boolean,
				Description: "Deletes the book. Always resolves to null.",
				Args:        graphql.FieldConfigArgument{"id": idArg},
				Resolve:     r.deleteBook,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
		Types:    []graphql.Type{DateScalar},
	})
}
