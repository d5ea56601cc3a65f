package main

import (
	"context"
	"testing"

	"github.com/mytheresa/ecommerce-catalog/app/database/databasetest"
	"github.com/mytheresa/ecommerce-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	db := databasetest.New(t)

	require.NoError(t, seed(ctx, db, zap.NewNop()))

	cats, err := models.NewCategoriesRepository(db).GetAllCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, len(seedCatalog))

	groceries, err := models.NewGroceriesRepository(db).GetAllGroceries(ctx)
	require.NoError(t, err)
	assert.Len(t, groceries, 4)
	for _, g := range groceries {
		assert.NotEmpty(t, g.Category.Title, "grocery %s should load its category", g.ProductTag)
	}

	books, err := models.NewBooksRepository(db).GetAllBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, len(seedBooks))
	authors := map[string]string{}
	for _, b := range books {
		authors[b.Title] = b.Author
	}
	assert.Equal(t, models.DefaultAuthor, authors["Untitled Manuscript"])
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "migrate", "seed"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("env-file"))
}
