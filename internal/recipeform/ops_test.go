package recipeform

import (
	"testing"

	"github.com/foodblog/go-food-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsWithBlankLines(t *testing.T) {
	d := New()

	assert.Equal(t, []string{""}, d.Ingredients)
	assert.Equal(t, []string{""}, d.Steps)
	assert.Equal(t, DifficultyEasy, d.Difficulty)
	assert.False(t, d.PublishDate.IsZero())
}

func TestSetField_ClearsFieldError(t *testing.T) {
	d := New().WithErrors(map[string]string{FieldTitle: "Title is required"})

	d = d.SetField(FieldTitle, "Pad Thai")

	assert.Equal(t, "Pad Thai", d.Title)
	assert.NotContains(t, d.Errors, FieldTitle)
}

func TestSetField_UnknownNameIsNoOp(t *testing.T) {
	d := New().SetField(FieldTitle, "Pad Thai")

	same := d.SetField("bogus", "x")

	assert.Equal(t, d, same)
}

func TestSetField_DoesNotMutateReceiver(t *testing.T) {
	before := New().SetField(FieldTitle, "Original")

	_ = before.SetField(FieldTitle, "Changed")

	assert.Equal(t, "Original", before.Title)
}

func TestListOps(t *testing.T) {
	d := New().
		UpdateListItem(ListIngredients, 0, "2 eggs").
		InsertListItem(ListIngredients, "100g flour").
		InsertListItem(ListIngredients, "salt")

	require.Equal(t, []string{"2 eggs", "100g flour", "salt"}, d.Ingredients)

	d = d.RemoveListItem(ListIngredients, 1)
	assert.Equal(t, []string{"2 eggs", "salt"}, d.Ingredients)
}

func TestUpdateListItem_OutOfBoundsIsNoOp(t *testing.T) {
	d := New()

	assert.Equal(t, d, d.UpdateListItem(ListIngredients, 5, "x"))
	assert.Equal(t, d, d.UpdateListItem(ListIngredients, -1, "x"))
	assert.Equal(t, d, d.UpdateListItem("bogus", 0, "x"))
}

func TestRemoveListItem_LastItemLeavesEmptyList(t *testing.T) {
	d := New()
	require.Len(t, d.Ingredients, 1)

	d = d.RemoveListItem(ListIngredients, 0)

	assert.Empty(t, d.Ingredients)

	// Structurally fine, but no longer submittable.
	errs := d.Validate()
	assert.Contains(t, errs, ListIngredients)
}

func TestRemoveListItem_DoesNotShareBackingArray(t *testing.T) {
	d := New().
		UpdateListItem(ListSteps, 0, "mix").
		InsertListItem(ListSteps, "bake").
		InsertListItem(ListSteps, "serve")

	removed := d.RemoveListItem(ListSteps, 0)
	removed = removed.UpdateListItem(ListSteps, 0, "rest")

	assert.Equal(t, []string{"mix", "bake", "serve"}, d.Steps)
	assert.Equal(t, []string{"rest", "serve"}, removed.Steps)
}

func TestToggleTag_AddsThenRemoves(t *testing.T) {
	vegan := models.Option{Value: "t1", Label: "Vegan"}
	spicy := models.Option{Value: "t2", Label: "Spicy"}

	d := New().ToggleTag(SetTags, vegan).ToggleTag(SetTags, spicy)
	require.Equal(t, []models.Option{vegan, spicy}, d.Tags)

	// Toggling by value alone removes, whatever the label says.
	d = d.ToggleTag(SetTags, models.Option{Value: "t1", Label: "renamed"})
	assert.Equal(t, []models.Option{spicy}, d.Tags)
}

func TestToggleTag_SetsAreIndependent(t *testing.T) {
	opt := models.Option{Value: "x", Label: "X"}

	d := New().ToggleTag(SetDietaryTags, opt)

	assert.Len(t, d.DietaryTags, 1)
	assert.Empty(t, d.Tags)
}

func TestSetImage_ReplacesPendingAttachment(t *testing.T) {
	d := New().SetImage("/tmp/first.jpg")
	d = d.SetImage("/tmp/photos/second.png")

	assert.Equal(t, "/tmp/photos/second.png", d.ImagePath)
	assert.Equal(t, "second.png", d.ImageName)
}
