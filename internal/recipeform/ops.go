package recipeform

import (
	"path/filepath"
	"time"

	"github.com/foodblog/go-food-blog/models"
)

// Scalar field names accepted by SetField.
const (
	FieldTitle           = "title"
	FieldSlug            = "slug"
	FieldExcerpt         = "excerpt"
	FieldCategory        = "category"
	FieldCuisine         = "cuisine"
	FieldPrepTime        = "prepTime"
	FieldCookTime        = "cookTime"
	FieldServings        = "servings"
	FieldDifficulty      = "difficulty"
	FieldVideoURL        = "videoUrl"
	FieldMetaTitle       = "metaTitle"
	FieldMetaDescription = "metaDescription"
)

// Nutrition sub-field names accepted by SetNutrition.
const (
	NutritionCalories = "calories"
	NutritionProtein  = "protein"
	NutritionFat      = "fat"
	NutritionCarbs    = "carbs"
)

// SetField assigns a scalar field by name and clears any validation error
// recorded for it. Unknown names are a no-op.
func (d Draft) SetField(name, value string) Draft {
	out := d.clone()
	switch name {
	case FieldTitle:
		out.Title = value
	case FieldSlug:
		out.Slug = value
	case FieldExcerpt:
		out.Excerpt = value
	case FieldCategory:
		out.CategoryID = value
	case FieldCuisine:
		out.CuisineID = value
	case FieldPrepTime:
		out.PrepTime = value
	case FieldCookTime:
		out.CookTime = value
	case FieldServings:
		out.Servings = value
	case FieldDifficulty:
		out.Difficulty = value
	case FieldVideoURL:
		out.VideoURL = value
	case FieldMetaTitle:
		out.MetaTitle = value
	case FieldMetaDescription:
		out.MetaDescription = value
	default:
		return d
	}
	delete(out.Errors, name)
	return out
}

// SetNutrition assigns one nutrition sub-field. Unknown names are a no-op.
func (d Draft) SetNutrition(name, value string) Draft {
	out := d.clone()
	switch name {
	case NutritionCalories:
		out.Nutrition.Calories = value
	case NutritionProtein:
		out.Nutrition.Protein = value
	case NutritionFat:
		out.Nutrition.Fat = value
	case NutritionCarbs:
		out.Nutrition.Carbs = value
	default:
		return d
	}
	delete(out.Errors, "nutrition")
	return out
}

// InsertListItem appends value to the named list. Unknown list names are a
// no-op.
func (d Draft) InsertListItem(list, value string) Draft {
	out := d.clone()
	switch list {
	case ListIngredients:
		out.Ingredients = append(out.Ingredients, value)
	case ListSteps:
		out.Steps = append(out.Steps, value)
	default:
		return d
	}
	delete(out.Errors, list)
	return out
}

// UpdateListItem replaces the entry at index in the named list. Out-of-bounds
// indices are a no-op, never a panic.
func (d Draft) UpdateListItem(list string, index int, value string) Draft {
	out := d.clone()
	items := out.listFor(list)
	if items == nil || index < 0 || index >= len(items) {
		return d
	}
	items[index] = value
	delete(out.Errors, list)
	return out
}

// RemoveListItem deletes the entry at index in the named list. Removing the
// last remaining item is permitted; an empty list is a validation failure,
// not a structural error. Out-of-bounds indices are a no-op.
func (d Draft) RemoveListItem(list string, index int) Draft {
	out := d.clone()
	items := out.listFor(list)
	if items == nil || index < 0 || index >= len(items) {
		return d
	}
	trimmed := append(items[:index:index], items[index+1:]...)
	switch list {
	case ListIngredients:
		out.Ingredients = trimmed
	case ListSteps:
		out.Steps = trimmed
	}
	delete(out.Errors, list)
	return out
}

// ToggleTag adds opt to the named set when absent (by Value) and removes it
// when present. Unknown set names are a no-op.
func (d Draft) ToggleTag(set string, opt models.Option) Draft {
	out := d.clone()
	switch set {
	case SetDietaryTags:
		out.DietaryTags = toggle(out.DietaryTags, opt)
	case SetTags:
		out.Tags = toggle(out.Tags, opt)
	default:
		return d
	}
	return out
}

// SetImage replaces any pending attachment with the file at path and derives
// a display name from it. The previously stored server-side image is
// untouched until a submission succeeds.
func (d Draft) SetImage(path string) Draft {
	out := d.clone()
	out.ImagePath = path
	out.ImageName = filepath.Base(path)
	return out
}

// SetPublishDate assigns the publish instant.
func (d Draft) SetPublishDate(t time.Time) Draft {
	out := d.clone()
	out.PublishDate = t
	return out
}

func (d *Draft) listFor(list string) []string {
	switch list {
	case ListIngredients:
		return d.Ingredients
	case ListSteps:
		return d.Steps
	}
	return nil
}

func toggle(set []models.Option, opt models.Option) []models.Option {
	for i, existing := range set {
		if existing.Value == opt.Value {
			return append(set[:i:i], set[i+1:]...)
		}
	}
	return append(set, opt)
}
