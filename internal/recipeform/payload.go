package recipeform

import (
	"encoding/json"
	"time"
)

// Wire field names for the create/update multipart body.
const (
	KeyUserID          = "userId"
	KeyTitle           = "title"
	KeySlug            = "slug"
	KeyExcerpt         = "excerpt"
	KeyIngredients     = "ingredients"
	KeySteps           = "steps"
	KeyCategoryID      = "categoryId"
	KeyCuisineID       = "cuisineId"
	KeyDietaryTags     = "dietaryTags"
	KeyTags            = "tags"
	KeyPrepTime        = "prepTime"
	KeyCookTime        = "cookTime"
	KeyServings        = "servings"
	KeyDifficulty      = "difficulty"
	KeyNutrition       = "nutrition"
	KeyPublishDate     = "publishDate"
	KeyFeaturedImage   = "featuredImage"
	KeyVideoURL        = "videoUrl"
	KeyMetaTitle       = "metaTitle"
	KeyMetaDescription = "metaDescription"
)

// Field is one form field of the submission body. Repeated keys carry the
// ordered list and tag set values.
type Field struct {
	Key   string
	Value string
}

// Payload is the wire form of a validated draft: ordered form fields plus an
// optional file attachment. The transport layer encodes it as multipart.
type Payload struct {
	Fields    []Field
	ImagePath string
	ImageName string
}

// Values returns every value recorded under key, in field order.
func (p Payload) Values(key string) []string {
	var out []string
	for _, f := range p.Fields {
		if f.Key == key {
			out = append(out, f.Value)
		}
	}
	return out
}

// Value returns the first value recorded under key, or an empty string.
func (p Payload) Value(key string) string {
	for _, f := range p.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

// SubmissionPayload maps the draft to its wire form deterministically:
// scalars pass through, ingredients and steps become repeated fields
// preserving order, tag sets become repeated reference-id fields, nutrition
// is one JSON-encoded sub-field, and the publish date is normalized to a UTC
// RFC 3339 instant. Absent optional fields are sent as empty strings; the
// backend treats empty and missing alike, and always sending the key keeps
// the body shape constant.
//
// The draft is never mutated; a payload is consumed exactly once per
// submission attempt.
func (d Draft) SubmissionPayload(userID string) Payload {
	fields := make([]Field, 0, 16+len(d.Ingredients)+len(d.Steps)+len(d.DietaryTags)+len(d.Tags))

	add := func(key, value string) {
		fields = append(fields, Field{Key: key, Value: value})
	}

	add(KeyUserID, userID)
	add(KeyTitle, d.Title)
	add(KeySlug, d.Slug)
	add(KeyExcerpt, d.Excerpt)
	for _, ing := range d.Ingredients {
		add(KeyIngredients, ing)
	}
	for _, step := range d.Steps {
		add(KeySteps, step)
	}
	add(KeyCategoryID, d.CategoryID)
	add(KeyCuisineID, d.CuisineID)
	for _, opt := range d.DietaryTags {
		add(KeyDietaryTags, opt.Value)
	}
	for _, opt := range d.Tags {
		add(KeyTags, opt.Value)
	}
	add(KeyPrepTime, d.PrepTime)
	add(KeyCookTime, d.CookTime)
	add(KeyServings, d.Servings)
	add(KeyDifficulty, d.Difficulty)

	nutrition, _ := json.Marshal(d.Nutrition)
	add(KeyNutrition, string(nutrition))

	publish := d.PublishDate
	if publish.IsZero() {
		publish = time.Now()
	}
	add(KeyPublishDate, publish.UTC().Format(time.RFC3339))

	add(KeyVideoURL, d.VideoURL)
	add(KeyMetaTitle, d.MetaTitle)
	add(KeyMetaDescription, d.MetaDescription)

	return Payload{
		Fields:    fields,
		ImagePath: d.ImagePath,
		ImageName: d.ImageName,
	}
}
