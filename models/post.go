package models

import "encoding/json"

// TagRef is an embedded reference object inside a fetched post.
type TagRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Post is a recipe post as served by the posts endpoints. Field names follow
// the backend's snake_case wire format. PublishDate and the timestamps are
// kept as raw strings; the form model parses them where it needs real times.
type Post struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id,omitempty"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content,omitempty"`

	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`

	CategoryID string `json:"category_id"`
	Category   string `json:"category,omitempty"`
	CuisineID  string `json:"cuisine_id"`
	Cuisine    string `json:"cuisine,omitempty"`

	DietaryTags []TagRef `json:"dietary_tags"`
	Tags        []TagRef `json:"tags"`

	PrepTimeMin int    `json:"prep_time_min"`
	CookTimeMin int    `json:"cook_time_min"`
	Servings    int    `json:"servings"`
	Difficulty  string `json:"difficulty"`

	// The backend stores nutrition facts as loosely typed values; json.Number
	// accepts both numeric and quoted forms.
	NutritionCal   json.Number `json:"nutrition_cal,omitempty"`
	NutritionPro   json.Number `json:"nutrition_pro,omitempty"`
	NutritionFat   json.Number `json:"nutrition_fat,omitempty"`
	NutritionCarbs json.Number `json:"nutrition_carbs,omitempty"`

	PublishDate   string `json:"publish_date"`
	FeaturedImage string `json:"featured_image,omitempty"`
	VideoURL      string `json:"video_url,omitempty"`

	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
