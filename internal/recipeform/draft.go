package recipeform

import (
	"time"

	"github.com/foodblog/go-food-blog/models"
)

// Difficulty levels accepted by the backend.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Difficulties lists the levels in display order.
var Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

// List names accepted by the list operations.
const (
	ListIngredients = "ingredients"
	ListSteps       = "steps"
)

// Tag set names accepted by ToggleTag.
const (
	SetDietaryTags = "dietaryTags"
	SetTags        = "tags"
)

// Nutrition is the nested facts record. Values are kept as entered; each is
// optional and validated only for being numeric when non-empty.
type Nutrition struct {
	Calories string `json:"calories"`
	Protein  string `json:"protein"`
	Fat      string `json:"fat"`
	Carbs    string `json:"carbs"`
}

// Draft is the editable state of one recipe, for both the create and edit
// flows. Numeric fields are held as the raw text the user typed so the form
// can round-trip bad input back to the screen; Validate decides what parses.
//
// All operations on Draft are pure: they return a new value and never mutate
// the receiver, so a screen can keep the previous draft for comparison or
// rollback.
type Draft struct {
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt"`

	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`

	CategoryID string `json:"categoryId"`
	CuisineID  string `json:"cuisineId"`

	DietaryTags []models.Option `json:"dietaryTags"`
	Tags        []models.Option `json:"tags"`

	PrepTime string `json:"prepTime"`
	CookTime string `json:"cookTime"`
	Servings string `json:"servings"`

	Difficulty string    `json:"difficulty"`
	Nutrition  Nutrition `json:"nutrition"`

	PublishDate time.Time `json:"publishDate"`

	// ImagePath is the pending local attachment; ImageName is its display
	// name. Replacing the attachment discards the previous pending one but
	// never touches a previously stored server-side image.
	ImagePath string `json:"imagePath"`
	ImageName string `json:"imageName"`

	VideoURL        string `json:"videoUrl"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`

	// Errors holds the latest validation verdict, keyed by field name.
	// Field operations clear the entry for the field they touch.
	Errors map[string]string `json:"-"`
}

// New returns an empty draft: one blank ingredient and step line to type
// into, Easy difficulty, and a publish date of now.
func New() Draft {
	return Draft{
		Ingredients: []string{""},
		Steps:       []string{""},
		Difficulty:  DifficultyEasy,
		PublishDate: time.Now(),
	}
}

// clone deep-copies the draft so the pure operations can return a new value
// without sharing slices or maps with the receiver.
func (d Draft) clone() Draft {
	out := d
	out.Ingredients = append([]string(nil), d.Ingredients...)
	out.Steps = append([]string(nil), d.Steps...)
	out.DietaryTags = append([]models.Option(nil), d.DietaryTags...)
	out.Tags = append([]models.Option(nil), d.Tags...)
	if d.Errors != nil {
		out.Errors = make(map[string]string, len(d.Errors))
		for k, v := range d.Errors {
			out.Errors[k] = v
		}
	}
	return out
}
