package recipeform

import (
	"strconv"
	"time"

	"github.com/foodblog/go-food-blog/models"
)

// DraftFromPost hydrates an editable draft from a fetched post, for the edit
// flow. Embedded {id, name} tag objects are reconstructed into the same
// option shape used by fresh selection, so toggling behaves identically
// between create and edit. An empty list from the server becomes one blank
// line to type into, matching a fresh draft.
func DraftFromPost(p models.Post) Draft {
	d := Draft{
		Title:           p.Title,
		Slug:            p.Slug,
		Excerpt:         p.Excerpt,
		Ingredients:     orBlankLine(p.Ingredients),
		Steps:           orBlankLine(p.Steps),
		CategoryID:      p.CategoryID,
		CuisineID:       p.CuisineID,
		DietaryTags:     models.OptionsFromRefs(p.DietaryTags),
		Tags:            models.OptionsFromRefs(p.Tags),
		PrepTime:        intField(p.PrepTimeMin),
		CookTime:        intField(p.CookTimeMin),
		Servings:        intField(p.Servings),
		Difficulty:      p.Difficulty,
		ImageName:       p.FeaturedImage,
		VideoURL:        p.VideoURL,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		Nutrition: Nutrition{
			Calories: p.NutritionCal.String(),
			Protein:  p.NutritionPro.String(),
			Fat:      p.NutritionFat.String(),
			Carbs:    p.NutritionCarbs.String(),
		},
	}

	if d.Difficulty == "" {
		d.Difficulty = DifficultyEasy
	}

	if t, err := time.Parse(time.RFC3339, p.PublishDate); err == nil {
		d.PublishDate = t
	} else {
		d.PublishDate = time.Now()
	}

	return d
}

func orBlankLine(items []string) []string {
	if len(items) == 0 {
		return []string{""}
	}
	return append([]string(nil), items...)
}

func intField(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
