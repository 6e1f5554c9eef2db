package recipeform

import (
	"strconv"
	"strings"
)

// Validate checks the draft against the submit-time rules and returns a
// field-name → message map. An empty map means the draft is submittable.
// Validation is pure: it does not record its verdict on the draft; callers
// decide whether to surface the result through WithErrors.
func (d Draft) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(d.Title) == "" {
		errs[FieldTitle] = "Title is required"
	}
	if strings.TrimSpace(d.Slug) == "" {
		errs[FieldSlug] = "Slug is required"
	}
	if strings.TrimSpace(d.Excerpt) == "" {
		errs[FieldExcerpt] = "Excerpt is required"
	}
	if strings.TrimSpace(d.CategoryID) == "" {
		errs[FieldCategory] = "Category is required"
	}

	if !isPositiveInt(d.PrepTime) {
		errs[FieldPrepTime] = "Prep time must be a number"
	}
	if !isPositiveInt(d.CookTime) {
		errs[FieldCookTime] = "Cook time must be a number"
	}
	if !isPositiveInt(d.Servings) {
		errs[FieldServings] = "Servings must be a number"
	}

	// The whole list is flagged, not individual entries; screens point the
	// user at the section.
	if !allFilled(d.Ingredients) {
		errs[ListIngredients] = "Fill or remove all ingredients"
	}
	if !allFilled(d.Steps) {
		errs[ListSteps] = "Fill or remove all steps"
	}

	if !nutritionNumeric(d.Nutrition) {
		errs["nutrition"] = "Nutrition values must be numbers"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// WithErrors returns a copy of the draft carrying the given validation
// verdict, for screens to render field-level messages.
func (d Draft) WithErrors(errs map[string]string) Draft {
	out := d.clone()
	out.Errors = nil
	if len(errs) > 0 {
		out.Errors = make(map[string]string, len(errs))
		for k, v := range errs {
			out.Errors[k] = v
		}
	}
	return out
}

func isPositiveInt(s string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil && n > 0
}

// allFilled reports whether the list has at least one entry and no entry is
// blank after trimming.
func allFilled(items []string) bool {
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if strings.TrimSpace(it) == "" {
			return false
		}
	}
	return true
}

func nutritionNumeric(n Nutrition) bool {
	for _, v := range []string{n.Calories, n.Protein, n.Fat, n.Carbs} {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return false
		}
	}
	return true
}
