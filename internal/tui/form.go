package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/foodblog/go-food-blog/internal/recipeform"
	"github.com/foodblog/go-food-blog/internal/service"
	"github.com/foodblog/go-food-blog/models"
)

const (
	formDateLayout = "2006-01-02 15:04"
	autosaveEvery  = 10 * time.Second
)

type formRowKind int

const (
	rowText formRowKind = iota
	rowListItem
	rowSelect
	rowTagSet
	rowNutrition
	rowDate
	rowImage
)

// formRow is one focusable line of the authoring form. Text-like rows carry a
// textinput; select and tag rows navigate their options with left/right.
type formRow struct {
	kind   formRowKind
	name   string
	index  int
	label  string
	input  textinput.Model
	optIdx int
}

// formModel is the recipe authoring screen, shared by the create and edit
// flows. The draft is the authoritative state for tag sets, selects, and the
// attachment; text rows are folded back into it at every sync point.
type formModel struct {
	rows  []formRow
	focus int

	postID  string
	draft   recipeform.Draft
	lookups service.FormLookups

	errors     map[string]string
	submitting bool
	spinner    spinner.Model
	status     string

	resumePrompt bool
	resumeDraft  recipeform.Draft
	resumeAt     time.Time
}

func newFormModel(postID string) formModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := formModel{
		postID:  postID,
		draft:   recipeform.New(),
		spinner: s,
	}
	m.rows = buildFormRows(m.draft, m.lookups)
	m.focusRow(0)
	return m
}

func (m formModel) editing() bool {
	return m.postID != ""
}

func (m formModel) title() string {
	if m.editing() {
		return "Edit recipe"
	}
	return "New recipe"
}

// setDraft replaces the draft and rebuilds the rows from it.
func (m *formModel) setDraft(d recipeform.Draft) {
	m.draft = d
	m.rows = buildFormRows(d, m.lookups)
	if m.focus >= len(m.rows) {
		m.focus = len(m.rows) - 1
	}
	m.focusRow(m.focus)
}

// setLookups installs the reference lists and rebuilds, preserving typed
// values by syncing the rows into the draft first.
func (m *formModel) setLookups(lookups service.FormLookups) {
	m.draft = m.syncedDraft()
	m.lookups = lookups
	m.rows = buildFormRows(m.draft, lookups)
	m.focusRow(m.focus)
}

func (m *formModel) focusRow(i int) {
	if len(m.rows) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(m.rows) {
		i = len(m.rows) - 1
	}
	for j := range m.rows {
		m.rows[j].input.Blur()
	}
	m.focus = i
	m.rows[i].input.Focus()
}

func (m *formModel) focusNext() {
	m.focusRow((m.focus + 1) % len(m.rows))
}

func (m *formModel) focusPrev() {
	m.focusRow((m.focus - 1 + len(m.rows)) % len(m.rows))
}

// syncedDraft folds every text row back into the draft. Select and tag rows
// write through immediately on keypress and need no folding.
func (m formModel) syncedDraft() recipeform.Draft {
	d := m.draft
	for _, r := range m.rows {
		switch r.kind {
		case rowText:
			d = d.SetField(r.name, r.input.Value())
		case rowListItem:
			d = d.UpdateListItem(r.name, r.index, r.input.Value())
		case rowNutrition:
			d = d.SetNutrition(r.name, r.input.Value())
		case rowDate:
			if t, err := time.Parse(formDateLayout, strings.TrimSpace(r.input.Value())); err == nil {
				d = d.SetPublishDate(t)
			}
		case rowImage:
			if v := strings.TrimSpace(r.input.Value()); v != "" && v != d.ImagePath {
				d = d.SetImage(v)
			}
		}
	}
	return d
}

func buildFormRows(d recipeform.Draft, lookups service.FormLookups) []formRow {
	var rows []formRow

	text := func(name, label, value string, width int) {
		in := textinput.New()
		in.CharLimit = 500
		in.Width = width
		in.SetValue(value)
		rows = append(rows, formRow{kind: rowText, name: name, label: label, input: in})
	}

	text(recipeform.FieldTitle, "Title", d.Title, 50)
	text(recipeform.FieldSlug, "Slug", d.Slug, 50)
	text(recipeform.FieldExcerpt, "Excerpt", d.Excerpt, 60)

	for i, ing := range d.Ingredients {
		in := textinput.New()
		in.CharLimit = 200
		in.Width = 50
		in.SetValue(ing)
		rows = append(rows, formRow{kind: rowListItem, name: recipeform.ListIngredients, index: i, label: fmt.Sprintf("Ingredient %d", i+1), input: in})
	}
	for i, step := range d.Steps {
		in := textinput.New()
		in.CharLimit = 500
		in.Width = 60
		in.SetValue(step)
		rows = append(rows, formRow{kind: rowListItem, name: recipeform.ListSteps, index: i, label: fmt.Sprintf("Step %d", i+1), input: in})
	}

	rows = append(rows, formRow{
		kind: rowSelect, name: recipeform.FieldCategory, label: "Category",
		optIdx: optionIndex(lookups.Categories, d.CategoryID),
	})
	rows = append(rows, formRow{
		kind: rowSelect, name: recipeform.FieldCuisine, label: "Cuisine",
		optIdx: optionIndex(lookups.Cuisines, d.CuisineID),
	})
	rows = append(rows, formRow{kind: rowTagSet, name: recipeform.SetDietaryTags, label: "Dietary"})
	rows = append(rows, formRow{kind: rowTagSet, name: recipeform.SetTags, label: "Tags"})

	text(recipeform.FieldPrepTime, "Prep (min)", d.PrepTime, 10)
	text(recipeform.FieldCookTime, "Cook (min)", d.CookTime, 10)
	text(recipeform.FieldServings, "Servings", d.Servings, 10)

	rows = append(rows, formRow{
		kind: rowSelect, name: recipeform.FieldDifficulty, label: "Difficulty",
		optIdx: difficultyIndex(d.Difficulty),
	})

	nutrition := func(name, label, value string) {
		in := textinput.New()
		in.CharLimit = 10
		in.Width = 10
		in.SetValue(value)
		rows = append(rows, formRow{kind: rowNutrition, name: name, label: label, input: in})
	}
	nutrition(recipeform.NutritionCalories, "Calories", d.Nutrition.Calories)
	nutrition(recipeform.NutritionProtein, "Protein", d.Nutrition.Protein)
	nutrition(recipeform.NutritionFat, "Fat", d.Nutrition.Fat)
	nutrition(recipeform.NutritionCarbs, "Carbs", d.Nutrition.Carbs)

	date := textinput.New()
	date.CharLimit = 20
	date.Width = 20
	date.Placeholder = formDateLayout
	if !d.PublishDate.IsZero() {
		date.SetValue(d.PublishDate.Format(formDateLayout))
	}
	rows = append(rows, formRow{kind: rowDate, name: "publishDate", label: "Publish at", input: date})

	image := textinput.New()
	image.CharLimit = 300
	image.Width = 50
	image.Placeholder = "path to image file"
	image.SetValue(d.ImagePath)
	rows = append(rows, formRow{kind: rowImage, name: "featuredImage", label: "Image", input: image})

	text(recipeform.FieldVideoURL, "Video URL", d.VideoURL, 50)
	text(recipeform.FieldMetaTitle, "Meta title", d.MetaTitle, 50)
	text(recipeform.FieldMetaDescription, "Meta descr.", d.MetaDescription, 60)

	return rows
}

func optionIndex(items []models.LookupItem, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func difficultyIndex(level string) int {
	for i, d := range recipeform.Difficulties {
		if d == level {
			return i
		}
	}
	return 0
}

func (m formModel) selectOptions(name string) []models.Option {
	switch name {
	case recipeform.FieldCategory:
		return models.OptionsFromItems(m.lookups.Categories)
	case recipeform.FieldCuisine:
		return models.OptionsFromItems(m.lookups.Cuisines)
	case recipeform.FieldDifficulty:
		opts := make([]models.Option, len(recipeform.Difficulties))
		for i, d := range recipeform.Difficulties {
			opts[i] = models.Option{Value: d, Label: d}
		}
		return opts
	}
	return nil
}

func (m formModel) tagOptions(set string) []models.Option {
	switch set {
	case recipeform.SetDietaryTags:
		return models.OptionsFromItems(m.lookups.DietaryTags)
	case recipeform.SetTags:
		return models.OptionsFromItems(m.lookups.Tags)
	}
	return nil
}

func (m formModel) tagSelected(set, value string) bool {
	var chosen []models.Option
	switch set {
	case recipeform.SetDietaryTags:
		chosen = m.draft.DietaryTags
	case recipeform.SetTags:
		chosen = m.draft.Tags
	}
	for _, opt := range chosen {
		if opt.Value == value {
			return true
		}
	}
	return false
}

func (m formModel) View() string {
	if m.resumePrompt {
		content := fmt.Sprintf("Resume the draft saved at %s?\n\n", m.resumeAt.Local().Format("15:04:05"))
		content += "y resume    n start fresh"
		return overlayBoxStyle.Render(content)
	}

	header := m.title()
	if m.submitting {
		header += "  " + m.spinner.View()
	}
	out := titleStyle.Render(header) + "\n\n"

	for i, r := range m.rows {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		out += cursor + fmt.Sprintf("%-12s", r.label+":") + m.rowValue(r) + "\n"
		if msg := m.rowError(r); msg != "" {
			out += "    " + errorStyle.Render("! "+msg) + "\n"
		}
	}

	if m.status != "" {
		out += "\n" + helpStyle.Render(m.status) + "\n"
	}

	out += "\n" + helpStyle.Render("ctrl+s publish  enter/tab next  ctrl+n add line  ctrl+d remove line  left/right choose  space toggle tag  esc back")
	return out
}

func (m formModel) rowValue(r formRow) string {
	switch r.kind {
	case rowSelect:
		opts := m.selectOptions(r.name)
		if len(opts) == 0 {
			return helpStyle.Render("loading options...")
		}
		if r.optIdx < 0 || r.optIdx >= len(opts) {
			return "< none >"
		}
		return "< " + opts[r.optIdx].Label + " >"
	case rowTagSet:
		opts := m.tagOptions(r.name)
		if len(opts) == 0 {
			return helpStyle.Render("loading options...")
		}
		parts := make([]string, len(opts))
		for i, opt := range opts {
			mark := " "
			if m.tagSelected(r.name, opt.Value) {
				mark = "x"
			}
			label := fmt.Sprintf("[%s] %s", mark, opt.Label)
			if i == r.optIdx {
				label = "(" + label + ")"
			}
			parts[i] = label
		}
		return strings.Join(parts, " ")
	default:
		return "[" + r.input.View() + "]"
	}
}

func (m formModel) rowError(r formRow) string {
	switch r.kind {
	case rowText:
		return m.errors[r.name]
	case rowListItem:
		// A list-level error renders once, under the first line.
		if r.index == 0 {
			return m.errors[r.name]
		}
	case rowSelect:
		if r.name == recipeform.FieldCategory {
			return m.errors[r.name]
		}
	case rowNutrition:
		if r.name == recipeform.NutritionCalories {
			return m.errors["nutrition"]
		}
	}
	return ""
}
