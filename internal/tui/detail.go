package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/foodblog/go-food-blog/internal/fetch"
	"github.com/foodblog/go-food-blog/models"
)

// detailModel renders one fetched recipe in full.
type detailModel struct {
	post    models.Post
	state   fetch.State
	lastErr error
	spinner spinner.Model
	status  string
}

func newDetailModel() detailModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return detailModel{spinner: s}
}

func (m detailModel) View(owned bool) string {
	if m.state == fetch.StateLoading {
		return titleStyle.Render("Recipe") + "  " + m.spinner.View() + "\n\nLoading...\n"
	}
	if m.state == fetch.StateErrored {
		out := titleStyle.Render("Recipe") + "\n\n"
		out += errorStyle.Render(humanizeLoad(m.lastErr)) + "\n"
		out += "\n" + helpStyle.Render("esc back")
		return out
	}

	p := m.post
	out := titleStyle.Render(p.Title) + "\n"
	out += helpStyle.Render(metaLine(p)) + "\n\n"

	if p.Excerpt != "" {
		out += p.Excerpt + "\n\n"
	}

	out += "Ingredients:\n"
	for _, ing := range p.Ingredients {
		out += "  - " + ing + "\n"
	}

	out += "\nSteps:\n"
	for i, step := range p.Steps {
		out += fmt.Sprintf("  %d. %s\n", i+1, step)
	}

	if len(p.Tags) > 0 || len(p.DietaryTags) > 0 {
		out += "\nTags: " + tagStyle.Render(tagLine(p)) + "\n"
	}
	if nutrition := nutritionLine(p); nutrition != "" {
		out += "Nutrition: " + nutrition + "\n"
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	help := "c copy link  esc back"
	if owned {
		help = "e edit  d delete  " + help
	}
	out += "\n" + helpStyle.Render(help)
	return out
}

func metaLine(p models.Post) string {
	parts := []string{}
	if p.Category != "" {
		parts = append(parts, p.Category)
	}
	if p.Cuisine != "" {
		parts = append(parts, p.Cuisine)
	}
	if p.Difficulty != "" {
		parts = append(parts, p.Difficulty)
	}
	if p.PrepTimeMin > 0 || p.CookTimeMin > 0 {
		parts = append(parts, fmt.Sprintf("prep %dm / cook %dm", p.PrepTimeMin, p.CookTimeMin))
	}
	if p.Servings > 0 {
		parts = append(parts, fmt.Sprintf("serves %d", p.Servings))
	}
	return strings.Join(parts, " | ")
}

func tagLine(p models.Post) string {
	names := make([]string, 0, len(p.DietaryTags)+len(p.Tags))
	for _, t := range p.DietaryTags {
		names = append(names, t.Name)
	}
	for _, t := range p.Tags {
		names = append(names, t.Name)
	}
	return strings.Join(names, ", ")
}

func nutritionLine(p models.Post) string {
	parts := []string{}
	if p.NutritionCal != "" {
		parts = append(parts, string(p.NutritionCal)+" kcal")
	}
	if p.NutritionPro != "" {
		parts = append(parts, string(p.NutritionPro)+"g protein")
	}
	if p.NutritionFat != "" {
		parts = append(parts, string(p.NutritionFat)+"g fat")
	}
	if p.NutritionCarbs != "" {
		parts = append(parts, string(p.NutritionCarbs)+"g carbs")
	}
	return strings.Join(parts, ", ")
}
