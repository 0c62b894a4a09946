// Package render formats planner results for terminals.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/osse101/craftplanner/internal/building"
	"github.com/osse101/craftplanner/internal/domain"
	"github.com/osse101/craftplanner/internal/planner"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorTitle)).
			Bold(true).
			Underline(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)).
			Italic(true)

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOK))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarn))

	groupStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(ColorMuted)).
			PaddingLeft(1)

	rarityColors = map[domain.Rarity]string{
		domain.RarityCommon:    ColorCommon,
		domain.RarityUncommon:  ColorUncommon,
		domain.RarityRare:      ColorRare,
		domain.RarityEpic:      ColorEpic,
		domain.RarityLegendary: ColorLegendary,
	}
)

// ItemName colours name by rarity
func ItemName(name string, rarity domain.Rarity) string {
	color, ok := rarityColors[rarity]
	if !ok {
		color = ColorCommon
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(name)
}

func mark(done bool) string {
	if done {
		return okStyle.Render(MarkDone)
	}
	return warnStyle.Render(MarkPending)
}

func section(title string, lines []string) string {
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), strings.Join(lines, "\n"))
}

// Materials renders material rows with have/needed counts
func Materials(title string, rows []domain.MaterialRequirement) string {
	if len(rows) == 0 {
		return section(title, []string{mutedStyle.Render(MsgNothingNeeded)})
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s %s %d/%d",
			mark(row.Missing == 0),
			ItemName(row.Name, row.Rarity),
			row.EffectiveHave,
			row.Needed))
	}
	return section(title, lines)
}

// ShoppingList renders missing base materials and any owned substitutes
func ShoppingList(rows []domain.ShoppingItem) string {
	if len(rows) == 0 {
		return section(TitleShopping, []string{okStyle.Render(MsgNothingMissing)})
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		line := fmt.Sprintf("%s ×%d", ItemName(row.Name, row.Rarity), row.Missing)
		if len(row.Substitutes) > 0 {
			subs := make([]string, 0, len(row.Substitutes))
			for _, sub := range row.Substitutes {
				subs = append(subs, fmt.Sprintf("%s ×%d", sub.Name, sub.Quantity))
			}
			line += " " + mutedStyle.Render("(have: "+strings.Join(subs, ", ")+")")
		}
		lines = append(lines, line)
	}
	return section(TitleShopping, lines)
}

// Steps renders crafting steps in order with their corrected building
func Steps(steps []domain.CraftingStep, corrector building.Corrector) string {
	if len(steps) == 0 {
		return section(TitleSteps, []string{mutedStyle.Render(MsgNothingNeeded)})
	}
	lines := make([]string, 0, len(steps))
	for i := range steps {
		step := &steps[i]
		station := corrector.Describe(building.Step(corrector, *step).Building).Display

		ingredients := make([]string, 0, len(step.Ingredients))
		for _, in := range step.Ingredients {
			ingredients = append(ingredients, fmt.Sprintf("%d %s", in.Quantity, in.Name))
		}

		lines = append(lines, fmt.Sprintf("%s %d. %s ×%d  %s",
			mark(step.Complete),
			step.Position,
			ItemName(step.Name, step.Rarity),
			step.Quantity,
			mutedStyle.Render("["+station+"] "+strings.Join(ingredients, ", "))))
	}
	return section(TitleSteps, lines)
}

// Buildings renders building groups as bordered blocks
func Buildings(groups []domain.BuildingGroup) string {
	if len(groups) == 0 {
		return section(TitleBuildings, []string{mutedStyle.Render(MsgNothingNeeded)})
	}
	blocks := make([]string, 0, len(groups))
	for _, g := range groups {
		header := fmt.Sprintf("%s (%d)", g.Display, g.StepCount)
		blocks = append(blocks, groupStyle.Render(header+"\n"+strings.Join(g.Items, "\n")))
	}
	return section(TitleBuildings, blocks)
}

// Tree renders a recipe tree, one node per line indented by depth, followed
// by the skills the whole tree needs
func Tree(tree *domain.RecipeTree) string {
	var sb strings.Builder
	writeNode(&sb, tree.Root, 0)
	parts := []string{strings.TrimRight(sb.String(), "\n")}
	if len(tree.Skills) > 0 {
		lines := make([]string, 0, len(tree.Skills))
		for _, skill := range tree.Skills {
			lines = append(lines, fmt.Sprintf("%s %d", skill.SkillName, skill.SkillLevel))
		}
		parts = append(parts, section(TitleSkills, lines))
	}
	return strings.Join(parts, "\n\n")
}

func writeNode(sb *strings.Builder, node *domain.RecipeNode, depth int) {
	if node == nil {
		return
	}
	name := planner.UnknownItemName(node.ItemID)
	rarity := domain.RarityCommon
	if node.Item != nil {
		name, rarity = node.Item.Name, node.Item.Rarity
	}
	sb.WriteString(strings.Repeat(treeIndent, depth))
	fmt.Fprintf(sb, "%d× %s\n", node.Quantity, ItemName(name, rarity))
	for _, child := range node.Children {
		writeNode(sb, child, depth+1)
	}
}

// Calculation renders a single-target breakdown
func Calculation(calc *domain.Calculation) string {
	return strings.Join([]string{
		calculated(TitleMaterials, calc.BaseMaterials),
		calculated(TitleIntermediates, calc.Intermediates),
	}, "\n\n")
}

func calculated(title string, rows []domain.CalculatedMaterial) string {
	if len(rows) == 0 {
		return section(title, []string{mutedStyle.Render(MsgNothingNeeded)})
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s ×%d", ItemName(row.Name, row.Rarity), row.Quantity))
	}
	return section(title, lines)
}

// Diagnostics renders traversal anomalies; clean reports render nothing
func Diagnostics(d planner.Diagnostics) string {
	if d.Clean() {
		return ""
	}
	var lines []string
	if d.CycleGuardHits > 0 {
		lines = append(lines, warnStyle.Render(fmt.Sprintf("cycle guard hits: %d", d.CycleGuardHits)))
	}
	if d.UnknownItems > 0 {
		lines = append(lines, warnStyle.Render(fmt.Sprintf("unknown items: %s", strings.Join(d.UnknownIDs, ", "))))
	}
	return section(TitleDiagnostics, lines)
}

// Report renders a full plan report
func Report(r *planner.Report, corrector building.Corrector) string {
	parts := []string{
		Materials(TitleMaterials, r.Materials),
		Steps(r.Steps, corrector),
		Buildings(building.Summarize(r.Steps, corrector)),
	}
	if diag := Diagnostics(r.Diagnostics); diag != "" {
		parts = append(parts, diag)
	}
	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(parts, "\n\n"))
}
