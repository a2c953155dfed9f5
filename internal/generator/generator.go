// Package generator derives weekly routines and meal plans from a client's stated goal.
//
// Selection is a keyword match over an ordered rule table: the goal is lower-cased and the
// first rule with a keyword contained in it wins. A goal matching no rule falls back to
// the health profile. Generation is pure; persisting the result is the caller's job.
package generator

import (
	"alcyxob/gym-coach/internal/domain"
	"fmt"
	"sort"
	"strings"
)

// Rule maps a set of goal keywords to a profile.
type Rule struct {
	Profile  domain.GoalProfile `mapstructure:"profile"`
	Keywords []string           `mapstructure:"keywords"`
}

// DefaultRules is the built-in rule table. Order is precedence.
func DefaultRules() []Rule {
	return []Rule{
		{Profile: domain.ProfileStrength, Keywords: []string{"fuerza"}},
		{Profile: domain.ProfileWeightLoss, Keywords: []string{"bajar", "peso"}},
	}
}

// FallbackProfile is used when no rule matches.
const FallbackProfile = domain.ProfileHealth

// RoutineTemplate is the generated part of a routine.
type RoutineTemplate struct {
	Profile   domain.GoalProfile
	Intensity string
	Week      domain.WeeklySchedule
}

// PlanTemplate is the generated part of a meal plan.
type PlanTemplate struct {
	Profile       domain.GoalProfile
	DailyCalories int
	MealsPerDay   int
	Meals         map[string]string
	Observations  string
}

// Generator classifies goals and hands out template copies.
type Generator struct {
	rules []Rule
}

// New builds a generator over rules. An empty table means DefaultRules.
func New(rules []Rule) (*Generator, error) {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	normalized := make([]Rule, 0, len(rules))
	for i, r := range rules {
		if !r.Profile.Valid() {
			return nil, fmt.Errorf("goal rule %d: unknown profile %q", i, r.Profile)
		}
		kw := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			k = strings.ToLower(strings.TrimSpace(k))
			if k != "" {
				kw = append(kw, k)
			}
		}
		if len(kw) == 0 {
			return nil, fmt.Errorf("goal rule %d (%s): at least one keyword is required", i, r.Profile)
		}
		normalized = append(normalized, Rule{Profile: r.Profile, Keywords: kw})
	}
	return &Generator{rules: normalized}, nil
}

// Default returns a generator over DefaultRules.
func Default() *Generator {
	g, _ := New(nil)
	return g
}

// Rules returns a copy of the active rule table.
func (g *Generator) Rules() []Rule {
	out := make([]Rule, len(g.rules))
	for i, r := range g.rules {
		out[i] = Rule{Profile: r.Profile, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}

// Classify returns the profile for a goal text.
func (g *Generator) Classify(goal string) domain.GoalProfile {
	text := strings.ToLower(goal)
	for _, r := range g.rules {
		for _, kw := range r.Keywords {
			if strings.Contains(text, kw) {
				return r.Profile
			}
		}
	}
	return FallbackProfile
}

// Routine returns a fresh copy of the routine template for goal.
func (g *Generator) Routine(goal string) RoutineTemplate {
	return RoutineFor(g.Classify(goal))
}

// Plan returns a fresh copy of the meal-plan template for goal.
func (g *Generator) Plan(goal string) PlanTemplate {
	return PlanFor(g.Classify(goal))
}

// RoutineFor returns the routine template of a profile. Unknown profiles get the fallback.
func RoutineFor(p domain.GoalProfile) RoutineTemplate {
	t, ok := routineTemplates[p]
	if !ok {
		p, t = FallbackProfile, routineTemplates[FallbackProfile]
	}
	return RoutineTemplate{Profile: p, Intensity: t.intensity, Week: t.week.Clone()}
}

// PlanFor returns the plan template of a profile. Unknown profiles get the fallback.
func PlanFor(p domain.GoalProfile) PlanTemplate {
	t, ok := planTemplates[p]
	if !ok {
		p, t = FallbackProfile, planTemplates[FallbackProfile]
	}
	meals := make(map[string]string, len(t.meals))
	for k, v := range t.meals {
		meals[k] = v
	}
	return PlanTemplate{
		Profile:       p,
		DailyCalories: t.calories,
		MealsPerDay:   t.mealsPerDay,
		Meals:         meals,
		Observations:  t.observations,
	}
}

// MealLabels lists the labels of meals in serving order: MealOrder labels first, then any
// other labels sorted.
func MealLabels(meals map[string]string) []string {
	labels := make([]string, 0, len(meals))
	for _, l := range MealOrder {
		if _, ok := meals[l]; ok {
			labels = append(labels, l)
		}
	}
	var rest []string
	for l := range meals {
		if !isTemplateMeal(l) {
			rest = append(rest, l)
		}
	}
	sort.Strings(rest)
	return append(labels, rest...)
}

func isTemplateMeal(label string) bool {
	for _, l := range MealOrder {
		if l == label {
			return true
		}
	}
	return false
}
