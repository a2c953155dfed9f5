package generator

import "alcyxob/gym-coach/internal/domain"

type routineTemplate struct {
	intensity string
	week      domain.WeeklySchedule
}

type planTemplate struct {
	calories     int
	mealsPerDay  int
	meals        map[string]string
	observations string
}

// Meal labels used by the plan templates.
const (
	MealBreakfast  = "Desayuno"
	MealMidMorning = "Media mañana"
	MealLunch      = "Almuerzo"
	MealAfternoon  = "Merienda"
	MealDinner     = "Cena"
)

// MealOrder lists the template meal labels in serving order.
var MealOrder = []string{MealBreakfast, MealMidMorning, MealLunch, MealAfternoon, MealDinner}

// Read-only; always handed out through Clone.
var routineTemplates = map[domain.GoalProfile]routineTemplate{
	domain.ProfileStrength: {
		intensity: domain.IntensityHigh,
		week: domain.WeeklySchedule{
			"Lunes": {
				{Name: "Press banca", Sets: 4, Reps: "6-8"},
				{Name: "Fondos", Sets: 3, Reps: "6-8"},
				{Name: "Press inclinado", Sets: 3, Reps: "6-8"},
			},
			"Martes": {
				{Name: "Peso muerto", Sets: 4, Reps: "5-6"},
				{Name: "Remo con barra", Sets: 4, Reps: "6-8"},
			},
			"Miércoles": {
				{Name: "Sentadillas", Sets: 4, Reps: "6-8"},
				{Name: "Prensa", Sets: 3, Reps: "6-8"},
			},
			"Jueves": {
				{Name: "Press militar", Sets: 3, Reps: "6-8"},
				{Name: "Elevaciones laterales", Sets: 3, Reps: "8-10"},
			},
			"Viernes": {
				{Name: "Curl bíceps", Sets: 3, Reps: "6-8"},
				{Name: "Tríceps polea", Sets: 3, Reps: "6-8"},
			},
			"Sábado":  {{Name: "Cardio ligero", Sets: 1, Reps: "20-30 min"}},
			"Domingo": {{Name: "Descanso"}},
		},
	},
	domain.ProfileWeightLoss: {
		intensity: domain.IntensityHigh,
		week: domain.WeeklySchedule{
			"Lunes": {
				{Name: "Circuito (sentadillas, flexiones, salto)", Sets: 3, Reps: "15-20 cada ejercicio"},
				{Name: "Cardio HIIT", Sets: 1, Reps: "15-20 min"},
			},
			"Martes":    {{Name: "Entrenamiento full body", Sets: 3, Reps: "12-15"}},
			"Miércoles": {{Name: "Cardio moderado", Sets: 1, Reps: "30-40 min"}},
			"Jueves":    {{Name: "Circuito + core", Sets: 3, Reps: "15-20"}},
			"Viernes":   {{Name: "HIIT + fuerza ligera", Sets: 3, Reps: "12-15"}},
			"Sábado":    {{Name: "Caminata larga", Sets: 1, Reps: "45-60 min"}},
			"Domingo":   {{Name: "Descanso activo (yoga)"}},
		},
	},
	domain.ProfileHealth: {
		intensity: domain.IntensityLowMedium,
		week: domain.WeeklySchedule{
			"Lunes": {
				{Name: "Full body ligero", Sets: 3, Reps: "10-12"},
				{Name: "Caminata", Sets: 1, Reps: "30 min"},
			},
			"Martes":    {{Name: "Movilidad y yoga", Sets: 1, Reps: "30-40 min"}},
			"Miércoles": {{Name: "Entrenamiento funcional", Sets: 3, Reps: "10-12"}},
			"Jueves":    {{Name: "Caminata ligera", Sets: 1, Reps: "30 min"}},
			"Viernes":   {{Name: "Circuito suave", Sets: 3, Reps: "12-15"}},
			"Sábado":    {{Name: "Actividad recreativa", Sets: 1, Reps: "60 min"}},
			"Domingo":   {{Name: "Descanso"}},
		},
	},
}

var planTemplates = map[domain.GoalProfile]planTemplate{
	domain.ProfileStrength: {
		calories:    2800,
		mealsPerDay: 5,
		meals: map[string]string{
			MealBreakfast:  "Avena, 3 huevos, banana, leche",
			MealMidMorning: "Batido proteína + frutos secos",
			MealLunch:      "Arroz integral, pollo a la plancha, aguacate, ensalada",
			MealAfternoon:  "Yogur griego + granola",
			MealDinner:     "Carne magra, papas asadas, vegetales",
		},
		observations: "Enfocado en superávit calórico y proteínas para fuerza.",
	},
	domain.ProfileWeightLoss: {
		calories:    1700,
		mealsPerDay: 5,
		meals: map[string]string{
			MealBreakfast:  "Claras revueltas, avena (porción pequeña), manzana",
			MealMidMorning: "Yogur natural o té",
			MealLunch:      "Pechuga de pollo, ensalada abundante, quinoa pequeña",
			MealAfternoon:  "Frutos secos (porción pequeña)",
			MealDinner:     "Pescado al vapor, vegetales al vapor",
		},
		observations: "Déficit moderado con proteína suficiente.",
	},
	domain.ProfileHealth: {
		calories:    2100,
		mealsPerDay: 5,
		meals: map[string]string{
			MealBreakfast:  "Yogur natural, granola, frutas",
			MealMidMorning: "Fruta y nueces",
			MealLunch:      "Pollo a la plancha, arroz integral, ensalada",
			MealAfternoon:  "Batido de frutas",
			MealDinner:     "Sopa ligera, pan integral, vegetales",
		},
		observations: "Balanceado, enfocado en calidad de alimentos.",
	},
}
