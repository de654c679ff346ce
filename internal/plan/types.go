package plan

// Plan is the root of a training plan document.
type Plan struct {
	Metadata  Metadata            `json:"metadata"`
	Athlete   Athlete             `json:"athlete,omitempty"`
	PaceZones map[string]PaceZone `json:"paceZones,omitempty" validate:"omitempty,dive"`
	HRZones   map[string]HRZone   `json:"hrZones,omitempty" validate:"omitempty,dive"`
	Weeks     []Week              `json:"weeks" validate:"omitempty,dive"`
}

// Metadata describes the plan as a whole.
type Metadata struct {
	PlanName            string     `json:"planName"`
	RaceName            string     `json:"raceName"`
	RaceDate            string     `json:"raceDate,omitempty" validate:"omitempty,isodate"`
	PlanLevel           string     `json:"planLevel,omitempty" validate:"omitempty,oneof=easy moderate aggressive"`
	TotalWeeks          int        `json:"totalWeeks,omitempty" validate:"omitempty,min=1,max=52"`
	PredictedFinishTime FinishTime `json:"predictedFinishTime,omitempty"`
}

// FinishTime holds the predicted race result.
type FinishTime struct {
	Target string `json:"target,omitempty"`
	Range  string `json:"range,omitempty"`
}

// Athlete identifies the plan owner.
type Athlete struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// PaceZone is a per-mile pace range expressed as m:ss strings.
type PaceZone struct {
	Min string `json:"min,omitempty" validate:"omitempty,pace"`
	Max string `json:"max,omitempty" validate:"omitempty,pace"`
}

// HRZone is a heart rate training zone.
type HRZone struct {
	Name         string `json:"name,omitempty"`
	MinHR        int    `json:"minHR,omitempty"`
	MaxHR        int    `json:"maxHR,omitempty"`
	PercentMaxHR string `json:"percentMaxHR,omitempty"`
}

// Week is one training week with its daily schedule.
type Week struct {
	WeekNumber     int            `json:"weekNumber,omitempty" validate:"omitempty,min=1"`
	Phase          string         `json:"phase,omitempty" validate:"omitempty,phase"`
	IsRecoveryWeek bool           `json:"isRecoveryWeek,omitempty"`
	WeeksUntilRace int            `json:"weeksUntilRace,omitempty"`
	Focus          string         `json:"focus,omitempty"`
	TotalMileage   float64        `json:"totalMileage,omitempty"`
	TotalHours     float64        `json:"totalHours,omitempty"`
	StrengthDays   int            `json:"strengthDays,omitempty"`
	Days           map[string]Day `json:"days,omitempty" validate:"omitempty,dive"`
}

// Day is a single scheduled day inside a week.
type Day struct {
	Date     string    `json:"date,omitempty" validate:"omitempty,isodate"`
	Notes    string    `json:"notes,omitempty"`
	Running  *Running  `json:"running,omitempty"`
	Strength *Strength `json:"strength,omitempty"`
}

// Running describes the day's run workout.
type Running struct {
	Type              string  `json:"type,omitempty" validate:"omitempty,workout"`
	Title             string  `json:"title,omitempty"`
	Description       string  `json:"description,omitempty"`
	TotalDistance     float64 `json:"totalDistance,omitempty"`
	EstimatedDuration int     `json:"estimatedDuration,omitempty"`
	HRZone            string  `json:"hrZone,omitempty"`
	PaceZone          string  `json:"paceZone,omitempty"`
}

// Strength describes the day's strength session.
type Strength struct {
	Scheduled bool   `json:"scheduled,omitempty"`
	Type      string `json:"type,omitempty"`
	Duration  int    `json:"duration,omitempty"`
}

// DayOrder lists day keys in schedule order.
var DayOrder = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// DayLabels holds the short labels matching DayOrder.
var DayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DisplayName returns the plan name or a generic fallback.
func (m Metadata) DisplayName() string {
	if m.PlanName == "" {
		return "Training Plan"
	}
	return m.PlanName
}

// DisplayRaceName returns the race name or a generic fallback.
func (m Metadata) DisplayRaceName() string {
	if m.RaceName == "" {
		return "Marathon"
	}
	return m.RaceName
}

// WorkoutType returns the day's run type, defaulting to rest.
func (d Day) WorkoutType() string {
	if d.Running == nil || d.Running.Type == "" {
		return "rest"
	}
	return d.Running.Type
}

// LongRunDistance returns the longest distance among the week's long-effort
// workouts (long, progression, race_pace).
func (w Week) LongRunDistance() float64 {
	longest := 0.0
	for _, day := range w.Days {
		if day.Running == nil {
			continue
		}
		switch day.Running.Type {
		case "long", "progression", "race_pace":
			if day.Running.TotalDistance > longest {
				longest = day.Running.TotalDistance
			}
		}
	}
	return longest
}

// RaceWeek returns the taper week closest to race day, or nil when the plan
// has no week within one week of the race.
func (p *Plan) RaceWeek() *Week {
	var raceWeek *Week
	for i := range p.Weeks {
		w := &p.Weeks[i]
		if w.Phase == "taper" && w.WeeksUntilRace <= 1 {
			raceWeek = w
		}
	}
	return raceWeek
}
