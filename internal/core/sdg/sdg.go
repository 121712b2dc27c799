// Package sdg holds the static catalog of the 17 UN Sustainable
// Development Goals used for alignment display
package sdg

// Goal is one catalog entry. Color is the official campaign hex color
type Goal struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
}

var goals = []Goal{
	{1, "No Poverty", "#E5243B"},
	{2, "Zero Hunger", "#DDA63A"},
	{3, "Good Health and Well-being", "#4C9F38"},
	{4, "Quality Education", "#C5192D"},
	{5, "Gender Equality", "#FF3A21"},
	{6, "Clean Water and Sanitation", "#26BDE2"},
	{7, "Affordable and Clean Energy", "#FCC30B"},
	{8, "Decent Work and Economic Growth", "#A21942"},
	{9, "Industry, Innovation and Infrastructure", "#FD6925"},
	{10, "Reduced Inequalities", "#DD1367"},
	{11, "Sustainable Cities and Communities", "#FD9D24"},
	{12, "Responsible Consumption and Production", "#BF8B2E"},
	{13, "Climate Action", "#3F7E44"},
	{14, "Life Below Water", "#0A97D9"},
	{15, "Life on Land", "#56C02B"},
	{16, "Peace, Justice and Strong Institutions", "#00689D"},
	{17, "Partnerships for the Goals", "#19486A"},
}

// All returns the catalog in goal-number order. Callers may mutate the copy
func All() []Goal {
	out := make([]Goal, len(goals))
	copy(out, goals)
	return out
}

// ByID looks up a single goal. The bool reports whether id is in 1..17
func ByID(id int) (Goal, bool) {
	if id < 1 || id > len(goals) {
		return Goal{}, false
	}
	return goals[id-1], true
}

// ValidID reports whether id names a real goal
func ValidID(id int) bool {
	return id >= 1 && id <= len(goals)
}
