package models

// WeekProgress records which categories were trained during one calendar
// week. WeekStart is the Monday of that week as "YYYY-MM-DD" and
// identifies the week. A week that ends incomplete stays as a permanent
// historical record.
type WeekProgress struct {
	WeekStart string `json:"week_start"`
	Push      bool   `json:"push"`
	Pull      bool   `json:"pull"`
	Squat     bool   `json:"squat"`
}

// Done reports whether the given category was trained this week.
func (w WeekProgress) Done(c Category) bool {
	switch c {
	case CategoryPush:
		return w.Push
	case CategoryPull:
		return w.Pull
	case CategorySquat:
		return w.Squat
	}
	return false
}
