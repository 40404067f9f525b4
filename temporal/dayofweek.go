package temporal

// DayOfWeek is an ISO-8601 day of the week: Monday is 1, Sunday is 7.
type DayOfWeek int

const (
	Monday DayOfWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayOfWeekNames = [8]string{"None", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d DayOfWeek) String() string {
	if d < Monday || d > Sunday {
		return "Unknown"
	}
	return dayOfWeekNames[d]
}
