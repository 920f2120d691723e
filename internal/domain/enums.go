package domain

// Role is the employee's position. It only affects how pay is computed;
// scheduling never branches on it.
type Role string

const (
	RoleWorker  Role = "worker"
	RoleManager Role = "manager"
)

// ValidRoles is the canonical set of accepted role strings.
var ValidRoles = map[string]bool{
	string(RoleWorker):  true,
	string(RoleManager): true,
}

// Closed marks an hour in a demand vector during which the business is closed.
const Closed = -1

// HoursPerDay is the number of one-hour slots in a day.
const HoursPerDay = 24

// DaysPerWeek is the number of days in a schedule week.
const DaysPerWeek = 7

// RunStatus is the outcome of a stored schedule run.
type RunStatus string

const (
	RunAccepted RunStatus = "accepted"
	RunRejected RunStatus = "rejected"
)
