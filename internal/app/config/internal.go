package config

type InternalConfig struct {
	App       App
	Google    Google
	Scheduler Scheduler
	Worker    Worker
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	EndpointPrefix            string
	ShutdownTimeoutInSeconds  int
	MaxRequests               int
	MaxTimeRequestsPerSeconds int
}

type Google struct {
	CalendarBaseUrl         string
	CalendarID              string
	TasksBaseUrl            string
	TaskListID              string
	AccessToken             string
	CalendarRPS             int
	RequestTimeoutInSeconds int
}

// Scheduler holds the knobs of the automatic scheduling engine. Defaults
// reproduce the product behavior: 09:00-22:00 WIB work window, 7-day
// horizon, 30-minute candidate step.
type Scheduler struct {
	WorkDayStartHour         int
	WorkDayEndHour           int
	HorizonDays              int
	CandidateStepInMinutes   int
	SourceTimeoutInSeconds   int
	DefaultDurationInMinutes int
}

type Worker struct {
	MorningDigestCronSpec  string
	DeadlineCheckCronSpec  string
	LeaderLockTTLInSeconds int
	DeadlineWindowInHours  int
}
