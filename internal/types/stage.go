package types

// Stage is the closed set of application pipeline stages. Stages are
// totally ordered; Order gives the position used for forward/backward
// comparison.
type Stage string

// Pipeline stages, in progression order.
const (
	StageInterested      Stage = "INTERESTED"
	StageApplied         Stage = "APPLIED"
	StageRecruiterScreen Stage = "RECRUITER_SCREEN"
	StageInterview       Stage = "INTERVIEW"
	StageOffer           Stage = "OFFER"
	StageClosed          Stage = "CLOSED"
)

var stageOrder = map[Stage]int{
	StageInterested:      0,
	StageApplied:         1,
	StageRecruiterScreen: 2,
	StageInterview:       3,
	StageOffer:           4,
	StageClosed:          5,
}

// Stages returns all pipeline stages in progression order.
func Stages() []Stage {
	return []Stage{
		StageInterested,
		StageApplied,
		StageRecruiterScreen,
		StageInterview,
		StageOffer,
		StageClosed,
	}
}

// Valid reports whether the stage is a member of the closed set.
func (s Stage) Valid() bool {
	_, ok := stageOrder[s]
	return ok
}

// Order returns the stage's position in the pipeline, or -1 for an unknown
// stage.
func (s Stage) Order() int {
	if o, ok := stageOrder[s]; ok {
		return o
	}
	return -1
}
