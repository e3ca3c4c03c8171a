package config

// DifficultyID indexes the preset table
type DifficultyID int

const (
	DifficultyEasy DifficultyID = iota
	DifficultyMedium
	DifficultyExtreme
	DifficultyCrazy
	DifficultyCount
)

// DifficultyConfig is one playable preset. Belt speeds are multipliers on
// the base movement cadence; see StepInterval.
type DifficultyConfig struct {
	ID    DifficultyID
	Name  string
	Blurb string // one-line lobby description

	Belts     int     // odd; the top row feeds the truck
	SpeedRow0 float64 // feeder belt and row 0
	SpeedEven float64 // remaining even rows
	SpeedOdd  float64 // odd rows

	RandomPerBelt bool // every belt rolls its own speed at round start

	ScoreStep      int  // package cap grows by one per this many points
	TruckElimEvery int  // every Nth full truck run clears a failure, 0 = never
	InvertControls bool // up and down swapped for both characters
}

var Difficulties [DifficultyCount]DifficultyConfig

// RandomSpeedChoices is the speed pool used when RandomPerBelt is set.
var RandomSpeedChoices = []float64{1.0, 2.0}

func init() {
	Difficulties = [DifficultyCount]DifficultyConfig{
		{
			ID:             DifficultyEasy,
			Name:           "EASY",
			Blurb:          "5 belts, one pace",
			Belts:          5,
			SpeedRow0:      1.0,
			SpeedEven:      1.0,
			SpeedOdd:       1.0,
			ScoreStep:      50,
			TruckElimEvery: 3,
		},
		{
			ID:             DifficultyMedium,
			Name:           "MEDIUM",
			Blurb:          "7 belts, fast odd rows",
			Belts:          7,
			SpeedRow0:      1.0,
			SpeedEven:      1.0,
			SpeedOdd:       1.5,
			ScoreStep:      30,
			TruckElimEvery: 5,
		},
		{
			ID:             DifficultyExtreme,
			Name:           "EXTREME",
			Blurb:          "9 belts, nothing is slow",
			Belts:          9,
			SpeedRow0:      1.0,
			SpeedEven:      1.5,
			SpeedOdd:       2.0,
			ScoreStep:      30,
			TruckElimEvery: 5,
		},
		{
			ID:             DifficultyCrazy,
			Name:           "CRAZY",
			Blurb:          "random speeds, swapped keys",
			Belts:          5,
			SpeedRow0:      1.0,
			SpeedEven:      1.0,
			SpeedOdd:       1.0,
			RandomPerBelt:  true,
			ScoreStep:      20,
			TruckElimEvery: 0,
			InvertControls: true,
		},
	}
}

// StepInterval converts a belt speed multiplier into whole frames between
// movement ticks. Faster belts tick more often; the division truncates, so
// speed 1.5 gives 6 frames and speed 2 gives 4.
func StepInterval(speed float64) int {
	return int(float64(Layout.StepFrames) / speed)
}

// PackageCap is the active package limit at a given score.
func (d *DifficultyConfig) PackageCap(score int) int {
	return Spawn.BaseCount + score/d.ScoreStep
}
