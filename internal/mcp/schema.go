package mcp

import "github.com/jstigall/legisim/internal/legislature"

// maxToolReps bounds the work a single tool call can request.
const maxToolReps = 1000

// RunInput defines the input for the legisim_run tool. Zero-valued fields
// fall back to the server's loaded configuration.
type RunInput struct {
	Reps         int     `json:"reps,omitempty" jsonschema:"Number of repetitions to run (default from server config; max 1000)"`
	MajoritySize int     `json:"majority_size,omitempty" jsonschema:"Majority party seat count"`
	Distance     float64 `json:"distance,omitempty" jsonschema:"Separation between the two party means"`
	Sigma        float64 `json:"sigma,omitempty" jsonschema:"Ideal-point standard deviation applied to both parties"`
	Seed         uint64  `json:"seed,omitempty" jsonschema:"Base random seed"`
}

// RunOutput defines the output for the legisim_run tool.
type RunOutput struct {
	Outcomes []OutcomeItem `json:"outcomes" jsonschema:"One row per repetition"`
	Count    int           `json:"count" jsonschema:"Number of repetitions"`
}

// SweepInput defines the input for the legisim_sweep tool.
type SweepInput struct {
	Sweep string `json:"sweep" jsonschema:"Sweep name: party-size or distance or intraparty"`
	Reps  int    `json:"reps,omitempty" jsonschema:"Repetitions per grid point (default 10; max 1000 total rows)"`
}

// SweepOutput defines the output for the legisim_sweep tool.
type SweepOutput struct {
	Sweep    string        `json:"sweep"`
	Points   int           `json:"points" jsonschema:"Number of grid points"`
	Outcomes []OutcomeItem `json:"outcomes"`
	Count    int           `json:"count"`
}

// OutcomeItem is one repetition's result row.
type OutcomeItem struct {
	Rep          int     `json:"rep"`
	InitialValue float64 `json:"initial_value"`
	FinalValue   float64 `json:"final_value"`
	Votes        int     `json:"votes"`
	Yeas         int     `json:"yeas"`
	MajSize      int     `json:"majority_size"`
	Distance     float64 `json:"distance"`
	MajSigma     float64 `json:"majority_sigma"`
	MajAdj       float64 `json:"majority_adjustment"`
	MinSigma     float64 `json:"minority_sigma"`
	MinAdj       float64 `json:"minority_adjustment"`
}

func toItems(outcomes []legislature.Outcome) []OutcomeItem {
	items := make([]OutcomeItem, len(outcomes))
	for i, o := range outcomes {
		items[i] = OutcomeItem{
			Rep:          o.Rep,
			InitialValue: o.InitialValue,
			FinalValue:   o.FinalValue,
			Votes:        o.Votes,
			Yeas:         o.Yeas,
			MajSize:      o.MajSize,
			Distance:     o.Distance,
			MajSigma:     o.MajSigma,
			MajAdj:       o.MajAdj,
			MinSigma:     o.MinSigma,
			MinAdj:       o.MinAdj,
		}
	}
	return items
}
