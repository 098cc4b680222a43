package intake

// SymptomReport is a patient-submitted description of symptoms and vitals.
// All fields except Symptoms are optional; optional scalars use pointers so
// that "absent" and "zero" stay distinguishable through JSON binding.
type SymptomReport struct {
	Symptoms      string   `json:"symptoms"`
	Duration      string   `json:"duration,omitempty"`
	Severity      *int     `json:"severity,omitempty"`
	Age           *int     `json:"age,omitempty"`
	HeartRate     *int     `json:"heart_rate,omitempty"`
	BloodPressure *string  `json:"blood_pressure,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
}

// Scalar bounds for a SymptomReport.
const (
	MinSymptomsLength = 20

	MinSeverity = 1
	MaxSeverity = 10

	MinAge = 1
	MaxAge = 120

	MinHeartRate = 40
	MaxHeartRate = 200

	MinTemperature = 95.0
	MaxTemperature = 108.0

	MinSystolic  = 70
	MaxSystolic  = 200
	MinDiastolic = 40
	MaxDiastolic = 130
)

// validDurations is the set of accepted duration values. The empty string
// means the caller did not specify one.
var validDurations = map[string]bool{
	"":         true,
	"hours":    true,
	"1 day":    true,
	"2-3 days": true,
	"week+":    true,
}

// IsValidDuration reports whether d is an accepted duration value.
func IsValidDuration(d string) bool {
	return validDurations[d]
}
