package intake

import (
	"regexp"
	"strconv"
	"strings"
)

// bloodPressurePattern matches readings in the form "systolic/diastolic"
// with two or three digits per component.
var bloodPressurePattern = regexp.MustCompile(`^\d{2,3}/\d{2,3}$`)

// ValidateBloodPressure checks a blood-pressure reading. A nil reading is
// accepted and produces no constraint. The returned error identifies the
// failed rule: invalid-format for a malformed string, out-of-range for
// implausible component values, inconsistent when systolic does not exceed
// diastolic.
func ValidateBloodPressure(bp *string) *ValidationError {
	if bp == nil {
		return nil
	}
	reading := strings.TrimSpace(*bp)
	if !bloodPressurePattern.MatchString(reading) {
		return newError("blood_pressure", KindInvalidFormat,
			"must be in systolic/diastolic format, e.g. 120/80, got %q", *bp)
	}

	parts := strings.SplitN(reading, "/", 2)
	systolic, _ := strconv.Atoi(parts[0])
	diastolic, _ := strconv.Atoi(parts[1])

	if systolic < MinSystolic || systolic > MaxSystolic {
		return newError("blood_pressure", KindOutOfRange,
			"systolic must be between %d and %d, got %d", MinSystolic, MaxSystolic, systolic)
	}
	if diastolic < MinDiastolic || diastolic > MaxDiastolic {
		return newError("blood_pressure", KindOutOfRange,
			"diastolic must be between %d and %d, got %d", MinDiastolic, MaxDiastolic, diastolic)
	}
	if systolic <= diastolic {
		return newError("blood_pressure", KindInconsistent,
			"systolic (%d) must be greater than diastolic (%d)", systolic, diastolic)
	}
	return nil
}
