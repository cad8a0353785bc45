package fraction

// Grade is the score bucket for a submitted guess.
type Grade string

const (
	GradeNone      Grade = ""
	GradePerfect   Grade = "Perfect!"
	GradeAwesome   Grade = "Awesome!"
	GradeExcellent Grade = "Excellent!"
	GradeGood      Grade = "Good!"
	GradeOK        Grade = "OK"
	GradeNotGreat  Grade = "Not great..."
)

// Grades lists every bucket from best to worst.
var Grades = []Grade{GradePerfect, GradeAwesome, GradeExcellent, GradeGood, GradeOK, GradeNotGreat}

// GradeFor buckets an absolute difference. Upper edges are inclusive.
func GradeFor(diff float64) Grade {
	switch {
	case diff <= 0.005:
		return GradePerfect
	case diff <= 0.02:
		return GradeAwesome
	case diff <= 0.05:
		return GradeExcellent
	case diff <= 0.10:
		return GradeGood
	case diff <= 0.20:
		return GradeOK
	default:
		return GradeNotGreat
	}
}
