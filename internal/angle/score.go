package angle

// Grade is the score bucket a submitted guess falls into.
type Grade string

const (
	GradeNone       Grade = ""
	GradePerfection Grade = "Perfection!"
	GradeAwesome    Grade = "Awesome!"
	GradeExcellent  Grade = "Excellent!"
	GradeGood       Grade = "Good!"
	GradeOK         Grade = "OK"
	GradeNotGreat   Grade = "Not great..."
)

// Grades lists every bucket from best to worst.
var Grades = []Grade{GradePerfection, GradeAwesome, GradeExcellent, GradeGood, GradeOK, GradeNotGreat}

// GradeFor buckets a circular difference in degrees. Upper edges are
// inclusive.
func GradeFor(diff float64) Grade {
	switch {
	case diff == 0:
		return GradePerfection
	case diff <= 5:
		return GradeAwesome
	case diff <= 10:
		return GradeExcellent
	case diff <= 20:
		return GradeGood
	case diff <= 30:
		return GradeOK
	default:
		return GradeNotGreat
	}
}
