package student

// Subjects is the reference list offered by entry forms. Records are not
// required to use one of them.
var Subjects = []string{
	"Algebra",
	"Physics",
	"Chemistry",
	"Biology",
	"Calculus",
	"Statistics",
	"Computer Science",
	"English",
	"History",
	"Geography",
	"Literature",
	"Economics",
	"Psychology",
	"Sociology",
	"Philosophy",
	"Political Science",
	"Art History",
	"Music Theory",
	"Drama",
	"Film Studies",
	"Linguistics",
	"Anthropology",
	"Archaeology",
	"Astronomy",
	"Meteorology",
	"Oceanography",
	"Geology",
	"Botany",
}

// IsSubject reports whether name is in Subjects.
func IsSubject(name string) bool {
	for _, s := range Subjects {
		if s == name {
			return true
		}
	}
	return false
}
