package domain

// Status is the correctness of one attribute of a classic guess.
type Status string

const (
	StatusCorrect   Status = "correct"
	StatusPartial   Status = "partial"
	StatusIncorrect Status = "incorrect"
)

type Attribute string

const (
	AttrGender      Attribute = "gender"
	AttrPositions   Attribute = "positions"
	AttrSpecies     Attribute = "species"
	AttrResource    Attribute = "resource"
	AttrRangeType   Attribute = "rangeType"
	AttrRegions     Attribute = "regions"
	AttrReleaseYear Attribute = "releaseYear"
)

// Attributes lists the compared attributes in table column order
var Attributes = []Attribute{
	AttrGender,
	AttrPositions,
	AttrSpecies,
	AttrResource,
	AttrRangeType,
	AttrRegions,
	AttrReleaseYear,
}

// ReleaseYearTolerance is the largest year gap still reported as partial.
const ReleaseYearTolerance = 2

// Verdict maps every attribute in Attributes to a Status.
type Verdict map[Attribute]Status

// AllCorrect reports whether every attribute matched exactly.
func (v Verdict) AllCorrect() bool {
	for _, attr := range Attributes {
		if v[attr] != StatusCorrect {
			return false
		}
	}
	return true
}

// Compare classifies each attribute of guess against answer.
func Compare(guess, answer *Champion) Verdict {
	return Verdict{
		AttrGender:      compareScalar(guess.Gender, answer.Gender),
		AttrPositions:   compareSet(guess.Positions, answer.Positions),
		AttrSpecies:     compareSet(guess.Species, answer.Species),
		AttrResource:    compareScalar(guess.Resource, answer.Resource),
		AttrRangeType:   compareScalar(guess.RangeType, answer.RangeType),
		AttrRegions:     compareSet(guess.Regions, answer.Regions),
		AttrReleaseYear: compareYear(guess.ReleaseYear, answer.ReleaseYear),
	}
}

func compareScalar[T comparable](guess, answer T) Status {
	if guess == answer {
		return StatusCorrect
	}
	return StatusIncorrect
}

// compareSet is incorrect on an empty intersection, correct when both sides
// hold exactly the same elements, partial otherwise. Order and duplicates
// are ignored.
func compareSet(guess, answer []string) Status {
	answerSet := toSet(answer)
	guessSet := toSet(guess)

	shared := 0
	for v := range guessSet {
		if answerSet[v] {
			shared++
		}
	}

	switch {
	case shared == 0:
		return StatusIncorrect
	case shared == len(guessSet) && shared == len(answerSet):
		return StatusCorrect
	default:
		return StatusPartial
	}
}

func compareYear(guess, answer int) Status {
	diff := guess - answer
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff == 0:
		return StatusCorrect
	case diff <= ReleaseYearTolerance:
		return StatusPartial
	default:
		return StatusIncorrect
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
