package domain

import "strings"

// Role is a lane a champion is played in
type Role string

const (
	RoleTop     Role = "top"
	RoleJungle  Role = "jungle"
	RoleMid     Role = "mid"
	RoleADC     Role = "adc"
	RoleSupport Role = "support"
)

// DisplayName returns the position label used in champion attributes
func (r Role) DisplayName() string {
	switch r {
	case RoleTop:
		return "Top"
	case RoleJungle:
		return "Jungle"
	case RoleMid:
		return "Mid"
	case RoleADC:
		return "ADC"
	case RoleSupport:
		return "Support"
	default:
		return string(r)
	}
}

// RoleForTag maps a champion class tag to the lane it is usually played in.
// Unknown tags default to top lane.
func RoleForTag(tag string) Role {
	switch {
	case strings.EqualFold(tag, string(TagMage)), strings.EqualFold(tag, string(TagAssassin)):
		return RoleMid
	case strings.EqualFold(tag, string(TagMarksman)):
		return RoleADC
	case strings.EqualFold(tag, string(TagSupport)), strings.EqualFold(tag, string(TagTank)):
		return RoleSupport
	default:
		return RoleTop
	}
}

// PositionsForTags converts class tags into a de-duplicated, ordered list of
// position display names.
func PositionsForTags(tags []string) []string {
	if len(tags) == 0 {
		return []string{RoleTop.DisplayName()}
	}

	seen := make(map[Role]bool, len(tags))
	positions := make([]string, 0, len(tags))
	for _, tag := range tags {
		role := RoleForTag(tag)
		if seen[role] {
			continue
		}
		seen[role] = true
		positions = append(positions, role.DisplayName())
	}
	return positions
}
