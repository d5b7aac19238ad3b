package models

import "strings"

// GroupName identifies a volunteer group that fulfills orders.
type GroupName string

const (
	GroupA GroupName = "Group A (Pathfinders)"
	GroupB GroupName = "Group B (Adventurers)"
	GroupC GroupName = "Group C (Youth)"
	GroupD GroupName = "Group D (Young Adults)"
)

// GroupNames is the fixed rotation order.
var GroupNames = []GroupName{GroupA, GroupB, GroupC, GroupD}

// ShortName drops the parenthesised label: "Group A (Pathfinders)" -> "Group A".
func (g GroupName) ShortName() string {
	name, _, _ := strings.Cut(string(g), "(")
	return strings.TrimSpace(name)
}

func (g GroupName) IsValid() bool {
	for _, name := range GroupNames {
		if name == g {
			return true
		}
	}
	return false
}
