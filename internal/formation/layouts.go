package formation

import "github.com/vladimirvolkov/tactics/internal/pitch"

// layouts holds the home-side slots of every formation, goalkeeper first.
var layouts = map[Name][]Slot{
	"4-4-2": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 20}, Role: "LB"},
		{Position: pitch.Position{X: 15, Y: 40}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 60}, Role: "RCB"},
		{Position: pitch.Position{X: 15, Y: 80}, Role: "RB"},
		{Position: pitch.Position{X: 30, Y: 20}, Role: "LM"},
		{Position: pitch.Position{X: 30, Y: 40}, Role: "LCM"},
		{Position: pitch.Position{X: 30, Y: 60}, Role: "RCM"},
		{Position: pitch.Position{X: 30, Y: 80}, Role: "RM"},
		{Position: pitch.Position{X: 45, Y: 40}, Role: "ST"},
		{Position: pitch.Position{X: 45, Y: 60}, Role: "ST"},
	},
	"4-3-3": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 20}, Role: "LB"},
		{Position: pitch.Position{X: 15, Y: 40}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 60}, Role: "RCB"},
		{Position: pitch.Position{X: 15, Y: 80}, Role: "RB"},
		{Position: pitch.Position{X: 30, Y: 30}, Role: "LCM"},
		{Position: pitch.Position{X: 30, Y: 50}, Role: "CM"},
		{Position: pitch.Position{X: 30, Y: 70}, Role: "RCM"},
		{Position: pitch.Position{X: 45, Y: 25}, Role: "LW"},
		{Position: pitch.Position{X: 48, Y: 50}, Role: "ST"},
		{Position: pitch.Position{X: 45, Y: 75}, Role: "RW"},
	},
	"3-5-2": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 30}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 50}, Role: "CB"},
		{Position: pitch.Position{X: 15, Y: 70}, Role: "RCB"},
		{Position: pitch.Position{X: 30, Y: 15}, Role: "LWB"},
		{Position: pitch.Position{X: 30, Y: 35}, Role: "LCM"},
		{Position: pitch.Position{X: 30, Y: 50}, Role: "CDM"},
		{Position: pitch.Position{X: 30, Y: 65}, Role: "RCM"},
		{Position: pitch.Position{X: 30, Y: 85}, Role: "RWB"},
		{Position: pitch.Position{X: 45, Y: 40}, Role: "ST"},
		{Position: pitch.Position{X: 45, Y: 60}, Role: "ST"},
	},
	"3-4-3": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 30}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 50}, Role: "CB"},
		{Position: pitch.Position{X: 15, Y: 70}, Role: "RCB"},
		{Position: pitch.Position{X: 30, Y: 20}, Role: "LM"},
		{Position: pitch.Position{X: 30, Y: 40}, Role: "LCM"},
		{Position: pitch.Position{X: 30, Y: 60}, Role: "RCM"},
		{Position: pitch.Position{X: 30, Y: 80}, Role: "RM"},
		{Position: pitch.Position{X: 45, Y: 25}, Role: "LW"},
		{Position: pitch.Position{X: 48, Y: 50}, Role: "ST"},
		{Position: pitch.Position{X: 45, Y: 75}, Role: "RW"},
	},
	"4-2-3-1": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 20}, Role: "LB"},
		{Position: pitch.Position{X: 15, Y: 40}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 60}, Role: "RCB"},
		{Position: pitch.Position{X: 15, Y: 80}, Role: "RB"},
		{Position: pitch.Position{X: 28, Y: 40}, Role: "LDM"},
		{Position: pitch.Position{X: 28, Y: 60}, Role: "RDM"},
		{Position: pitch.Position{X: 40, Y: 25}, Role: "LAM"},
		{Position: pitch.Position{X: 42, Y: 50}, Role: "CAM"},
		{Position: pitch.Position{X: 40, Y: 75}, Role: "RAM"},
		{Position: pitch.Position{X: 50, Y: 50}, Role: "ST"},
	},
	"4-5-1": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 20}, Role: "LB"},
		{Position: pitch.Position{X: 15, Y: 40}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 60}, Role: "RCB"},
		{Position: pitch.Position{X: 15, Y: 80}, Role: "RB"},
		{Position: pitch.Position{X: 30, Y: 15}, Role: "LM"},
		{Position: pitch.Position{X: 30, Y: 35}, Role: "LCM"},
		{Position: pitch.Position{X: 30, Y: 50}, Role: "CM"},
		{Position: pitch.Position{X: 30, Y: 65}, Role: "RCM"},
		{Position: pitch.Position{X: 30, Y: 85}, Role: "RM"},
		{Position: pitch.Position{X: 48, Y: 50}, Role: "ST"},
	},
	"5-4-1": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 20}, Role: "LB"},
		{Position: pitch.Position{X: 15, Y: 35}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 50}, Role: "CB"},
		{Position: pitch.Position{X: 15, Y: 65}, Role: "RCB"},
		{Position: pitch.Position{X: 15, Y: 80}, Role: "RB"},
		{Position: pitch.Position{X: 30, Y: 20}, Role: "LM"},
		{Position: pitch.Position{X: 30, Y: 40}, Role: "LCM"},
		{Position: pitch.Position{X: 30, Y: 60}, Role: "RCM"},
		{Position: pitch.Position{X: 30, Y: 80}, Role: "RM"},
		{Position: pitch.Position{X: 45, Y: 50}, Role: "ST"},
	},
	"5-3-2": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 20}, Role: "LB"},
		{Position: pitch.Position{X: 15, Y: 35}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 50}, Role: "CB"},
		{Position: pitch.Position{X: 15, Y: 65}, Role: "RCB"},
		{Position: pitch.Position{X: 15, Y: 80}, Role: "RB"},
		{Position: pitch.Position{X: 30, Y: 30}, Role: "LCM"},
		{Position: pitch.Position{X: 30, Y: 50}, Role: "CM"},
		{Position: pitch.Position{X: 30, Y: 70}, Role: "RCM"},
		{Position: pitch.Position{X: 45, Y: 40}, Role: "ST"},
		{Position: pitch.Position{X: 45, Y: 60}, Role: "ST"},
	},
	"4-1-4-1": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 20}, Role: "LB"},
		{Position: pitch.Position{X: 15, Y: 40}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 60}, Role: "RCB"},
		{Position: pitch.Position{X: 15, Y: 80}, Role: "RB"},
		{Position: pitch.Position{X: 25, Y: 50}, Role: "CDM"},
		{Position: pitch.Position{X: 35, Y: 20}, Role: "LM"},
		{Position: pitch.Position{X: 35, Y: 40}, Role: "LCM"},
		{Position: pitch.Position{X: 35, Y: 60}, Role: "RCM"},
		{Position: pitch.Position{X: 35, Y: 80}, Role: "RM"},
		{Position: pitch.Position{X: 50, Y: 50}, Role: "ST"},
	},
	"3-6-1": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 30}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 50}, Role: "CB"},
		{Position: pitch.Position{X: 15, Y: 70}, Role: "RCB"},
		{Position: pitch.Position{X: 28, Y: 40}, Role: "LDM"},
		{Position: pitch.Position{X: 28, Y: 60}, Role: "RDM"},
		{Position: pitch.Position{X: 40, Y: 15}, Role: "LM"},
		{Position: pitch.Position{X: 40, Y: 35}, Role: "LCM"},
		{Position: pitch.Position{X: 40, Y: 65}, Role: "RCM"},
		{Position: pitch.Position{X: 40, Y: 85}, Role: "RM"},
		{Position: pitch.Position{X: 50, Y: 50}, Role: "ST"},
	},
	"4-3-3 False 9": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 20}, Role: "LB"},
		{Position: pitch.Position{X: 15, Y: 40}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 60}, Role: "RCB"},
		{Position: pitch.Position{X: 15, Y: 80}, Role: "RB"},
		{Position: pitch.Position{X: 30, Y: 30}, Role: "LCM"},
		{Position: pitch.Position{X: 30, Y: 50}, Role: "CM"},
		{Position: pitch.Position{X: 30, Y: 70}, Role: "RCM"},
		{Position: pitch.Position{X: 45, Y: 25}, Role: "LW"},
		{Position: pitch.Position{X: 38, Y: 50}, Role: "CF"},
		{Position: pitch.Position{X: 45, Y: 75}, Role: "RW"},
	},
	"3-4-3 Diamond": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 30}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 50}, Role: "CB"},
		{Position: pitch.Position{X: 15, Y: 70}, Role: "RCB"},
		{Position: pitch.Position{X: 25, Y: 50}, Role: "CDM"},
		{Position: pitch.Position{X: 35, Y: 20}, Role: "LM"},
		{Position: pitch.Position{X: 35, Y: 80}, Role: "RM"},
		{Position: pitch.Position{X: 40, Y: 50}, Role: "CAM"},
		{Position: pitch.Position{X: 48, Y: 25}, Role: "LW"},
		{Position: pitch.Position{X: 52, Y: 50}, Role: "ST"},
		{Position: pitch.Position{X: 48, Y: 75}, Role: "RW"},
	},
	"4-2-4": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 20}, Role: "LB"},
		{Position: pitch.Position{X: 15, Y: 40}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 60}, Role: "RCB"},
		{Position: pitch.Position{X: 15, Y: 80}, Role: "RB"},
		{Position: pitch.Position{X: 30, Y: 40}, Role: "LCM"},
		{Position: pitch.Position{X: 30, Y: 60}, Role: "RCM"},
		{Position: pitch.Position{X: 48, Y: 20}, Role: "LW"},
		{Position: pitch.Position{X: 50, Y: 40}, Role: "ST"},
		{Position: pitch.Position{X: 50, Y: 60}, Role: "ST"},
		{Position: pitch.Position{X: 48, Y: 80}, Role: "RW"},
	},
	"3-3-4": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 30}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 50}, Role: "CB"},
		{Position: pitch.Position{X: 15, Y: 70}, Role: "RCB"},
		{Position: pitch.Position{X: 30, Y: 30}, Role: "LCM"},
		{Position: pitch.Position{X: 30, Y: 50}, Role: "CM"},
		{Position: pitch.Position{X: 30, Y: 70}, Role: "RCM"},
		{Position: pitch.Position{X: 48, Y: 20}, Role: "LW"},
		{Position: pitch.Position{X: 50, Y: 40}, Role: "ST"},
		{Position: pitch.Position{X: 50, Y: 60}, Role: "ST"},
		{Position: pitch.Position{X: 48, Y: 80}, Role: "RW"},
	},
	"4-3-2-1": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 20}, Role: "LB"},
		{Position: pitch.Position{X: 15, Y: 40}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 60}, Role: "RCB"},
		{Position: pitch.Position{X: 15, Y: 80}, Role: "RB"},
		{Position: pitch.Position{X: 30, Y: 30}, Role: "LCM"},
		{Position: pitch.Position{X: 30, Y: 50}, Role: "CM"},
		{Position: pitch.Position{X: 30, Y: 70}, Role: "RCM"},
		{Position: pitch.Position{X: 42, Y: 40}, Role: "LAM"},
		{Position: pitch.Position{X: 42, Y: 60}, Role: "RAM"},
		{Position: pitch.Position{X: 50, Y: 50}, Role: "ST"},
	},
	"4-1-2-1-2": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 20}, Role: "LB"},
		{Position: pitch.Position{X: 15, Y: 40}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 60}, Role: "RCB"},
		{Position: pitch.Position{X: 15, Y: 80}, Role: "RB"},
		{Position: pitch.Position{X: 25, Y: 50}, Role: "CDM"},
		{Position: pitch.Position{X: 32, Y: 30}, Role: "LCM"},
		{Position: pitch.Position{X: 32, Y: 70}, Role: "RCM"},
		{Position: pitch.Position{X: 40, Y: 50}, Role: "CAM"},
		{Position: pitch.Position{X: 48, Y: 40}, Role: "ST"},
		{Position: pitch.Position{X: 48, Y: 60}, Role: "ST"},
	},
	"3-2-4-1": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 30}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 50}, Role: "CB"},
		{Position: pitch.Position{X: 15, Y: 70}, Role: "RCB"},
		{Position: pitch.Position{X: 28, Y: 40}, Role: "LDM"},
		{Position: pitch.Position{X: 28, Y: 60}, Role: "RDM"},
		{Position: pitch.Position{X: 40, Y: 20}, Role: "LW"},
		{Position: pitch.Position{X: 40, Y: 40}, Role: "LAM"},
		{Position: pitch.Position{X: 40, Y: 60}, Role: "RAM"},
		{Position: pitch.Position{X: 40, Y: 80}, Role: "RW"},
		{Position: pitch.Position{X: 50, Y: 50}, Role: "ST"},
	},
	"2-3-5": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 40}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 60}, Role: "RCB"},
		{Position: pitch.Position{X: 30, Y: 30}, Role: "LCM"},
		{Position: pitch.Position{X: 30, Y: 50}, Role: "CM"},
		{Position: pitch.Position{X: 30, Y: 70}, Role: "RCM"},
		{Position: pitch.Position{X: 48, Y: 15}, Role: "LW"},
		{Position: pitch.Position{X: 50, Y: 35}, Role: "LF"},
		{Position: pitch.Position{X: 52, Y: 50}, Role: "ST"},
		{Position: pitch.Position{X: 50, Y: 65}, Role: "RF"},
		{Position: pitch.Position{X: 48, Y: 85}, Role: "RW"},
	},
	"WM": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 30}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 50}, Role: "CB"},
		{Position: pitch.Position{X: 15, Y: 70}, Role: "RCB"},
		{Position: pitch.Position{X: 25, Y: 40}, Role: "LHB"},
		{Position: pitch.Position{X: 25, Y: 60}, Role: "RHB"},
		{Position: pitch.Position{X: 35, Y: 40}, Role: "LIF"},
		{Position: pitch.Position{X: 35, Y: 60}, Role: "RIF"},
		{Position: pitch.Position{X: 48, Y: 20}, Role: "LW"},
		{Position: pitch.Position{X: 50, Y: 50}, Role: "CF"},
		{Position: pitch.Position{X: 48, Y: 80}, Role: "RW"},
	},
	"4-3-3 Holding": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 20}, Role: "LB"},
		{Position: pitch.Position{X: 15, Y: 40}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 60}, Role: "RCB"},
		{Position: pitch.Position{X: 15, Y: 80}, Role: "RB"},
		{Position: pitch.Position{X: 25, Y: 50}, Role: "CDM"},
		{Position: pitch.Position{X: 32, Y: 35}, Role: "LCM"},
		{Position: pitch.Position{X: 32, Y: 65}, Role: "RCM"},
		{Position: pitch.Position{X: 45, Y: 25}, Role: "LW"},
		{Position: pitch.Position{X: 48, Y: 50}, Role: "ST"},
		{Position: pitch.Position{X: 45, Y: 75}, Role: "RW"},
	},
	"4-3-3 Flat": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 20}, Role: "LB"},
		{Position: pitch.Position{X: 15, Y: 40}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 60}, Role: "RCB"},
		{Position: pitch.Position{X: 15, Y: 80}, Role: "RB"},
		{Position: pitch.Position{X: 30, Y: 30}, Role: "LCM"},
		{Position: pitch.Position{X: 30, Y: 50}, Role: "CM"},
		{Position: pitch.Position{X: 30, Y: 70}, Role: "RCM"},
		{Position: pitch.Position{X: 48, Y: 20}, Role: "LW"},
		{Position: pitch.Position{X: 50, Y: 50}, Role: "ST"},
		{Position: pitch.Position{X: 48, Y: 80}, Role: "RW"},
	},
	"4-3-3 Attacking": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 20}, Role: "LB"},
		{Position: pitch.Position{X: 15, Y: 40}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 60}, Role: "RCB"},
		{Position: pitch.Position{X: 15, Y: 80}, Role: "RB"},
		{Position: pitch.Position{X: 28, Y: 40}, Role: "LCM"},
		{Position: pitch.Position{X: 28, Y: 60}, Role: "RCM"},
		{Position: pitch.Position{X: 40, Y: 50}, Role: "CAM"},
		{Position: pitch.Position{X: 48, Y: 25}, Role: "LW"},
		{Position: pitch.Position{X: 50, Y: 50}, Role: "ST"},
		{Position: pitch.Position{X: 48, Y: 75}, Role: "RW"},
	},
	"3-5-2 Wide": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 30}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 50}, Role: "CB"},
		{Position: pitch.Position{X: 15, Y: 70}, Role: "RCB"},
		{Position: pitch.Position{X: 30, Y: 15}, Role: "LM"},
		{Position: pitch.Position{X: 28, Y: 40}, Role: "LCM"},
		{Position: pitch.Position{X: 28, Y: 60}, Role: "RCM"},
		{Position: pitch.Position{X: 30, Y: 85}, Role: "RM"},
		{Position: pitch.Position{X: 42, Y: 50}, Role: "CAM"},
		{Position: pitch.Position{X: 48, Y: 40}, Role: "ST"},
		{Position: pitch.Position{X: 48, Y: 60}, Role: "ST"},
	},
	"3-5-2 Narrow": {
		{Position: pitch.Position{X: 5, Y: 50}, Role: "GK"},
		{Position: pitch.Position{X: 15, Y: 30}, Role: "LCB"},
		{Position: pitch.Position{X: 15, Y: 50}, Role: "CB"},
		{Position: pitch.Position{X: 15, Y: 70}, Role: "RCB"},
		{Position: pitch.Position{X: 25, Y: 50}, Role: "CDM"},
		{Position: pitch.Position{X: 32, Y: 35}, Role: "LCM"},
		{Position: pitch.Position{X: 32, Y: 65}, Role: "RCM"},
		{Position: pitch.Position{X: 40, Y: 40}, Role: "LAM"},
		{Position: pitch.Position{X: 40, Y: 60}, Role: "RAM"},
		{Position: pitch.Position{X: 48, Y: 40}, Role: "ST"},
		{Position: pitch.Position{X: 48, Y: 60}, Role: "ST"},
	},
}
