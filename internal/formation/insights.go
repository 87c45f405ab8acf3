package formation

// Insight is a short scouting note for a formation.
type Insight struct {
	Summary        string   `json:"summary"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Style          string   `json:"style"`
	BallSummary    string   `json:"ballSummary"`
	BallStrengths  []string `json:"ballStrengths"`
	BallWeaknesses []string `json:"ballWeaknesses"`
}

var defaultInsight = Insight{
	Summary:        "A versatile tactical setup adaptable to various game states. Focus on player movement and spatial awareness.",
	Strengths:      []string{"Balanced field coverage", "Adaptable to opponent changes", "Good foundation for set pieces"},
	Weaknesses:     []string{"Requires high tactical intelligence", "Can become disorganized under pressure"},
	Style:          "Tactical Flexibility",
	BallSummary:    "Focus on adaptive possession. The ball moves based on the specific movements of creative players.",
	BallStrengths:  []string{"Unpredictable passing patterns", "Adaptable ball speed", "Fluid positioning"},
	BallWeaknesses: []string{"Lack of structured ball-exit routes", "Confusion in ball-recovery zones"},
}

var insights = map[Name]Insight{
	"4-4-2": {
		Summary:        "The most classic structure in football. Highly disciplined and provides great coverage across the width of the pitch.",
		Strengths:      []string{"Strong defensive banks of four", "Constant threat with two strikers", "Clear roles and responsibilities"},
		Weaknesses:     []string{"Midfield can be outnumbered by 3-man systems", "Predictable attacking patterns", "Space between lines can be exploited"},
		Style:          "Structured / Balanced",
		BallSummary:    "Focuses on direct play and wide crosses. The ball should move quickly to the wings to bypass central congestion.",
		BallStrengths:  []string{"Dangerous 2v1 situations on wings", "Simple vertical passing lanes", "Direct service to two strikers"},
		BallWeaknesses: []string{"Difficulty maintaining central possession", "Predictable long-ball transitions", "Limited \"between the lines\" passing options"},
	},
	"4-3-3": {
		Summary:        "Optimized for possession and high pressing. The three-man midfield allows for superior ball circulation and control.",
		Strengths:      []string{"Excellent passing triangles", "High attacking width from wingers", "Effective high-pressing capability"},
		Weaknesses:     []string{"Exposed to counter-attacks on the wings", "Requires high-stamina midfielders", "Lone striker can be isolated"},
		Style:          "Possession / Offensive",
		BallSummary:    "The gold standard for \"Tiki-Taka\". The ball stays on the ground, moving through the #6 to pull opponents out of position.",
		BallStrengths:  []string{"Infinite passing triangles in midfield", "High ball retention in the final third", "Quick switches of play via the pivot"},
		BallWeaknesses: []string{"Vulnerable to ball loss in middle third", "Over-passing without penetration", "Wide areas exposed during ball transition"},
	},
	"3-5-2": {
		Summary:        "A flexible system that dominates the center of the pitch. Transitioning wing-backs are the engine of this formation.",
		Strengths:      []string{"Numerical superiority in midfield", "Strong central defensive block (3 CBs)", "Excellent for quick transitions"},
		Weaknesses:     []string{"Huge physical demand on wing-backs", "Gaps behind wing-backs on counters", "Requires ball-playing center-backs"},
		Style:          "Dynamic / Midfield Dominant",
		BallSummary:    "Designed for central overloads. The ball moves through a 5-man engine room to isolate opposition full-backs.",
		BallStrengths:  []string{"Domination of central ball-zones", "Superiority in the second-ball phase", "Wing-backs provide unmarked wide options"},
		BallWeaknesses: []string{"Crowded central areas hinder quick play", "Risky passes back to the 3-man defense", "Slow to move the ball to wide areas"},
	},
	"4-2-3-1": {
		Summary:        "The modern standard. Provides a solid defensive base with two holding players while allowing creative freedom for the No. 10.",
		Strengths:      []string{"Fluid attacking movement", "Defensive security from \"Double Pivot\"", "Versatile transitions"},
		Weaknesses:     []string{"Full-backs can be isolated 1v1", "Heavy reliance on the creative \"CAM\"", "Complex defensive rotations"},
		Style:          "Fluid / Modern",
		BallSummary:    "Highly versatile in possession. Uses the double-pivot to bait the press before finding the creative #10.",
		BallStrengths:  []string{"Multiple ball-exit routes from defense", "Creative freedom in the #10 pockets", "Safe ball-recycling via holding pair"},
		BallWeaknesses: []string{"Isolation of the lone striker", "Ball circulation can become stagnant", "Heavy dependency on pivot decision making"},
	},
	"5-4-1": {
		Summary:        "A \"low-block\" specialist. Prioritizes defensive solidity and waits for the perfect moment to counter-attack.",
		Strengths:      []string{"Extremely difficult to break down", "Minimal space in the penalty area", "Excellent for protecting a lead"},
		Weaknesses:     []string{"Very limited attacking support", "Striker must be clinical with rare chances", "Requires immense discipline"},
		Style:          "Defensive / Counter",
		BallSummary:    "Pure counter-attacking logic. The ball is won deep and immediately launched to the lone striker or into space.",
		BallStrengths:  []string{"High-efficiency vertical counters", "Safe ball-exit to the corners", "Reduced risk of central ball loss"},
		BallWeaknesses: []string{"Extremely low time on the ball", "Striker is starved of support", "Inability to build slow possession"},
	},
	"3-4-3": {
		Summary:        "An aggressive attacking system designed to pin opponents back. Ideal for teams with high-quality wingers and ball-playing defenders.",
		Strengths:      []string{"Overwhelming numbers in the final third", "High defensive line pressure", "Natural attacking width"},
		Weaknesses:     []string{"Significant gaps in the wide defensive areas", "High risk of being caught in 2v3s", "Vulnerable to fast wingers"},
		Style:          "Aggressive / Width-focused",
		BallSummary:    "Aggressive wide possession. The ball is forced into wide channels to create 3v2 situations in the attacking third.",
		BallStrengths:  []string{"Constant width in ball circulation", "Overwhelming options in the box", "High-speed ball transitions"},
		BallWeaknesses: []string{"Exposed wide channels on ball loss", "Complexity in central passing lanes", "Risky build-up with 3 at the back"},
	},
}

// InsightFor returns the note for name, falling back to a generic one.
func InsightFor(name Name) Insight {
	if in, ok := insights[name]; ok {
		return in
	}
	return defaultInsight
}
