package formation

// Club is a preset side: kit colour and preferred formation.
type Club struct {
	Name      string `json:"name"`
	Color     string `json:"primaryColor"`
	Formation Name   `json:"defaultFormation"`
}

type League struct {
	Name  string `json:"name"`
	Clubs []Club `json:"teams"`
}

var Leagues = []League{
	{
		Name: "Premier League",
		Clubs: []Club{
			{Name: "Arsenal", Color: "#EF0107", Formation: "4-3-3"},
			{Name: "Chelsea", Color: "#034694", Formation: "3-5-2"},
			{Name: "Liverpool", Color: "#C8102E", Formation: "4-3-3"},
			{Name: "Manchester City", Color: "#6CABDD", Formation: "4-3-3"},
			{Name: "Manchester United", Color: "#DA291C", Formation: "4-2-3-1"},
			{Name: "Tottenham Hotspur", Color: "#FFFFFF", Formation: "4-2-3-1"},
		},
	},
	{
		Name: "La Liga",
		Clubs: []Club{
			{Name: "Atlético Madrid", Color: "#CB3524", Formation: "5-3-2"},
			{Name: "FC Barcelona", Color: "#A50044", Formation: "4-3-3"},
			{Name: "Real Madrid", Color: "#FFFFFF", Formation: "4-3-3"},
		},
	},
	{
		Name: "International",
		Clubs: []Club{
			{Name: "Brazil", Color: "#F9DD00", Formation: "4-2-3-1"},
			{Name: "Germany", Color: "#000000", Formation: "4-2-3-1"},
			{Name: "Argentina", Color: "#75AADB", Formation: "4-4-2"},
			{Name: "France", Color: "#002395", Formation: "4-3-3"},
		},
	},
}

// ClubByName finds a preset club.
func ClubByName(name string) (Club, bool) {
	for _, l := range Leagues {
		for _, c := range l.Clubs {
			if c.Name == name {
				return c, true
			}
		}
	}
	return Club{}, false
}
