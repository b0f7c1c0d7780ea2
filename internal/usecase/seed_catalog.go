package usecase

type seedTeam struct {
	Name        string
	Description string
	Captain     string
	Members     []string
}

type seedUser struct {
	Username string
	Email    string
	FullName string
	Password string
	Team     string
}

type seedWorkout struct {
	Name           string
	Description    string
	Difficulty     string
	Duration       int
	Category       string
	Exercises      []string
	RecommendedFor string
}

const (
	teamMarvel = "Team Marvel"
	teamDC     = "Team DC"
)

var seedTeams = []seedTeam{
	{
		Name:        teamMarvel,
		Description: "Avengers assemble! The mightiest heroes of the Marvel Universe.",
		Captain:     "iron_man",
		Members:     []string{"iron_man", "captain_america", "thor", "black_widow", "hulk", "spider_man"},
	},
	{
		Name:        teamDC,
		Description: "Justice League united! Protectors of truth and justice.",
		Captain:     "superman",
		Members:     []string{"superman", "batman", "wonder_woman", "flash", "aquaman", "green_lantern"},
	},
}

var seedUsers = []seedUser{
	{Username: "iron_man", Email: "tony.stark@marvel.com", FullName: "Tony Stark", Password: "jarvis123", Team: teamMarvel},
	{Username: "captain_america", Email: "steve.rogers@marvel.com", FullName: "Steve Rogers", Password: "shield123", Team: teamMarvel},
	{Username: "thor", Email: "thor@asgard.com", FullName: "Thor Odinson", Password: "mjolnir123", Team: teamMarvel},
	{Username: "black_widow", Email: "natasha.romanoff@marvel.com", FullName: "Natasha Romanoff", Password: "widow123", Team: teamMarvel},
	{Username: "hulk", Email: "bruce.banner@marvel.com", FullName: "Bruce Banner", Password: "smash123", Team: teamMarvel},
	{Username: "spider_man", Email: "peter.parker@marvel.com", FullName: "Peter Parker", Password: "web123", Team: teamMarvel},
	{Username: "superman", Email: "clark.kent@dc.com", FullName: "Clark Kent", Password: "krypton123", Team: teamDC},
	{Username: "batman", Email: "bruce.wayne@dc.com", FullName: "Bruce Wayne", Password: "gotham123", Team: teamDC},
	{Username: "wonder_woman", Email: "diana.prince@dc.com", FullName: "Diana Prince", Password: "themyscira123", Team: teamDC},
	{Username: "flash", Email: "barry.allen@dc.com", FullName: "Barry Allen", Password: "speed123", Team: teamDC},
	{Username: "aquaman", Email: "arthur.curry@dc.com", FullName: "Arthur Curry", Password: "atlantis123", Team: teamDC},
	{Username: "green_lantern", Email: "hal.jordan@dc.com", FullName: "Hal Jordan", Password: "willpower123", Team: teamDC},
}

var seedActivityTypes = []string{"Running", "Cycling", "Swimming", "Weight Training", "Yoga", "Boxing", "Hiking"}

// activity types that carry a distance
var seedDistanceTypes = map[string]struct{}{
	"Running":  {},
	"Cycling":  {},
	"Swimming": {},
	"Hiking":   {},
}

var seedWorkouts = []seedWorkout{
	{
		Name:           "Thor's Hammer Strength",
		Description:    "Build god-like strength with this intense full-body workout.",
		Difficulty:     "Advanced",
		Duration:       60,
		Category:       "Strength",
		Exercises:      []string{"Deadlifts", "Squats", "Bench Press", "Pull-ups", "Hammer Curls"},
		RecommendedFor: teamMarvel,
	},
	{
		Name:           "Flash's Speed Circuit",
		Description:    "Increase speed and agility with high-intensity interval training.",
		Difficulty:     "Advanced",
		Duration:       45,
		Category:       "Cardio",
		Exercises:      []string{"Sprint Intervals", "Box Jumps", "Burpees", "High Knees", "Mountain Climbers"},
		RecommendedFor: teamDC,
	},
	{
		Name:           "Captain America's Endurance Run",
		Description:    "Build superhero endurance with this steady-state cardio workout.",
		Difficulty:     "Intermediate",
		Duration:       45,
		Category:       "Cardio",
		Exercises:      []string{"Long Distance Run", "Jump Rope", "Rowing", "Cycling"},
		RecommendedFor: teamMarvel,
	},
	{
		Name:           "Wonder Woman's Warrior Training",
		Description:    "Combat-ready functional fitness for warriors.",
		Difficulty:     "Advanced",
		Duration:       50,
		Category:       "Mixed",
		Exercises:      []string{"Battle Ropes", "Kettlebell Swings", "Medicine Ball Slams", "Box Jumps", "Push-ups"},
		RecommendedFor: teamDC,
	},
	{
		Name:           "Spider-Man's Flexibility Flow",
		Description:    "Improve flexibility and balance like your friendly neighborhood Spider-Man.",
		Difficulty:     "Beginner",
		Duration:       30,
		Category:       "Flexibility",
		Exercises:      []string{"Yoga Flow", "Dynamic Stretching", "Balance Poses", "Core Work"},
		RecommendedFor: teamMarvel,
	},
	{
		Name:           "Batman's Tactical Training",
		Description:    "Prepare for anything with this versatile tactical workout.",
		Difficulty:     "Advanced",
		Duration:       60,
		Category:       "Mixed",
		Exercises:      []string{"Parkour Drills", "Combat Training", "Grip Strength", "Agility Ladder", "Core Circuit"},
		RecommendedFor: teamDC,
	},
	{
		Name:           "Hulk's Power Smash",
		Description:    "Pure strength and power development.",
		Difficulty:     "Advanced",
		Duration:       55,
		Category:       "Strength",
		Exercises:      []string{"Heavy Squats", "Power Cleans", "Tire Flips", "Sled Push", "Farmer's Walk"},
		RecommendedFor: teamMarvel,
	},
	{
		Name:           "Aquaman's Ocean Swim",
		Description:    "Master the water with this swimming-focused workout.",
		Difficulty:     "Intermediate",
		Duration:       40,
		Category:       "Cardio",
		Exercises:      []string{"Freestyle Swimming", "Backstroke", "Butterfly", "Water Treading", "Pool Resistance"},
		RecommendedFor: teamDC,
	},
}
