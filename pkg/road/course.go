package road

import "math/rand"

// Course generation parameters
const (
	TreeSlots      = 100
	TreeSpacing    = 200
	TreeJitter     = 100
	TreeChance     = 0.7
	HouseSlots     = 30
	HouseSpacing   = 300
	HouseJitter    = 200
	HurdleCount    = 20
	HurdleSpacing  = 400
	HurdleMinGap   = 200
	HurdleMaxGap   = 400
	ShoulderJitter = 100
	HouseXJitter   = 50
)

// Course is the full pre-laid set of actors for one run
type Course struct {
	Trees   []Actor
	Houses  []Actor
	Hurdles []Actor
}

// Generate lays out a course ahead of the car (negative Y is further up the
// road). Nothing is spawned after this; the course is finite.
func Generate(l Layout, rng *rand.Rand) Course {
	return Course{
		Trees:   generateTrees(l, rng),
		Houses:  generateHouses(l, rng),
		Hurdles: generateHurdles(l, rng),
	}
}

func generateTrees(l Layout, rng *rand.Rand) []Actor {
	trees := make([]Actor, 0, TreeSlots*2)
	for i := 0; i < TreeSlots; i++ {
		y := -float64(i*TreeSpacing) - float64(between(rng, 0, TreeJitter))

		if rng.Float64() < TreeChance {
			x := 50 + float64(between(rng, 0, ShoulderJitter))
			trees = append(trees, NewActor(Tree, x, y))
		}
		if rng.Float64() < TreeChance {
			x := l.ScreenWidth - 150 + float64(between(rng, 0, ShoulderJitter))
			trees = append(trees, NewActor(Tree, x, y))
		}
	}
	return trees
}

func generateHouses(l Layout, rng *rand.Rand) []Actor {
	houses := make([]Actor, 0, HouseSlots)
	for i := 0; i < HouseSlots; i++ {
		y := -float64(i*HouseSpacing) - float64(between(rng, 0, HouseJitter))

		var x float64
		if rng.Intn(2) == 0 {
			x = 100 + float64(between(rng, 0, HouseXJitter))
		} else {
			x = l.ScreenWidth - 200 + float64(between(rng, 0, HouseXJitter))
		}
		houses = append(houses, NewActor(House, x, y))
	}
	return houses
}

func generateHurdles(l Layout, rng *rand.Rand) []Actor {
	hurdles := make([]Actor, 0, HurdleCount)
	for i := 0; i < HurdleCount; i++ {
		y := -float64(i*HurdleSpacing) - float64(between(rng, HurdleMinGap, HurdleMaxGap))
		lane := rng.Intn(l.Lanes)
		x := l.LaneCenter(lane) - HurdleWidth/2
		hurdles = append(hurdles, NewActor(Hurdle, x, y))
	}
	return hurdles
}

// between returns a random int in [lo, hi], both ends inclusive
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
