package entities

// Spot is a point of interest as returned by a search backend or the curation
// provider. Not persisted on its own; lives inside Session.Recommendation.
type Spot struct {
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	MapX        string `json:"mapx,omitempty"`
	MapY        string `json:"mapy,omitempty"`
	Tel         string `json:"tel,omitempty"`
	ContentID   string `json:"content_id,omitempty"`
	Rank        *int   `json:"rank,omitempty"`
}

// CourseStop is one visit in an ordered course. Stops are totally ordered by
// Order, 1-based.
type CourseStop struct {
	Order            int      `json:"order"`
	Name             string   `json:"name"`
	Address          string   `json:"address,omitempty"`
	MapX             string   `json:"mapx,omitempty"`
	MapY             string   `json:"mapy,omitempty"`
	ContentID        string   `json:"content_id,omitempty"`
	Category         string   `json:"category,omitempty"`
	Time             string   `json:"time,omitempty"`     // "오전 10시"
	Duration         string   `json:"duration,omitempty"` // "1시간"
	TravelTimeToNext string   `json:"travel_time_to_next,omitempty"`
	DistanceToNextKM *float64 `json:"distance_to_next_km,omitempty"`
	Reason           string   `json:"reason,omitempty"`
	Tip              string   `json:"tip,omitempty"`
}

type Course struct {
	Title           string       `json:"title"`
	Stops           []CourseStop `json:"stops"`
	TotalDuration   string       `json:"total_duration,omitempty"`
	TotalDistanceKM *float64     `json:"total_distance_km,omitempty"`
	Summary         string       `json:"summary,omitempty"`
}

// Recommendation is the terminal payload of a completed session: the full spot
// list for the list view plus an ordered course for the course view.
type Recommendation struct {
	Spots         []Spot   `json:"spots"`
	Course        *Course  `json:"course,omitempty"`
	Message       string   `json:"message,omitempty"`
	SelectedTools []string `json:"selected_tools,omitempty"`
}
