package region

// Location is a state/district pair chosen in the selection view.
type Location struct {
	State    string `json:"state"`
	District string `json:"district"`
}

// Coordinates are a position reported by a geolocation capability.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Default is where any captured position is mapped to in the demo.
var Default = Location{State: "Assam", District: "Dhubri"}

var states = []string{
	"Arunachal Pradesh",
	"Assam",
	"Manipur",
	"Meghalaya",
	"Mizoram",
	"Nagaland",
	"Sikkim",
	"Tripura",
}

var districts = map[string][]string{
	"Arunachal Pradesh": {"Itanagar", "Tawang", "West Kameng", "East Kameng", "Papum Pare"},
	"Assam":             {"Guwahati", "Dibrugarh", "Silchar", "Jorhat", "Nagaon", "Barpeta", "Dhubri"},
	"Manipur":           {"Imphal West", "Imphal East", "Thoubal", "Bishnupur", "Churachandpur"},
	"Meghalaya":         {"East Khasi Hills", "West Garo Hills", "Ri-Bhoi", "Jaintia Hills"},
	"Mizoram":           {"Aizawl", "Lunglei", "Champhai", "Serchhip"},
	"Nagaland":          {"Kohima", "Dimapur", "Mokokchung", "Wokha"},
	"Sikkim":            {"Gangtok", "Namchi", "Gyalshing", "Mangan"},
	"Tripura":           {"Agartala", "Udaipur", "Dharmanagar", "Kailasahar"},
}

// States returns the North-East states in display order.
func States() []string {
	out := make([]string, len(states))
	copy(out, states)
	return out
}

// Districts returns the districts of a state, or false if the state is unknown.
func Districts(state string) ([]string, bool) {
	list, ok := districts[state]
	if !ok {
		return nil, false
	}
	out := make([]string, len(list))
	copy(out, list)
	return out, true
}

// Table returns the full state -> districts table, copied.
func Table() map[string][]string {
	out := make(map[string][]string, len(districts))
	for s := range districts {
		out[s], _ = Districts(s)
	}
	return out
}

// HasState reports whether state is one of the known states.
func HasState(state string) bool {
	_, ok := districts[state]
	return ok
}

// Contains reports whether district belongs to state.
func Contains(state, district string) bool {
	for _, d := range districts[state] {
		if d == district {
			return true
		}
	}
	return false
}

// Nearest maps coordinates to a district. There is no reverse geocoding:
// every position resolves to Default.
func Nearest(Coordinates) Location {
	return Default
}
